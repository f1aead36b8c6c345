package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xchire/acculog/internal/attendance"
	"github.com/xchire/acculog/internal/models"
	"github.com/xchire/acculog/internal/ws"
)

type ActivityController struct {
	DB   *gorm.DB
	Hub  *ws.AttendanceHub
	Gate attendance.Gate
	Loc  *time.Location
}

type addLogRequest struct {
	ReferenceID      string   `json:"ReferenceID" binding:"required"`
	Email            string   `json:"Email" binding:"required"`
	Type             string   `json:"Type" binding:"required"`
	Status           string   `json:"Status" binding:"required"`
	Location         string   `json:"Location"`
	Latitude         *float64 `json:"Latitude"`
	Longitude        *float64 `json:"Longitude"`
	PhotoURL         string   `json:"PhotoURL"`
	SitePhotoURL     string   `json:"SitePhotoURL"`
	SiteVisitAccount string   `json:"SiteVisitAccount"`
	Remarks          string   `json:"Remarks"`
	TSM              string   `json:"TSM"`
}

func (ac *ActivityController) now() time.Time {
	if ac.Loc != nil {
		return time.Now().In(ac.Loc)
	}
	return time.Now()
}

// AddLog is the attendance gate: it validates a new event against
// same-window history before appending it. The whole decision runs in
// one transaction behind a per-ReferenceID advisory lock so two
// near-simultaneous requests cannot both pass the checks.
func (ac *ActivityController) AddLog(c *gin.Context) {
	var req addLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.Status != attendance.StatusLogin && req.Status != attendance.StatusLogout {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Login or Logout"})
		return
	}

	now := ac.now()
	start, end := attendance.BusinessDay(now)

	var entry models.ActivityLog
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", req.ReferenceID).Error; err != nil {
			return err
		}

		var lastStatus string
		var last models.ActivityLog
		err := tx.Where("reference_id = ? AND date_created BETWEEN ? AND ?", req.ReferenceID, start, end).
			Order("date_created DESC").
			First(&last).Error
		switch {
		case err == nil:
			lastStatus = last.Status
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		var loginCount, siteVisitCount int64
		if req.Status == attendance.StatusLogin {
			if err := tx.Model(&models.ActivityLog{}).
				Where("reference_id = ? AND status = ? AND date_created BETWEEN ? AND ?",
					req.ReferenceID, attendance.StatusLogin, start, end).
				Count(&loginCount).Error; err != nil {
				return err
			}
		}
		if req.Type == attendance.TypeSiteVisit {
			if err := tx.Model(&models.ActivityLog{}).
				Where("reference_id = ? AND type = ? AND date_created BETWEEN ? AND ?",
					req.ReferenceID, attendance.TypeSiteVisit, start, end).
				Count(&siteVisitCount).Error; err != nil {
				return err
			}
		}

		if err := ac.Gate.Check(lastStatus, int(loginCount), int(siteVisitCount), req.Status, req.Type); err != nil {
			return err
		}

		entry = models.ActivityLog{
			ReferenceID:      req.ReferenceID,
			Email:            req.Email,
			Type:             req.Type,
			Status:           req.Status,
			Location:         req.Location,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			PhotoURL:         req.PhotoURL,
			SitePhotoURL:     req.SitePhotoURL,
			SiteVisitAccount: req.SiteVisitAccount,
			TSM:              req.TSM,
			Remarks:          req.Remarks,
			DateCreated:      now,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		var conflict *attendance.ConflictError
		var quota *attendance.QuotaError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
		case errors.As(err, &quota):
			c.JSON(http.StatusForbidden, gin.H{"error": quota.Error()})
		default:
			log.Printf("add activity log: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add activity log"})
		}
		return
	}

	broadcastActivity(ac.Hub, entry)

	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("%s recorded successfully", req.Status)})
}

// LastStatus returns the most recent event for today. This endpoint
// historically uses the calendar day, not the 08:00 window.
func (ac *ActivityController) LastStatus(c *gin.Context) {
	referenceID := strings.TrimSpace(c.Query("referenceId"))
	if referenceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenceId is required"})
		return
	}

	start, end := attendance.CalendarDay(ac.now())

	var last models.ActivityLog
	err := ac.DB.Where("reference_id = ? AND date_created BETWEEN ? AND ?", referenceID, start, end).
		Order("date_created DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Printf("last status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch last status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":       last.Status,
		"date_created": last.DateCreated,
	})
}

// LoginSummary feeds the attendance dialog poll: last status/time and
// the Login count for the current 08:00-anchored window.
func (ac *ActivityController) LoginSummary(c *gin.Context) {
	referenceID := strings.TrimSpace(c.Query("referenceId"))
	if referenceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing referenceId"})
		return
	}

	start, end := attendance.BusinessDay(ac.now())

	resp := gin.H{
		"lastStatus": nil,
		"lastTime":   nil,
		"loginCount": 0,
	}

	var last models.ActivityLog
	err := ac.DB.Where("reference_id = ? AND date_created BETWEEN ? AND ?", referenceID, start, end).
		Order("date_created DESC").
		First(&last).Error
	if err == nil {
		resp["lastStatus"] = last.Status
		resp["lastTime"] = last.DateCreated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("login summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch login summary"})
		return
	}

	var loginCount int64
	if err := ac.DB.Model(&models.ActivityLog{}).
		Where("reference_id = ? AND status = ? AND date_created BETWEEN ? AND ?",
			referenceID, attendance.StatusLogin, start, end).
		Count(&loginCount).Error; err != nil {
		log.Printf("login summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch login summary"})
		return
	}
	resp["loginCount"] = loginCount

	c.JSON(http.StatusOK, resp)
}

// SiteVisitCountToday counts completed site visits (Type "Site Visit"
// with Status Logout) for the calendar day.
func (ac *ActivityController) SiteVisitCountToday(c *gin.Context) {
	referenceID := strings.TrimSpace(c.Query("referenceId"))
	if referenceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenceId is required"})
		return
	}

	start, end := attendance.CalendarDay(ac.now())

	var count int64
	if err := ac.DB.Model(&models.ActivityLog{}).
		Where("reference_id = ? AND type = ? AND status = ? AND date_created BETWEEN ? AND ?",
			referenceID, attendance.TypeSiteVisit, attendance.StatusLogout, start, end).
		Count(&count).Error; err != nil {
		log.Printf("site visit count: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count site visits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

type updateLogRequest struct {
	ID      uint    `json:"id" binding:"required"`
	Remarks *string `json:"Remarks" binding:"required"`
}

// UpdateLog is the only mutation allowed on a stored event: Remarks.
func (ac *ActivityController) UpdateLog(c *gin.Context) {
	var req updateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	res := ac.DB.Model(&models.ActivityLog{}).Where("id = ?", req.ID).Update("remarks", *req.Remarks)
	if res.Error != nil {
		log.Printf("update activity log: %v", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity log"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity log not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity log updated successfully"})
}

// FetchLog lists raw events for the timesheet and activity views.
// Non-admin, non-HR callers only see their own rows.
func (ac *ActivityController) FetchLog(c *gin.Context) {
	uVal, _ := c.Get("user")
	user := uVal.(models.User)

	q := ac.DB.Model(&models.ActivityLog{}).Order("date_created DESC")

	if !canViewAllLogs(user) {
		q = q.Where("reference_id = ?", user.ReferenceID)
	} else if ref := strings.TrimSpace(c.Query("referenceId")); ref != "" {
		q = q.Where("reference_id = ?", ref)
	}

	if from, to, ok := parseDateRange(c, ac.Loc); ok {
		q = q.Where("date_created BETWEEN ? AND ?", from, to)
	}

	var logs []models.ActivityLog
	if err := q.Find(&logs).Error; err != nil {
		log.Printf("fetch activity logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity logs"})
		return
	}

	out := make([]gin.H, 0, len(logs))
	for _, entry := range logs {
		out = append(out, activityLogJSON(entry))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func activityLogJSON(entry models.ActivityLog) gin.H {
	return gin.H{
		"id":               entry.ID,
		"ReferenceID":      entry.ReferenceID,
		"Email":            entry.Email,
		"Type":             entry.Type,
		"Status":           entry.Status,
		"Location":         entry.Location,
		"Latitude":         entry.Latitude,
		"Longitude":        entry.Longitude,
		"PhotoURL":         entry.PhotoURL,
		"SitePhotoURL":     entry.SitePhotoURL,
		"SiteVisitAccount": entry.SiteVisitAccount,
		"TSM":              entry.TSM,
		"Remarks":          entry.Remarks,
		"date_created":     entry.DateCreated,
	}
}

func canViewAllLogs(u models.User) bool {
	return strings.ToLower(u.Role) == "admin" || strings.EqualFold(u.Department, "Human Resources")
}

// parseDateRange reads from/to query params (YYYY-MM-DD). The returned
// range covers whole local days.
func parseDateRange(c *gin.Context, loc *time.Location) (time.Time, time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	fromStr := strings.TrimSpace(c.Query("from"))
	toStr := strings.TrimSpace(c.Query("to"))
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.ParseInLocation("2006-01-02", fromStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to.AddDate(0, 0, 1).Add(-time.Millisecond), true
}
