package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/xchire/acculog/internal/models"
	"github.com/xchire/acculog/internal/utils"
)

const ticketPageSize = 10

type TicketController struct {
	DB  *gorm.DB
	Loc *time.Location
}

type createTicketRequest struct {
	RequestorName string `json:"requestor_name" binding:"required"`
	TicketSubject string `json:"ticket_subject" binding:"required"`
	Department    string `json:"department"`
	Mode          string `json:"mode"`
	Remarks       string `json:"remarks"`
}

type updateTicketRequest struct {
	Status  *string `json:"status"`
	Mode    *string `json:"mode"`
	Remarks *string `json:"remarks"`
}

func (tc *TicketController) ListTickets(c *gin.Context) {
	uVal, _ := c.Get("user")
	user := uVal.(models.User)

	limit := ticketPageSize
	page := 1
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	base := tc.DB.Model(&models.Ticket{})
	if !canViewAllLogs(user) {
		base = base.Where("reference_id = ?", user.ReferenceID)
	}
	if qText := strings.TrimSpace(c.Query("q")); qText != "" {
		like := "%" + qText + "%"
		base = base.Where("ticket_subject ILIKE ? OR requestor_name ILIKE ? OR ticket_id ILIKE ?", like, like, like)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var tickets []models.Ticket
	if err := base.Order("date_created DESC").Offset((page - 1) * limit).Limit(limit).Find(&tickets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketJSON(t))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": out,
		"meta": gin.H{"total": total, "limit": limit, "page": page},
	})
}

func (tc *TicketController) CreateTicket(c *gin.Context) {
	uVal, _ := c.Get("user")
	user := uVal.(models.User)

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticketID, err := utils.NewTicketID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate ticket id"})
		return
	}

	now := time.Now()
	if tc.Loc != nil {
		now = now.In(tc.Loc)
	}

	ticket := models.Ticket{
		TicketID:      ticketID,
		ReferenceID:   user.ReferenceID,
		RequestorName: req.RequestorName,
		TicketSubject: req.TicketSubject,
		Department:    req.Department,
		Mode:          req.Mode,
		Status:        "Open",
		Remarks:       req.Remarks,
		DateCreated:   now,
	}
	if err := tc.DB.Create(&ticket).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "ticket id collision, retry"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "ticket": ticketJSON(ticket)})
}

func (tc *TicketController) GetTicket(c *gin.Context) {
	uVal, _ := c.Get("user")
	user := uVal.(models.User)

	id := strings.TrimSpace(c.Param("id"))
	var ticket models.Ticket
	if err := tc.DB.Where("id = ?", id).First(&ticket).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	if !canViewAllLogs(user) && ticket.ReferenceID != user.ReferenceID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, ticketJSON(ticket))
}

func (tc *TicketController) UpdateTicket(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var ticket models.Ticket
	if err := tc.DB.Where("id = ?", id).First(&ticket).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil {
		ticket.Status = *req.Status
	}
	if req.Mode != nil {
		ticket.Mode = *req.Mode
	}
	if req.Remarks != nil {
		ticket.Remarks = *req.Remarks
	}

	if err := tc.DB.Save(&ticket).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated", "ticket": ticketJSON(ticket)})
}

func (tc *TicketController) DeleteTicket(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	res := tc.DB.Where("id = ?", id).Delete(&models.Ticket{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func ticketJSON(t models.Ticket) gin.H {
	return gin.H{
		"id":             t.ID,
		"ticket_id":      t.TicketID,
		"reference_id":   t.ReferenceID,
		"requestor_name": t.RequestorName,
		"ticket_subject": t.TicketSubject,
		"department":     t.Department,
		"mode":           t.Mode,
		"status":         t.Status,
		"remarks":        t.Remarks,
		"date_created":   t.DateCreated,
	}
}
