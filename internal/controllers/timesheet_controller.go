package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/xchire/acculog/internal/attendance"
	"github.com/xchire/acculog/internal/models"
)

type TimesheetController struct {
	DB  *gorm.DB
	Loc *time.Location
}

type timesheetRow struct {
	Name string
	attendance.WeekRow
}

func (tc *TimesheetController) now() time.Time {
	if tc.Loc != nil {
		return time.Now().In(tc.Loc)
	}
	return time.Now()
}

// Report returns the weekly timesheet as JSON: one column per
// Monday-Saturday date in the range (default: current week) and one row
// per person with per-day hours plus late/undertime/overtime sums.
func (tc *TimesheetController) Report(c *gin.Context) {
	headers, rows, ok := tc.buildReport(c)
	if !ok {
		return
	}

	days := make([]gin.H, 0, len(headers))
	for _, h := range headers {
		days = append(days, gin.H{"key": h.Key, "label": h.Label})
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"ReferenceID": row.ReferenceID,
			"name":        row.Name,
			"days":        row.Days,
			"totalHours":  row.TotalHours(headers),
			"late":        row.Late,
			"undertime":   row.Undertime,
			"overtime":    row.Overtime,
		})
	}

	c.JSON(http.StatusOK, gin.H{"days": days, "rows": out})
}

// Export streams the same report as an .xlsx attachment. Rows with no
// activity at all are dropped, matching the on-screen export.
func (tc *TimesheetController) Export(c *gin.Context) {
	headers, rows, ok := tc.buildReport(c)
	if !ok {
		return
	}

	f, err := buildTimesheetWorkbook(headers, rows)
	if err != nil {
		log.Printf("timesheet export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build timesheet"})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="timesheet.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("timesheet export write: %v", err)
	}
}

func (tc *TimesheetController) buildReport(c *gin.Context) ([]attendance.DayHeader, []timesheetRow, bool) {
	uVal, _ := c.Get("user")
	user := uVal.(models.User)

	now := tc.now()

	var headers []attendance.DayHeader
	if from, to, ok := parseDateRange(c, tc.Loc); ok {
		headers = attendance.DayHeaders(from, to)
	} else {
		headers = attendance.CurrentWeekHeaders(now)
	}
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty date range"})
		return nil, nil, false
	}

	rangeStart := headers[0].Date
	rangeEnd := headers[len(headers)-1].Date.AddDate(0, 0, 1).Add(-time.Millisecond)

	q := tc.DB.Model(&models.ActivityLog{}).
		Where("date_created BETWEEN ? AND ?", rangeStart, rangeEnd)
	if !canViewAllLogs(user) {
		q = q.Where("reference_id = ?", user.ReferenceID)
	} else if ref := strings.TrimSpace(c.Query("referenceId")); ref != "" {
		q = q.Where("reference_id = ?", ref)
	}

	var logs []models.ActivityLog
	if err := q.Find(&logs).Error; err != nil {
		log.Printf("timesheet report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity logs"})
		return nil, nil, false
	}

	events := make([]attendance.RefEvent, 0, len(logs))
	for _, entry := range logs {
		at := entry.DateCreated
		if tc.Loc != nil {
			at = at.In(tc.Loc)
		}
		events = append(events, attendance.RefEvent{
			ReferenceID: entry.ReferenceID,
			Event:       attendance.Event{Status: entry.Status, At: at},
		})
	}

	weekRows := attendance.WeeklyReport(events, headers, now)

	names := tc.namesFor(weekRows)
	rows := make([]timesheetRow, 0, len(weekRows))
	for _, row := range weekRows {
		name := names[row.ReferenceID]
		if name == "" {
			name = row.ReferenceID
		}
		rows = append(rows, timesheetRow{Name: name, WeekRow: row})
	}
	return headers, rows, true
}

func (tc *TimesheetController) namesFor(rows []attendance.WeekRow) map[string]string {
	refs := make([]string, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, row.ReferenceID)
	}
	names := map[string]string{}
	if len(refs) == 0 {
		return names
	}
	var users []models.User
	if err := tc.DB.Where("reference_id IN ?", refs).Find(&users).Error; err != nil {
		log.Printf("timesheet names: %v", err)
		return names
	}
	for _, u := range users {
		names[u.ReferenceID] = strings.TrimSpace(u.Firstname + " " + u.Lastname)
	}
	return names
}

const timesheetSheet = "Timesheet"

func buildTimesheetWorkbook(headers []attendance.DayHeader, rows []timesheetRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", timesheetSheet); err != nil {
		return nil, err
	}

	cols := []string{"Name"}
	for _, h := range headers {
		cols = append(cols, h.Label)
	}
	cols = append(cols, "Total Hours", "Total Late", "Total Undertime", "Total Overtime")
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(timesheetSheet, cell, col); err != nil {
			return nil, err
		}
	}

	rowIdx := 2
	for _, row := range rows {
		if !row.HasActivity(headers) {
			continue
		}
		values := []interface{}{row.Name}
		for _, h := range headers {
			if hrs := row.Days[h.Key]; hrs > 0 {
				values = append(values, fmt.Sprintf("%.2f", hrs))
			} else {
				values = append(values, "-")
			}
		}
		values = append(values,
			fmt.Sprintf("%.2f", row.TotalHours(headers)),
			fmt.Sprintf("%.2f", row.Late),
			fmt.Sprintf("%.2f", row.Undertime),
			fmt.Sprintf("%.2f", row.Overtime),
		)
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(timesheetSheet, cell, v); err != nil {
				return nil, err
			}
		}
		rowIdx++
	}

	return f, nil
}
