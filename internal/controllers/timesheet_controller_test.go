package controllers

import (
	"testing"
	"time"

	"github.com/xchire/acculog/internal/attendance"
)

func TestBuildTimesheetWorkbook(t *testing.T) {
	headers := attendance.DayHeaders(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	)
	rows := []timesheetRow{
		{
			Name: "Juan Dela Cruz",
			WeekRow: attendance.WeekRow{
				ReferenceID: "EMP-001",
				Days:        map[string]float64{"2025-03-10": 8.25, "2025-03-11": 0},
				Late:        0.25,
				Undertime:   0,
				Overtime:    0.5,
			},
		},
		{
			// No activity at all; must be dropped from the export.
			Name: "Idle Employee",
			WeekRow: attendance.WeekRow{
				ReferenceID: "EMP-002",
				Days:        map[string]float64{"2025-03-10": 0, "2025-03-11": 0},
			},
		},
	}

	f, err := buildTimesheetWorkbook(headers, rows)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(timesheetSheet, cell)
		if err != nil {
			t.Fatalf("get cell %s: %v", cell, err)
		}
		return v
	}

	if got := get("A1"); got != "Name" {
		t.Fatalf("A1 = %q, want Name", got)
	}
	if got := get("B1"); got != "10 | Monday" {
		t.Fatalf("B1 = %q, want %q", got, "10 | Monday")
	}
	if got := get("D1"); got != "Total Hours" {
		t.Fatalf("D1 = %q, want Total Hours", got)
	}
	if got := get("G1"); got != "Total Overtime" {
		t.Fatalf("G1 = %q, want Total Overtime", got)
	}

	if got := get("A2"); got != "Juan Dela Cruz" {
		t.Fatalf("A2 = %q", got)
	}
	if got := get("B2"); got != "8.25" {
		t.Fatalf("B2 = %q, want 8.25", got)
	}
	if got := get("C2"); got != "-" {
		t.Fatalf("C2 = %q, want -", got)
	}
	if got := get("D2"); got != "8.25" {
		t.Fatalf("D2 = %q, want 8.25", got)
	}
	if got := get("E2"); got != "0.25" {
		t.Fatalf("E2 = %q, want 0.25", got)
	}
	if got := get("G2"); got != "0.50" {
		t.Fatalf("G2 = %q, want 0.50", got)
	}

	// The idle row must not appear.
	if got := get("A3"); got != "" {
		t.Fatalf("A3 = %q, want empty", got)
	}
}
