package attendance

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 15, hour, min, 0, 0, time.UTC)
}

func TestDailyTotalsFullDay(t *testing.T) {
	events := []Event{
		{Status: "Login", At: at(8, 15)},
		{Status: "Logout", At: at(17, 30)},
	}
	got := DailyTotals(events, at(20, 0))

	// 08:15-17:30 is 9.25h, minus the fully-overlapped lunch hour.
	want := DayTotals{Hours: 8.25, Late: 0.25, Undertime: 0, Overtime: 0.5}
	if got != want {
		t.Fatalf("DailyTotals = %+v, want %+v", got, want)
	}
}

func TestDailyTotalsOpenSessionCappedAtNow(t *testing.T) {
	events := []Event{{Status: "Login", At: at(9, 0)}}
	got := DailyTotals(events, at(15, 0))

	// endTime = now (15:00): 6h span minus lunch = 5h, 2h short of shift end.
	want := DayTotals{Hours: 5, Late: 1, Undertime: 2, Overtime: 0}
	if got != want {
		t.Fatalf("DailyTotals = %+v, want %+v", got, want)
	}
}

func TestDailyTotalsOpenSessionCappedAtShiftEnd(t *testing.T) {
	events := []Event{{Status: "Login", At: at(9, 0)}}
	got := DailyTotals(events, at(22, 0))

	// Open sessions are never extrapolated past shift end.
	want := DayTotals{Hours: 7, Late: 1, Undertime: 0, Overtime: 0}
	if got != want {
		t.Fatalf("DailyTotals = %+v, want %+v", got, want)
	}
}

func TestDailyTotalsNoLogin(t *testing.T) {
	events := []Event{{Status: "Logout", At: at(17, 0)}}
	if got := DailyTotals(events, at(18, 0)); got != (DayTotals{}) {
		t.Fatalf("expected all zeros without a login, got %+v", got)
	}
	if got := DailyTotals(nil, at(18, 0)); got != (DayTotals{}) {
		t.Fatalf("expected all zeros for empty input, got %+v", got)
	}
}

func TestDailyTotalsPartialLunchOverlap(t *testing.T) {
	events := []Event{
		{Status: "Login", At: at(12, 30)},
		{Status: "Logout", At: at(17, 0)},
	}
	got := DailyTotals(events, at(18, 0))

	// Only 12:30-13:00 of the lunch hour overlaps the span.
	want := DayTotals{Hours: 4, Late: 4.5, Undertime: 0, Overtime: 0}
	if got != want {
		t.Fatalf("DailyTotals = %+v, want %+v", got, want)
	}
}

func TestDailyTotalsNoLunchOverlap(t *testing.T) {
	events := []Event{
		{Status: "Login", At: at(13, 0)},
		{Status: "Logout", At: at(17, 0)},
	}
	got := DailyTotals(events, at(18, 0))
	if got.Hours != 4 {
		t.Fatalf("hours = %v, want 4 (no lunch deduction after 13:00)", got.Hours)
	}
}

func TestDailyTotalsUsesFirstLoginLastLogout(t *testing.T) {
	events := []Event{
		{Status: "Logout", At: at(12, 0)},
		{Status: "Login", At: at(13, 0)},
		{Status: "Login", At: at(8, 0)},
		{Status: "Logout", At: at(17, 0)},
	}
	got := DailyTotals(events, at(18, 0))

	want := DayTotals{Hours: 8, Late: 0, Undertime: 0, Overtime: 0}
	if got != want {
		t.Fatalf("DailyTotals = %+v, want %+v", got, want)
	}
}

func TestCurrentWeekHeadersSkipSunday(t *testing.T) {
	// 2025-03-12 is a Wednesday; the week runs Mon 10th .. Sat 15th.
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	headers := CurrentWeekHeaders(now)

	if len(headers) != 6 {
		t.Fatalf("len(headers) = %d, want 6", len(headers))
	}
	if headers[0].Key != "2025-03-10" || headers[5].Key != "2025-03-15" {
		t.Fatalf("headers span %s..%s, want 2025-03-10..2025-03-15", headers[0].Key, headers[5].Key)
	}
	for _, h := range headers {
		if h.Date.Weekday() == time.Sunday {
			t.Fatalf("headers include a Sunday: %s", h.Key)
		}
	}
	if headers[5].Label != "15 | Saturday" {
		t.Fatalf("label = %q, want %q", headers[5].Label, "15 | Saturday")
	}
}

func TestDayHeadersRangeSkipsSundays(t *testing.T) {
	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) // Friday
	to := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)   // Monday
	headers := DayHeaders(from, to)

	want := []string{"2025-03-14", "2025-03-15", "2025-03-17"}
	if len(headers) != len(want) {
		t.Fatalf("len(headers) = %d, want %d", len(headers), len(want))
	}
	for i, h := range headers {
		if h.Key != want[i] {
			t.Fatalf("headers[%d] = %s, want %s", i, h.Key, want[i])
		}
	}
}

func TestWeeklyReportAggregatesPerPerson(t *testing.T) {
	now := time.Date(2025, 3, 16, 20, 0, 0, 0, time.UTC)
	headers := DayHeaders(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	)

	day := func(d, hour, min int) time.Time {
		return time.Date(2025, 3, d, hour, min, 0, 0, time.UTC)
	}
	events := []RefEvent{
		{ReferenceID: "EMP-002", Event: Event{Status: "Login", At: day(10, 8, 0)}},
		{ReferenceID: "EMP-002", Event: Event{Status: "Logout", At: day(10, 17, 0)}},
		{ReferenceID: "EMP-001", Event: Event{Status: "Login", At: day(10, 8, 30)}},
		{ReferenceID: "EMP-001", Event: Event{Status: "Logout", At: day(10, 17, 0)}},
		{ReferenceID: "EMP-001", Event: Event{Status: "Login", At: day(11, 8, 0)}},
		{ReferenceID: "EMP-001", Event: Event{Status: "Logout", At: day(11, 18, 0)}},
		// Outside the requested range; must be ignored.
		{ReferenceID: "EMP-001", Event: Event{Status: "Login", At: day(17, 8, 0)}},
	}

	rows := WeeklyReport(events, headers, now)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].ReferenceID != "EMP-001" || rows[1].ReferenceID != "EMP-002" {
		t.Fatalf("rows not sorted by ReferenceID: %s, %s", rows[0].ReferenceID, rows[1].ReferenceID)
	}

	emp1 := rows[0]
	if emp1.Days["2025-03-10"] != 7.5 {
		t.Fatalf("EMP-001 Mon hours = %v, want 7.5", emp1.Days["2025-03-10"])
	}
	if emp1.Days["2025-03-11"] != 9 {
		t.Fatalf("EMP-001 Tue hours = %v, want 9", emp1.Days["2025-03-11"])
	}
	if emp1.Days["2025-03-17"] != 0 {
		t.Fatalf("out-of-range date leaked into the report")
	}
	if emp1.Late != 0.5 || emp1.Overtime != 1 || emp1.Undertime != 0 {
		t.Fatalf("EMP-001 totals = late %v, undertime %v, overtime %v", emp1.Late, emp1.Undertime, emp1.Overtime)
	}
	if got := emp1.TotalHours(headers); got != 16.5 {
		t.Fatalf("EMP-001 total hours = %v, want 16.5", got)
	}
	if !emp1.HasActivity(headers) {
		t.Fatal("EMP-001 should report activity")
	}
}
