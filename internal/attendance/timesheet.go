package attendance

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Shift rules:
//   - Shift: 08:00 - 17:00
//   - Lunch deduction: 12:00 - 13:00
//   - Rounding: 2 decimals
const (
	shiftStartHour = 8
	shiftEndHour   = 17
	lunchStartHour = 12
	lunchEndHour   = 13
)

// Event is the slice of an activity log the timesheet math needs.
type Event struct {
	Status string
	At     time.Time
}

// DayTotals holds the derived figures for one person on one date, all
// in hours.
type DayTotals struct {
	Hours     float64 `json:"hours"`
	Late      float64 `json:"late"`
	Undertime float64 `json:"undertime"`
	Overtime  float64 `json:"overtime"`
}

// DailyTotals turns one day's events into worked-hours figures. The
// span runs from the earliest Login to the latest Logout; an open
// session is capped at min(now, shift end) and never extrapolated into
// the future. The lunch hour is deducted only where it overlaps the
// actual span. Without any Login everything is zero.
func DailyTotals(events []Event, now time.Time) DayTotals {
	var logins, logouts []time.Time
	for _, ev := range events {
		switch strings.ToLower(ev.Status) {
		case "login":
			logins = append(logins, ev.At)
		case "logout":
			logouts = append(logouts, ev.At)
		}
	}
	sort.Slice(logins, func(i, j int) bool { return logins[i].Before(logins[j]) })
	sort.Slice(logouts, func(i, j int) bool { return logouts[i].Before(logouts[j]) })

	if len(logins) == 0 {
		return DayTotals{}
	}
	firstLogin := logins[0]

	var lastLogout time.Time
	if len(logouts) > 0 {
		lastLogout = logouts[len(logouts)-1]
	}

	y, m, d := firstLogin.Date()
	loc := firstLogin.Location()
	shiftStart := time.Date(y, m, d, shiftStartHour, 0, 0, 0, loc)
	shiftEnd := time.Date(y, m, d, shiftEndHour, 0, 0, 0, loc)

	var endTime time.Time
	if !lastLogout.IsZero() && lastLogout.After(firstLogin) {
		endTime = lastLogout
	} else if now.Before(shiftEnd) {
		endTime = now
	} else {
		endTime = shiftEnd
	}

	total := endTime.Sub(firstLogin)

	lunchStart := time.Date(y, m, d, lunchStartHour, 0, 0, 0, loc)
	lunchEnd := time.Date(y, m, d, lunchEndHour, 0, 0, 0, loc)
	if firstLogin.Before(lunchEnd) && endTime.After(lunchStart) {
		overlapStart := lunchStart
		if firstLogin.After(overlapStart) {
			overlapStart = firstLogin
		}
		overlapEnd := lunchEnd
		if endTime.Before(overlapEnd) {
			overlapEnd = endTime
		}
		if overlap := overlapEnd.Sub(overlapStart); overlap > 0 {
			total -= overlap
		}
	}

	var late, undertime, overtime float64
	if firstLogin.After(shiftStart) {
		late = firstLogin.Sub(shiftStart).Hours()
	}
	if endTime.Before(shiftEnd) {
		undertime = shiftEnd.Sub(endTime).Hours()
	}
	if endTime.After(shiftEnd) {
		overtime = endTime.Sub(shiftEnd).Hours()
	}

	return DayTotals{
		Hours:     round2(total.Hours()),
		Late:      round2(late),
		Undertime: round2(undertime),
		Overtime:  round2(overtime),
	}
}

// DayHeader is one report column: a calendar date with its grouping key
// and display label.
type DayHeader struct {
	Date  time.Time `json:"-"`
	Key   string    `json:"key"`   // YYYY-MM-DD
	Label string    `json:"label"` // e.g. "15 | Saturday"
}

// DateKey formats t as the YYYY-MM-DD grouping key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayHeaders lists report columns for every date in [from, to],
// Sundays excluded.
func DayHeaders(from, to time.Time) []DayHeader {
	var out []DayHeader
	for d := startOfDay(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		out = append(out, headerFor(d))
	}
	return out
}

// CurrentWeekHeaders lists Monday through Saturday of the week
// containing now.
func CurrentWeekHeaders(now time.Time) []DayHeader {
	offset := (int(now.Weekday()) + 6) % 7
	monday := startOfDay(now.AddDate(0, 0, -offset))
	out := make([]DayHeader, 0, 6)
	for i := 0; i < 6; i++ {
		out = append(out, headerFor(monday.AddDate(0, 0, i)))
	}
	return out
}

func headerFor(d time.Time) DayHeader {
	return DayHeader{
		Date:  d,
		Key:   DateKey(d),
		Label: fmt.Sprintf("%d | %s", d.Day(), d.Weekday()),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RefEvent tags an event with its owner for report grouping.
type RefEvent struct {
	ReferenceID string
	Event
}

// WeekRow is one person's report line: worked hours per day column plus
// late/undertime/overtime summed across the range.
type WeekRow struct {
	ReferenceID string             `json:"ReferenceID"`
	Days        map[string]float64 `json:"days"`
	Late        float64            `json:"late"`
	Undertime   float64            `json:"undertime"`
	Overtime    float64            `json:"overtime"`
}

// TotalHours sums the row's hours across the given columns.
func (r WeekRow) TotalHours(headers []DayHeader) float64 {
	var sum float64
	for _, h := range headers {
		sum += r.Days[h.Key]
	}
	return round2(sum)
}

// HasActivity reports whether the row carries any nonzero figure.
func (r WeekRow) HasActivity(headers []DayHeader) bool {
	return r.TotalHours(headers) > 0 || r.Late+r.Undertime+r.Overtime > 0
}

// WeeklyReport groups events by (ReferenceID, local date), derives each
// day's totals, and sums late/undertime/overtime per person. Only dates
// present in headers contribute. Rows come back sorted by ReferenceID.
func WeeklyReport(events []RefEvent, headers []DayHeader, now time.Time) []WeekRow {
	wanted := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		wanted[h.Key] = struct{}{}
	}

	grouped := map[string]map[string][]Event{}
	for _, ev := range events {
		key := DateKey(ev.At)
		if _, ok := wanted[key]; !ok {
			continue
		}
		if grouped[ev.ReferenceID] == nil {
			grouped[ev.ReferenceID] = map[string][]Event{}
		}
		grouped[ev.ReferenceID][key] = append(grouped[ev.ReferenceID][key], ev.Event)
	}

	rows := make([]WeekRow, 0, len(grouped))
	for ref, days := range grouped {
		row := WeekRow{ReferenceID: ref, Days: map[string]float64{}}
		for _, h := range headers {
			row.Days[h.Key] = 0
		}
		for key, evs := range days {
			totals := DailyTotals(evs, now)
			row.Days[key] = totals.Hours
			row.Late = round2(row.Late + totals.Late)
			row.Undertime = round2(row.Undertime + totals.Undertime)
			row.Overtime = round2(row.Overtime + totals.Overtime)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ReferenceID < rows[j].ReferenceID })
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
