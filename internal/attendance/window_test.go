package attendance

import (
	"testing"
	"time"
)

func TestBusinessDayAfterAnchor(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	start, end := BusinessDay(now)

	wantStart := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	wantEnd := time.Date(2025, 3, 11, 7, 59, 59, 999000000, time.UTC)
	if !end.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", end, wantEnd)
	}
}

func TestBusinessDayBeforeAnchorUsesPreviousDay(t *testing.T) {
	// 07:59:59 still belongs to the window that opened yesterday.
	now := time.Date(2025, 3, 10, 7, 59, 59, 0, time.UTC)
	start, _ := BusinessDay(now)

	wantStart := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
}

func TestBusinessDayAtAnchorStartsNewWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	start, _ := BusinessDay(now)

	wantStart := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
}

func TestBusinessDayContainsItsOwnStartAndEnd(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	start, end := BusinessDay(now)

	for _, tc := range []time.Time{start, now, end} {
		s, e := BusinessDay(tc)
		if !s.Equal(start) || !e.Equal(end) {
			t.Fatalf("BusinessDay(%v) = [%v, %v], want [%v, %v]", tc, s, e, start, end)
		}
	}
}

func TestCalendarDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 59, 59, 0, time.UTC)
	start, end := CalendarDay(now)

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 10, 23, 59, 59, 999000000, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Fatalf("CalendarDay = [%v, %v], want [%v, %v]", start, end, wantStart, wantEnd)
	}
}

func TestWindowsDisagreeBeforeEight(t *testing.T) {
	// Before 08:00 the calendar day and the business day cover different
	// dates; callers must not assume the two are interchangeable.
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	bStart, _ := BusinessDay(now)
	cStart, _ := CalendarDay(now)
	if bStart.Day() == cStart.Day() {
		t.Fatalf("expected business window to start on the previous day, got %v and %v", bStart, cStart)
	}
}
