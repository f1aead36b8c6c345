package attendance

import "time"

// BusinessDay returns the attendance window containing t. Windows are
// anchored at 08:00 local time and run until 07:59:59.999 the next
// morning, so an event at 07:59:59 still belongs to the window that
// opened the previous day. AddLog and LoginSummary count against this
// window.
func BusinessDay(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 8, 0, 0, 0, t.Location())
	if t.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// CalendarDay returns the midnight-to-midnight window containing t.
// LastStatus and SiteVisitCountToday query this window rather than the
// 08:00-anchored one; the mismatch is inherited behavior and kept as-is.
func CalendarDay(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}
