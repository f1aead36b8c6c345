package attendance

import (
	"fmt"
	"strings"
)

const (
	StatusLogin  = "Login"
	StatusLogout = "Logout"

	TypeSiteVisit = "Site Visit"

	DefaultLoginQuota     = 10
	DefaultSiteVisitQuota = 10
)

// ConflictError rejects an event whose Status would repeat the most
// recent same-window event.
type ConflictError struct {
	Status string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("You are already %s.", strings.ToLower(e.Status))
}

// QuotaError rejects an event that would exceed a per-window limit.
type QuotaError struct {
	Kind  string
	Limit int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("Daily %s limit of %d reached.", e.Kind, e.Limit)
}

// Gate holds the per-window limits applied to new attendance events.
// Zero values fall back to the defaults.
type Gate struct {
	LoginQuota     int
	SiteVisitQuota int
}

// Check decides whether a new event may be appended given the most
// recent same-window status (empty string when the window has no
// events) and the same-window Login and Site Visit counts. Nothing
// outside the current window is consulted.
func (g Gate) Check(lastStatus string, loginCount, siteVisitCount int, status, eventType string) error {
	if lastStatus != "" && lastStatus == status {
		return &ConflictError{Status: status}
	}
	if status == StatusLogin && loginCount >= g.loginQuota() {
		return &QuotaError{Kind: "login", Limit: g.loginQuota()}
	}
	if eventType == TypeSiteVisit && siteVisitCount >= g.siteVisitQuota() {
		return &QuotaError{Kind: "site visit", Limit: g.siteVisitQuota()}
	}
	return nil
}

func (g Gate) loginQuota() int {
	if g.LoginQuota > 0 {
		return g.LoginQuota
	}
	return DefaultLoginQuota
}

func (g Gate) siteVisitQuota() int {
	if g.SiteVisitQuota > 0 {
		return g.SiteVisitQuota
	}
	return DefaultSiteVisitQuota
}
