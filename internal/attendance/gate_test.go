package attendance

import (
	"errors"
	"testing"
)

func TestGateAcceptsFirstEventOfWindow(t *testing.T) {
	g := Gate{}
	if err := g.Check("", 0, 0, StatusLogin, "On Field"); err != nil {
		t.Fatalf("expected first login to pass, got %v", err)
	}
}

func TestGateRejectsConsecutiveSameStatus(t *testing.T) {
	g := Gate{}
	for _, status := range []string{StatusLogin, StatusLogout} {
		err := g.Check(status, 1, 0, status, "On Field")
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("Check(last=%s, new=%s): expected ConflictError, got %v", status, status, err)
		}
	}
}

func TestGateConflictMessageMatchesStatus(t *testing.T) {
	err := Gate{}.Check(StatusLogin, 1, 0, StatusLogin, "On Field")
	if err == nil || err.Error() != "You are already login." {
		t.Fatalf("unexpected message: %v", err)
	}
	err = Gate{}.Check(StatusLogout, 1, 0, StatusLogout, "On Field")
	if err == nil || err.Error() != "You are already logout." {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestGateAcceptsAlternatingStatus(t *testing.T) {
	g := Gate{}
	if err := g.Check(StatusLogin, 1, 0, StatusLogout, "On Field"); err != nil {
		t.Fatalf("logout after login should pass, got %v", err)
	}
	if err := g.Check(StatusLogout, 1, 0, StatusLogin, "On Field"); err != nil {
		t.Fatalf("login after logout should pass, got %v", err)
	}
}

func TestGateLoginQuota(t *testing.T) {
	g := Gate{LoginQuota: 10}
	if err := g.Check(StatusLogout, 9, 0, StatusLogin, "On Field"); err != nil {
		t.Fatalf("9 prior logins should pass, got %v", err)
	}
	err := g.Check(StatusLogout, 10, 0, StatusLogin, "On Field")
	var quota *QuotaError
	if !errors.As(err, &quota) {
		t.Fatalf("10 prior logins: expected QuotaError, got %v", err)
	}
	if quota.Kind != "login" || quota.Limit != 10 {
		t.Fatalf("unexpected quota error: %+v", quota)
	}
}

func TestGateSiteVisitQuota(t *testing.T) {
	g := Gate{SiteVisitQuota: 10}
	if err := g.Check(StatusLogin, 0, 9, StatusLogout, TypeSiteVisit); err != nil {
		t.Fatalf("9 prior site visits should pass, got %v", err)
	}
	err := g.Check(StatusLogin, 0, 10, StatusLogout, TypeSiteVisit)
	var quota *QuotaError
	if !errors.As(err, &quota) {
		t.Fatalf("expected QuotaError, got %v", err)
	}
}

func TestGateSiteVisitQuotaIgnoresOtherTypes(t *testing.T) {
	g := Gate{}
	if err := g.Check(StatusLogin, 0, 50, StatusLogout, "On Field"); err != nil {
		t.Fatalf("site-visit quota should not apply to other types, got %v", err)
	}
}

func TestGateQuotaRejectionLeavesCountsUntouched(t *testing.T) {
	// Check is pure: a rejected call must not change the outcome of an
	// identical retry.
	g := Gate{}
	first := g.Check(StatusLogin, 1, 0, StatusLogin, "On Field")
	second := g.Check(StatusLogin, 1, 0, StatusLogin, "On Field")
	if first == nil || second == nil || first.Error() != second.Error() {
		t.Fatalf("expected identical rejections, got %v then %v", first, second)
	}
}

func TestGateZeroValueUsesDefaults(t *testing.T) {
	g := Gate{}
	if err := g.Check(StatusLogout, DefaultLoginQuota-1, 0, StatusLogin, "On Field"); err != nil {
		t.Fatalf("below default quota should pass, got %v", err)
	}
	if err := g.Check(StatusLogout, DefaultLoginQuota, 0, StatusLogin, "On Field"); err == nil {
		t.Fatal("at default quota should be rejected")
	}
}
