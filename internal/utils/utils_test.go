package utils

import (
	"strings"
	"testing"
)

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !CheckPassword(hash, "hunter2secret") {
		t.Fatalf("expected password check to succeed")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatalf("expected wrong password check to fail")
	}
}

func TestNewTicketID(t *testing.T) {
	id, err := NewTicketID()
	if err != nil {
		t.Fatalf("new ticket id: %v", err)
	}
	if !strings.HasPrefix(id, "TKT-") {
		t.Fatalf("ticket id %q missing prefix", id)
	}
	if len(id) != len("TKT-")+ticketIDLength {
		t.Fatalf("ticket id %q has wrong length", id)
	}
	other, err := NewTicketID()
	if err != nil {
		t.Fatalf("new ticket id: %v", err)
	}
	if id == other {
		t.Fatalf("two generated ids collided: %q", id)
	}
}
