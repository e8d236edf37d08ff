package utils

import (
	"testing"
	"time"
)

func TestTicketRoundTrip(t *testing.T) {
	m, err := NewManager("test-key")
	if err != nil {
		t.Fatalf("creating manager: %v", err)
	}

	ticket, err := m.NewTicket(42, time.Minute)
	if err != nil {
		t.Fatalf("signing ticket: %v", err)
	}

	userID, err := m.ParseTicket(ticket)
	if err != nil {
		t.Fatalf("parsing ticket: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected 42 got %d", userID)
	}
}

func TestTicketExpired(t *testing.T) {
	m, _ := NewManager("test-key")

	ticket, err := m.NewTicket(7, -time.Minute)
	if err != nil {
		t.Fatalf("signing ticket: %v", err)
	}
	if _, err := m.ParseTicket(ticket); err == nil {
		t.Fatal("expected expired ticket to be rejected")
	}
}

func TestTicketWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	ticket, err := m1.NewTicket(7, time.Minute)
	if err != nil {
		t.Fatalf("signing ticket: %v", err)
	}
	if _, err := m2.ParseTicket(ticket); err == nil {
		t.Fatal("expected ticket signed with another key to be rejected")
	}
}

func TestNewManagerEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected empty key to be rejected")
	}
}

func TestRandomHex(t *testing.T) {
	a, err := RandomHex(16)
	if err != nil {
		t.Fatalf("generating: %v", err)
	}
	if len(a) != 32 {
		t.Fatalf("expected 32 hex chars got %d", len(a))
	}

	b, _ := RandomHex(16)
	if a == b {
		t.Fatal("expected distinct values")
	}
}
