package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("select: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation events does not exist")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}

func TestNullStringRoundTrip(t *testing.T) {
	empty := ""
	if got := nullString(&empty); got.Valid {
		t.Fatalf("expected empty string to be stored as NULL")
	}
	if got := nullString(nil); got.Valid {
		t.Fatalf("expected nil to be stored as NULL")
	}

	logo := "https://media.api-sports.io/football/leagues/39.png"
	got := stringPtr(nullString(&logo))
	if got == nil || *got != logo {
		t.Fatalf("unexpected round trip value: %v", got)
	}
}

func TestNullIntRoundTrip(t *testing.T) {
	if got := intPtr(nullInt(nil)); got != nil {
		t.Fatalf("expected nil, got %d", *got)
	}

	zero := 0
	got := intPtr(nullInt(&zero))
	if got == nil || *got != 0 {
		t.Fatalf("expected zero goals to survive, got %v", got)
	}
}
