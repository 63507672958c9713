package fixture

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestIsLiveStatus(t *testing.T) {
	t.Parallel()

	live := []string{"1H", "2h", " ET ", "P", "BT", "LIVE", "HT"}
	for _, status := range live {
		if !IsLiveStatus(status) {
			t.Fatalf("expected %q to be live", status)
		}
	}
	for _, status := range []string{"NS", "FT", "PST", ""} {
		if IsLiveStatus(status) {
			t.Fatalf("expected %q not to be live", status)
		}
	}
}

func TestDayRange(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*3600)
	now := time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC) // 03:30 next day in UTC+7

	from, to := DayRange(now, loc)
	wantFrom := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	if !from.Equal(wantFrom) {
		t.Fatalf("unexpected from: got %s want %s", from, wantFrom)
	}
	if to.Sub(from) != 24*time.Hour {
		t.Fatalf("unexpected range length: %s", to.Sub(from))
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()

	valid := Record{
		League:  League{ID: 39, Name: "Premier League"},
		Fixture: Fixture{ID: 1001, LeagueID: 39, StartTime: time.Now()},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	mismatch := valid
	mismatch.Fixture.LeagueID = 40
	if err := mismatch.Validate(); err == nil {
		t.Fatalf("expected league mismatch error")
	}

	missing := valid
	missing.Fixture.ID = 0
	if err := missing.Validate(); err == nil {
		t.Fatalf("expected missing id error")
	}
}

func TestSortEvents(t *testing.T) {
	t.Parallel()

	events := []Event{
		{ID: 1, Elapsed: intPtr(50)},
		{ID: 2},
		{ID: 3, Elapsed: intPtr(10)},
		{ID: 4, Elapsed: intPtr(50)},
		{ID: 5, Elapsed: intPtr(10)},
	}
	SortEvents(events)

	want := []int64{3, 5, 1, 4, 2}
	for i, id := range want {
		if events[i].ID != id {
			t.Fatalf("position %d: got id %d want %d", i, events[i].ID, id)
		}
	}
}
