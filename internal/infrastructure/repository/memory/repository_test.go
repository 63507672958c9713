package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/favourite"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

func TestFixtureRepository_UpsertIsLastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := NewFixtureRepository()

	records := SeedRecords(day)
	if err := repo.UpsertBatch(ctx, records); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated := records[2]
	updated.Fixture.StatusShort = fixture.StatusFirstHalf
	updated.League.Name = "English Premier League"
	if err := repo.UpsertBatch(ctx, []fixture.Record{updated}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	from, to := fixture.DayRange(day, time.UTC)
	items, err := repo.ListByRange(ctx, from, to, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected one row per fixture id, got %d", len(items))
	}

	for _, item := range items {
		if item.ID == 1002 && item.StatusShort != fixture.StatusFirstHalf {
			t.Fatalf("expected second write to win, got %q", item.StatusShort)
		}
		if item.LeagueID == LeagueIDPremierLeague && item.League.Name != "English Premier League" {
			t.Fatalf("expected league rename on every premier fixture, got %q", item.League.Name)
		}
	}
}

func TestFixtureRepository_ListByRangeOrdersAndFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	records := SeedRecords(day)
	yesterday := records[0]
	yesterday.Fixture.ID = 999
	yesterday.Fixture.StartTime = day.Add(-time.Hour)
	repo := NewFixtureRepository(append(records, yesterday)...)

	from, to := fixture.DayRange(day, time.UTC)
	items, err := repo.ListByRange(ctx, from, to, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []int64{1001, 2001, 1002}
	if len(items) != len(want) {
		t.Fatalf("unexpected count: got %d want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: got %d want %d", i, items[i].ID, id)
		}
	}

	filtered, err := repo.ListByRange(ctx, from, to, LeagueIDLaLiga)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != 2001 {
		t.Fatalf("unexpected filtered fixtures: %+v", filtered)
	}
}

func TestFixtureRepository_UpsertBatchRejectsInvalidAtomically(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := NewFixtureRepository()

	records := SeedRecords(day)
	records[1].Fixture.ID = 0
	if err := repo.UpsertBatch(ctx, records); err == nil {
		t.Fatalf("expected validation error")
	}

	from, to := fixture.DayRange(day, time.UTC)
	items, _ := repo.ListByRange(ctx, from, to, 0)
	if len(items) != 0 {
		t.Fatalf("expected no partial writes, got %d", len(items))
	}
}

func TestEventRepository_ReplaceIsFull(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewEventRepository()
	goal, card := "Goal", "Card"
	ten, five := 10, 5

	first := []fixture.Event{{Elapsed: &ten, Type: &goal}, {Elapsed: &five, Type: &card}}
	if err := repo.ReplaceForFixture(ctx, 1001, first, time.Now()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	items, _ := repo.ListByFixture(ctx, 1001)
	if len(items) != 2 || *items[0].Type != "Card" {
		t.Fatalf("expected events ordered by minute, got %+v", items)
	}

	if err := repo.ReplaceForFixture(ctx, 1001, []fixture.Event{{Elapsed: &ten, Type: &goal}}, time.Now()); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	items, _ = repo.ListByFixture(ctx, 1001)
	if len(items) != 1 || *items[0].Type != "Goal" {
		t.Fatalf("expected card to be gone after replace, got %+v", items)
	}
}

func TestEventRepository_LastSynced(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewEventRepository()

	if _, ok, _ := repo.LastSynced(ctx, 1001); ok {
		t.Fatalf("expected no sync marker yet")
	}

	at := time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)
	_ = repo.ReplaceForFixture(ctx, 1001, nil, at)
	got, ok, err := repo.LastSynced(ctx, 1001)
	if err != nil || !ok || !got.Equal(at) {
		t.Fatalf("unexpected marker: at=%s ok=%t err=%v", got, ok, err)
	}
}

func TestFavouriteRepository_IdempotentAddAndRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFavouriteRepository()
	arsenal := favourite.Team{UserID: 1, TeamName: "Arsenal"}

	for i := 0; i < 2; i++ {
		if err := repo.Add(ctx, arsenal); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	_ = repo.Add(ctx, favourite.Team{UserID: 1, TeamName: "Ajax"})
	_ = repo.Add(ctx, favourite.Team{UserID: 2, TeamName: "Benfica"})

	names, _ := repo.ListByUser(ctx, 1)
	if len(names) != 2 || names[0] != "Ajax" || names[1] != "Arsenal" {
		t.Fatalf("unexpected favourites: %v", names)
	}

	if err := repo.Remove(ctx, favourite.Team{UserID: 3, TeamName: "Porto"}); err != nil {
		t.Fatalf("remove of missing pair should succeed: %v", err)
	}
	_ = repo.Remove(ctx, arsenal)
	names, _ = repo.ListByUser(ctx, 1)
	if len(names) != 1 || names[0] != "Ajax" {
		t.Fatalf("unexpected favourites after remove: %v", names)
	}
}
