package fixture

import (
	"context"
	"time"
)

// Repository stores leagues and fixtures written by the sync job.
type Repository interface {
	// UpsertBatch writes every record in one transaction; a failure leaves
	// the store unchanged.
	UpsertBatch(ctx context.Context, records []Record) error
	// ListByRange returns fixtures with from <= start_time < to ordered by
	// start time. leagueID 0 means every league.
	ListByRange(ctx context.Context, from, to time.Time, leagueID int64) ([]WithLeague, error)
}

// EventRepository stores per-fixture events, replaced wholesale on sync.
type EventRepository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]Event, error)
	ReplaceForFixture(ctx context.Context, fixtureID int64, events []Event, syncedAt time.Time) error
	// LastSynced reports when events of the fixture were last replaced.
	LastSynced(ctx context.Context, fixtureID int64) (time.Time, bool, error)
}
