package usecase

import (
	"context"
	"encoding/json"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

// FootballProvider is the upstream sports data source.
type FootballProvider interface {
	FetchFixturesByDate(ctx context.Context, date string) ([]fixture.Record, error)
	FetchFixtureEvents(ctx context.Context, fixtureID int64) ([]fixture.Event, error)
	// FetchFixtureLineups returns the provider's response array untouched.
	FetchFixtureLineups(ctx context.Context, fixtureID int64) (json.RawMessage, error)
}
