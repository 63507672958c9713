package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	leagues  map[int64]fixture.League
	fixtures map[int64]fixture.Fixture
}

func NewFixtureRepository(records ...fixture.Record) *FixtureRepository {
	r := &FixtureRepository{
		leagues:  make(map[int64]fixture.League),
		fixtures: make(map[int64]fixture.Fixture),
	}
	r.apply(records)
	return r
}

func (r *FixtureRepository) UpsertBatch(_ context.Context, records []fixture.Record) error {
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.apply(records)
	r.mu.Unlock()
	return nil
}

func (r *FixtureRepository) apply(records []fixture.Record) {
	for _, record := range records {
		r.leagues[record.League.ID] = record.League
		r.fixtures[record.Fixture.ID] = record.Fixture
	}
}

func (r *FixtureRepository) ListByRange(_ context.Context, from, to time.Time, leagueID int64) ([]fixture.WithLeague, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.WithLeague, 0)
	for _, item := range r.fixtures {
		if item.StartTime.Before(from) || !item.StartTime.Before(to) {
			continue
		}
		if leagueID > 0 && item.LeagueID != leagueID {
			continue
		}
		l, ok := r.leagues[item.LeagueID]
		if !ok {
			continue
		}
		out = append(out, fixture.WithLeague{Fixture: item, League: l})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
