package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

type EventRepository struct {
	mu     sync.RWMutex
	nextID int64
	events map[int64][]fixture.Event
	synced map[int64]time.Time
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: make(map[int64][]fixture.Event),
		synced: make(map[int64]time.Time),
	}
}

func (r *EventRepository) ListByFixture(_ context.Context, fixtureID int64) ([]fixture.Event, error) {
	r.mu.RLock()
	items := r.events[fixtureID]
	out := make([]fixture.Event, 0, len(items))
	out = append(out, items...)
	r.mu.RUnlock()

	fixture.SortEvents(out)
	return out, nil
}

func (r *EventRepository) ReplaceForFixture(_ context.Context, fixtureID int64, events []fixture.Event, syncedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]fixture.Event, 0, len(events))
	for _, item := range events {
		r.nextID++
		item.ID = r.nextID
		item.FixtureID = fixtureID
		stored = append(stored, item)
	}
	r.events[fixtureID] = stored
	r.synced[fixtureID] = syncedAt
	return nil
}

func (r *EventRepository) LastSynced(_ context.Context, fixtureID int64) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	at, ok := r.synced[fixtureID]
	return at, ok, nil
}
