package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

type fakeProvider struct {
	mu          sync.Mutex
	records     []fixture.Record
	eventsByID  map[int64][]fixture.Event
	lineups     json.RawMessage
	err         error
	dates       []string
	eventCalls  atomic.Int32
	lineupCalls atomic.Int32
}

func (p *fakeProvider) FetchFixturesByDate(_ context.Context, date string) ([]fixture.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dates = append(p.dates, date)
	if p.err != nil {
		return nil, p.err
	}
	return append([]fixture.Record(nil), p.records...), nil
}

func (p *fakeProvider) FetchFixtureEvents(_ context.Context, fixtureID int64) ([]fixture.Event, error) {
	p.eventCalls.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return append([]fixture.Event(nil), p.eventsByID[fixtureID]...), nil
}

func (p *fakeProvider) FetchFixtureLineups(context.Context, int64) (json.RawMessage, error) {
	p.lineupCalls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return p.lineups, nil
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
