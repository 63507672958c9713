package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
)

const DefaultEventsMissTTL = 2 * time.Minute

type EventServiceConfig struct {
	// MissTTL bounds how often an empty cached list triggers a provider sync.
	MissTTL time.Duration
	Now     func() time.Time
}

type EventService struct {
	eventRepo fixture.EventRepository
	syncer    *SyncService
	cfg       EventServiceConfig
	logger    *logging.Logger
}

func NewEventService(eventRepo fixture.EventRepository, syncer *SyncService, cfg EventServiceConfig, logger *logging.Logger) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MissTTL < 0 {
		cfg.MissTTL = 0
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &EventService{eventRepo: eventRepo, syncer: syncer, cfg: cfg, logger: logger}
}

// ListByFixture serves cached events. An empty cache falls through to a
// synchronous provider sync unless the fixture was synced within MissTTL.
func (s *EventService) ListByFixture(ctx context.Context, fixtureID int64) ([]fixture.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListByFixture")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: invalid fixture id", ErrInvalidInput)
	}

	events, err := s.eventRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("%w: list events fixture=%d: %w", ErrStore, fixtureID, err)
	}
	if len(events) > 0 {
		return events, nil
	}

	lastSynced, synced, err := s.eventRepo.LastSynced(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("%w: read event sync fixture=%d: %w", ErrStore, fixtureID, err)
	}
	if synced && s.cfg.Now().Sub(lastSynced) < s.cfg.MissTTL {
		return []fixture.Event{}, nil
	}

	s.logger.DebugContext(ctx, "events cache miss, syncing from provider", "fixture_id", fixtureID, "previously_synced", synced)
	return s.syncer.SyncFixtureEvents(ctx, fixtureID)
}
