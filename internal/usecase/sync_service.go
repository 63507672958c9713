package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
)

const providerDateLayout = "2006-01-02"

type SyncConfig struct {
	// Location decides which calendar day counts as today.
	Location *time.Location
	Now      func() time.Time
	// RefreshWorkers > 0 refreshes events of live fixtures after each
	// today sync, using that many concurrent workers.
	RefreshWorkers int
}

// SyncService is the only writer of leagues, fixtures and events.
type SyncService struct {
	provider    FootballProvider
	fixtureRepo fixture.Repository
	eventRepo   fixture.EventRepository
	cfg         SyncConfig
	logger      *logging.Logger
}

func NewSyncService(
	provider FootballProvider,
	fixtureRepo fixture.Repository,
	eventRepo fixture.EventRepository,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &SyncService{
		provider:    provider,
		fixtureRepo: fixtureRepo,
		eventRepo:   eventRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Today returns the provider date string of the current calendar day.
func (s *SyncService) Today() string {
	return s.cfg.Now().In(s.cfg.Location).Format(providerDateLayout)
}

// SyncTodayFixtures pulls today's fixtures and upserts them in one batch.
func (s *SyncService) SyncTodayFixtures(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncTodayFixtures")
	defer span.End()

	date := s.Today()
	s.logger.InfoContext(ctx, "syncing fixtures from api-football", "date", date)

	records, err := s.provider.FetchFixturesByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("fetch fixtures date=%s: %w", date, err)
	}

	if err := s.fixtureRepo.UpsertBatch(ctx, records); err != nil {
		return 0, fmt.Errorf("%w: upsert fixtures date=%s: %w", ErrStore, date, err)
	}
	s.logger.InfoContext(ctx, "synced fixtures for today", "date", date, "fixtures", len(records))

	if s.cfg.RefreshWorkers > 0 {
		s.refreshLiveEvents(ctx, records)
	}

	return len(records), nil
}

// SyncFixtureEvents replaces the stored events of one fixture with the
// provider's current list and returns them in display order.
func (s *SyncService) SyncFixtureEvents(ctx context.Context, fixtureID int64) ([]fixture.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncFixtureEvents")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: invalid fixture id", ErrInvalidInput)
	}

	events, err := s.provider.FetchFixtureEvents(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("fetch events fixture=%d: %w", fixtureID, err)
	}

	if err := s.eventRepo.ReplaceForFixture(ctx, fixtureID, events, s.cfg.Now()); err != nil {
		return nil, fmt.Errorf("%w: replace events fixture=%d: %w", ErrStore, fixtureID, err)
	}

	stored, err := s.eventRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("%w: list events fixture=%d: %w", ErrStore, fixtureID, err)
	}
	return stored, nil
}

func (s *SyncService) refreshLiveEvents(ctx context.Context, records []fixture.Record) {
	live := make([]int64, 0)
	for _, record := range records {
		if fixture.IsLiveStatus(record.Fixture.StatusShort) {
			live = append(live, record.Fixture.ID)
		}
	}
	if len(live) == 0 {
		return
	}

	pool, err := ants.NewPool(s.cfg.RefreshWorkers)
	if err != nil {
		s.logger.WarnContext(ctx, "skip live events refresh: create worker pool", "error", err)
		return
	}
	defer pool.Release()

	var refreshed atomic.Int32
	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, fixtureID := range live {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if _, err := s.SyncFixtureEvents(ctx, fixtureID); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "refresh live fixture events failed", "fixture_id", fixtureID, "error", err)
				return
			}
			refreshed.Add(1)
		}); err != nil {
			workers.Done()
			failed.Add(1)
			s.logger.WarnContext(ctx, "submit live events refresh failed", "fixture_id", fixtureID, "error", err)
		}
	}
	workers.Wait()

	s.logger.InfoContext(ctx, "refreshed live fixture events",
		"live", len(live),
		"refreshed", refreshed.Load(),
		"failed", failed.Load(),
	)
}
