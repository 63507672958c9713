package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

type FixtureServiceConfig struct {
	Location *time.Location
	Now      func() time.Time
}

type FixtureService struct {
	fixtureRepo fixture.Repository
	cfg         FixtureServiceConfig
}

func NewFixtureService(fixtureRepo fixture.Repository, cfg FixtureServiceConfig) *FixtureService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &FixtureService{fixtureRepo: fixtureRepo, cfg: cfg}
}

// ListToday reads today's cached fixtures; it never calls the provider.
// leagueID 0 lists every league.
func (s *FixtureService) ListToday(ctx context.Context, leagueID int64) ([]fixture.WithLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListToday")
	defer span.End()

	if leagueID < 0 {
		leagueID = 0
	}

	from, to := fixture.DayRange(s.cfg.Now(), s.cfg.Location)
	items, err := s.fixtureRepo.ListByRange(ctx, from, to, leagueID)
	if err != nil {
		return nil, fmt.Errorf("%w: list today fixtures: %w", ErrStore, err)
	}
	return items, nil
}
