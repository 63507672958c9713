package usecase

import (
	"context"
	"encoding/json"
	"fmt"
)

// LineupService proxies lineups straight from the provider; nothing is stored.
type LineupService struct {
	provider FootballProvider
}

func NewLineupService(provider FootballProvider) *LineupService {
	return &LineupService{provider: provider}
}

func (s *LineupService) ListByFixture(ctx context.Context, fixtureID int64) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ListByFixture")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: invalid fixture id", ErrInvalidInput)
	}

	raw, err := s.provider.FetchFixtureLineups(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("fetch lineups fixture=%d: %w", fixtureID, err)
	}
	if len(raw) == 0 {
		return json.RawMessage("[]"), nil
	}
	return raw, nil
}
