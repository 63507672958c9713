package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-dashboard/internal/domain/favourite"
)

type FavouriteService struct {
	repo favourite.Repository
}

func NewFavouriteService(repo favourite.Repository) *FavouriteService {
	return &FavouriteService{repo: repo}
}

func (s *FavouriteService) List(ctx context.Context, userID int64) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavouriteService.List")
	defer span.End()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	names, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list favourite teams user=%d: %w", ErrStore, userID, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *FavouriteService) Add(ctx context.Context, team favourite.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavouriteService.Add")
	defer span.End()

	if err := team.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.repo.Add(ctx, team); err != nil {
		return fmt.Errorf("%w: add favourite team: %w", ErrStore, err)
	}
	return nil
}

func (s *FavouriteService) Remove(ctx context.Context, team favourite.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavouriteService.Remove")
	defer span.End()

	if err := team.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.repo.Remove(ctx, team); err != nil {
		return fmt.Errorf("%w: remove favourite team: %w", ErrStore, err)
	}
	return nil
}
