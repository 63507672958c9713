package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-dashboard/internal/domain/favourite"
)

type FavouriteRepository struct {
	mu     sync.RWMutex
	byUser map[int64]map[string]struct{}
}

func NewFavouriteRepository() *FavouriteRepository {
	return &FavouriteRepository{byUser: make(map[int64]map[string]struct{})}
}

func (r *FavouriteRepository) ListByUser(_ context.Context, userID int64) ([]string, error) {
	r.mu.RLock()
	teams := r.byUser[userID]
	out := make([]string, 0, len(teams))
	for name := range teams {
		out = append(out, name)
	}
	r.mu.RUnlock()

	sort.Strings(out)
	return out, nil
}

func (r *FavouriteRepository) Add(_ context.Context, team favourite.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	teams, ok := r.byUser[team.UserID]
	if !ok {
		teams = make(map[string]struct{})
		r.byUser[team.UserID] = teams
	}
	teams[team.TeamName] = struct{}{}
	return nil
}

func (r *FavouriteRepository) Remove(_ context.Context, team favourite.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser[team.UserID], team.TeamName)
	return nil
}
