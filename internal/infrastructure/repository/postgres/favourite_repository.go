package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-dashboard/internal/domain/favourite"
	qb "github.com/riskibarqy/football-dashboard/internal/platform/querybuilder"
)

type FavouriteRepository struct {
	db *sqlx.DB
}

func NewFavouriteRepository(db *sqlx.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

func (r *FavouriteRepository) ListByUser(ctx context.Context, userID int64) ([]string, error) {
	query, args, err := qb.Select("team_name").
		From("favourite_teams").
		Where(qb.Eq("user_id", userID)).
		OrderBy("team_name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select favourite teams query: %w", err)
	}

	out := make([]string, 0)
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select favourite teams user=%d: %w", userID, err)
	}
	return out, nil
}

func (r *FavouriteRepository) Add(ctx context.Context, team favourite.Team) error {
	query, args, err := qb.InsertModel("favourite_teams", favouriteTeamModel{UserID: team.UserID, TeamName: team.TeamName}).
		OnConflictDoNothing("user_id", "team_name").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert favourite team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert favourite team user=%d: %w", team.UserID, err)
	}
	return nil
}

func (r *FavouriteRepository) Remove(ctx context.Context, team favourite.Team) error {
	query, args, err := qb.DeleteFrom("favourite_teams").
		Where(qb.Eq("user_id", team.UserID), qb.Eq("team_name", team.TeamName)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete favourite team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete favourite team user=%d: %w", team.UserID, err)
	}
	return nil
}
