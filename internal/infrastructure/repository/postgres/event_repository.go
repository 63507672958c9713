package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	qb "github.com/riskibarqy/football-dashboard/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]fixture.Event, error) {
	query, args, err := qb.Select("id", "fixture_id", "time_elapsed", "team_name", "player_name", "type", "detail").
		From("events").
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("time_elapsed ASC NULLS LAST", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events fixture=%d: %w", fixtureID, err)
	}

	out := make([]fixture.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Event{
			ID:         row.ID,
			FixtureID:  row.FixtureID,
			Elapsed:    intPtr(row.TimeElapsed),
			TeamName:   stringPtr(row.TeamName),
			PlayerName: stringPtr(row.PlayerName),
			Type:       stringPtr(row.Type),
			Detail:     stringPtr(row.Detail),
		})
	}
	return out, nil
}

func (r *EventRepository) ReplaceForFixture(ctx context.Context, fixtureID int64, events []fixture.Event, syncedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace events: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("events").Where(qb.Eq("fixture_id", fixtureID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete events query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete events fixture=%d: %w", fixtureID, err)
	}

	if len(events) > 0 {
		models := make([]eventInsertModel, 0, len(events))
		for _, item := range events {
			models = append(models, eventInsertModel{
				FixtureID:   fixtureID,
				TimeElapsed: nullInt(item.Elapsed),
				TeamName:    nullString(item.TeamName),
				PlayerName:  nullString(item.PlayerName),
				Type:        nullString(item.Type),
				Detail:      nullString(item.Detail),
			})
		}
		insert, err := qb.InsertModels("events", models)
		if err != nil {
			return fmt.Errorf("build insert events: %w", err)
		}
		insertQuery, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert events query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert events fixture=%d: %w", fixtureID, err)
		}
	}

	markQuery, markArgs, err := qb.InsertModel("event_syncs", eventSyncModel{FixtureID: fixtureID, SyncedAt: syncedAt.UTC()}).
		OnConflictUpdate("fixture_id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert event sync query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, markQuery, markArgs...); err != nil {
		return fmt.Errorf("upsert event sync fixture=%d: %w", fixtureID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx replace events: %w", err)
	}
	return nil
}

func (r *EventRepository) LastSynced(ctx context.Context, fixtureID int64) (time.Time, bool, error) {
	query, args, err := qb.Select("fixture_id", "synced_at").
		From("event_syncs").
		Where(qb.Eq("fixture_id", fixtureID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("build select event sync query: %w", err)
	}

	var row eventSyncModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("select event sync fixture=%d: %w", fixtureID, err)
	}
	return row.SyncedAt, true, nil
}
