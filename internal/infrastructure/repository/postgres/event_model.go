package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID          int64          `db:"id"`
	FixtureID   int64          `db:"fixture_id"`
	TimeElapsed sql.NullInt64  `db:"time_elapsed"`
	TeamName    sql.NullString `db:"team_name"`
	PlayerName  sql.NullString `db:"player_name"`
	Type        sql.NullString `db:"type"`
	Detail      sql.NullString `db:"detail"`
}

// eventInsertModel omits id so the BIGSERIAL keeps insertion order.
type eventInsertModel struct {
	FixtureID   int64          `db:"fixture_id"`
	TimeElapsed sql.NullInt64  `db:"time_elapsed"`
	TeamName    sql.NullString `db:"team_name"`
	PlayerName  sql.NullString `db:"player_name"`
	Type        sql.NullString `db:"type"`
	Detail      sql.NullString `db:"detail"`
}

type eventSyncModel struct {
	FixtureID int64     `db:"fixture_id"`
	SyncedAt  time.Time `db:"synced_at"`
}
