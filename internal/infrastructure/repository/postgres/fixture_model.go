package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	ID            int64          `db:"id"`
	LeagueID      int64          `db:"league_id"`
	HomeTeam      string         `db:"home_team"`
	HomeLogo      sql.NullString `db:"home_logo"`
	AwayTeam      string         `db:"away_team"`
	AwayLogo      sql.NullString `db:"away_logo"`
	StartTime     time.Time      `db:"start_time"`
	StatusShort   string         `db:"status_short"`
	StatusLong    string         `db:"status_long"`
	StatusElapsed sql.NullInt64  `db:"status_elapsed"`
	HomeGoals     sql.NullInt64  `db:"home_goals"`
	AwayGoals     sql.NullInt64  `db:"away_goals"`
}

type fixtureWithLeagueRow struct {
	ID            int64          `db:"id"`
	LeagueID      int64          `db:"league_id"`
	HomeTeam      string         `db:"home_team"`
	HomeLogo      sql.NullString `db:"home_logo"`
	AwayTeam      string         `db:"away_team"`
	AwayLogo      sql.NullString `db:"away_logo"`
	StartTime     time.Time      `db:"start_time"`
	StatusShort   string         `db:"status_short"`
	StatusLong    string         `db:"status_long"`
	StatusElapsed sql.NullInt64  `db:"status_elapsed"`
	HomeGoals     sql.NullInt64  `db:"home_goals"`
	AwayGoals     sql.NullInt64  `db:"away_goals"`
	LeagueName    string         `db:"league_name"`
	LeagueCountry string         `db:"league_country"`
	LeagueLogo    sql.NullString `db:"league_logo"`
	LeagueFlag    sql.NullString `db:"league_flag"`
}
