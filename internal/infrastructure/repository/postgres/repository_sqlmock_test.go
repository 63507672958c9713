package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-dashboard/internal/domain/favourite"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func strPtr(v string) *string { return &v }

func sampleRecord() fixture.Record {
	return fixture.Record{
		League: fixture.League{ID: 39, Name: "Premier League", Country: "England", Logo: strPtr("https://media.api-sports.io/football/leagues/39.png")},
		Fixture: fixture.Fixture{
			ID:          1001,
			LeagueID:    39,
			HomeTeam:    "Arsenal",
			AwayTeam:    "Chelsea",
			StartTime:   time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			StatusShort: "NS",
			StatusLong:  "Not Started",
		},
	}
}

func TestFixtureRepository_UpsertBatchCommitsOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leagues (id, name, country, logo, flag) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name")).
		WithArgs(int64(39), "Premier League", "England", "https://media.api-sports.io/football/leagues/39.png", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fixtures (id, league_id, home_team")).
		WithArgs(int64(1001), int64(39), "Arsenal", nil, "Chelsea", nil, sqlmock.AnyArg(), "NS", "Not Started", nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpsertBatch(context.Background(), []fixture.Record{sampleRecord()}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFixtureRepository_UpsertBatchRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	second := sampleRecord()
	second.Fixture.ID = 1002

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leagues")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fixtures")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leagues")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fixtures")).WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := repo.UpsertBatch(context.Background(), []fixture.Record{sampleRecord(), second})
	require.Error(t, err)
	require.Contains(t, err.Error(), "upsert fixture id=1002")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFixtureRepository_UpsertBatchRejectsInvalidRecordBeforeWriting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	broken := sampleRecord()
	broken.Fixture.ID = 1002
	broken.Fixture.StartTime = time.Time{}

	err := repo.UpsertBatch(context.Background(), []fixture.Record{sampleRecord(), broken})
	require.Error(t, err)
	require.Contains(t, err.Error(), "fixture 1002 start time is required")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFixtureRepository_UpsertBatchEmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	require.NoError(t, repo.UpsertBatch(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFixtureRepository_ListByRangeWithLeague(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	kickoff := from.Add(15 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "league_id", "home_team", "home_logo", "away_team", "away_logo", "start_time",
		"status_short", "status_long", "status_elapsed", "home_goals", "away_goals",
		"league_name", "league_country", "league_logo", "league_flag",
	}).AddRow(
		int64(1001), int64(39), "Arsenal", nil, "Chelsea", "https://media.api-sports.io/football/teams/49.png", kickoff,
		"2H", "Second Half", int64(67), int64(1), int64(0),
		"Premier League", "England", nil, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fixtures f JOIN leagues l ON l.id = f.league_id WHERE f.start_time >= $1 AND f.start_time < $2 AND f.league_id = $3 ORDER BY f.start_time ASC, f.id ASC")).
		WithArgs(from, to, int64(39)).
		WillReturnRows(rows)

	items, err := repo.ListByRange(context.Background(), from, to, 39)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	require.Equal(t, int64(1001), got.ID)
	require.Equal(t, "Premier League", got.League.Name)
	require.Nil(t, got.HomeLogo)
	require.NotNil(t, got.AwayLogo)
	require.NotNil(t, got.Elapsed)
	require.Equal(t, 67, *got.Elapsed)
	require.Equal(t, 0, *got.AwayGoals)
	require.Nil(t, got.League.Logo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ReplaceForFixture(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	elapsed := 23
	events := []fixture.Event{
		{Elapsed: &elapsed, TeamName: strPtr("Arsenal"), PlayerName: strPtr("B. Saka"), Type: strPtr("Goal"), Detail: strPtr("Normal Goal")},
		{Type: strPtr("Var")},
	}
	syncedAt := time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE fixture_id = $1")).
		WithArgs(int64(1001)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO events (fixture_id, time_elapsed, team_name, player_name, type, detail) VALUES ($1, $2, $3, $4, $5, $6), ($7, $8, $9, $10, $11, $12)")).
		WithArgs(int64(1001), int64(23), "Arsenal", "B. Saka", "Goal", "Normal Goal", int64(1001), nil, nil, nil, "Var", nil).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_syncs (fixture_id, synced_at) VALUES ($1, $2) ON CONFLICT (fixture_id) DO UPDATE SET synced_at = EXCLUDED.synced_at")).
		WithArgs(int64(1001), syncedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceForFixture(context.Background(), 1001, events, syncedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ReplaceForFixtureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events")).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO events")).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.ReplaceForFixture(context.Background(), 1001, []fixture.Event{{Type: strPtr("Goal")}}, time.Now())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ReplaceWithEmptySetStillMarksSync(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_syncs")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceForFixture(context.Background(), 1001, nil, time.Now()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_LastSyncedNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT fixture_id, synced_at FROM event_syncs WHERE fixture_id = $1 LIMIT 1")).
		WithArgs(int64(1001)).
		WillReturnRows(sqlmock.NewRows([]string{"fixture_id", "synced_at"}))

	_, ok, err := repo.LastSynced(context.Background(), 1001)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavouriteRepository_AddListRemove(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavouriteRepository(db)
	team := favourite.Team{UserID: 1, TeamName: "Arsenal"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO favourite_teams (user_id, team_name) VALUES ($1, $2) ON CONFLICT (user_id, team_name) DO NOTHING")).
		WithArgs(int64(1), "Arsenal").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT team_name FROM favourite_teams WHERE user_id = $1 ORDER BY team_name ASC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"team_name"}).AddRow("Arsenal").AddRow("Liverpool"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favourite_teams WHERE user_id = $1 AND team_name = $2")).
		WithArgs(int64(1), "Arsenal").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, team))

	names, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Arsenal", "Liverpool"}, names)

	require.NoError(t, repo.Remove(ctx, team))
	require.NoError(t, mock.ExpectationsWereMet())
}
