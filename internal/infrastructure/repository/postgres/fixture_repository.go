package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	qb "github.com/riskibarqy/football-dashboard/internal/platform/querybuilder"
)

var fixtureListColumns = []string{
	"f.id",
	"f.league_id",
	"f.home_team",
	"f.home_logo",
	"f.away_team",
	"f.away_logo",
	"f.start_time",
	"f.status_short",
	"f.status_long",
	"f.status_elapsed",
	"f.home_goals",
	"f.away_goals",
	"l.name AS league_name",
	"l.country AS league_country",
	"l.logo AS league_logo",
	"l.flag AS league_flag",
}

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) UpsertBatch(ctx context.Context, records []fixture.Record) error {
	if len(records) == 0 {
		return nil
	}
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("validate fixtures batch: %w", err)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert fixtures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, record := range records {
		leagueQuery, leagueArgs, err := qb.InsertModel("leagues", leagueModelFromDomain(record.League)).
			OnConflictUpdate("id").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert league query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, leagueQuery, leagueArgs...); err != nil {
			return fmt.Errorf("upsert league id=%d: %w", record.League.ID, err)
		}

		fixtureQuery, fixtureArgs, err := qb.InsertModel("fixtures", fixtureModelFromDomain(record.Fixture)).
			OnConflictUpdate("id").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert fixture query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, fixtureQuery, fixtureArgs...); err != nil {
			return fmt.Errorf("upsert fixture id=%d: %w", record.Fixture.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx upsert fixtures: %w", err)
	}
	return nil
}

func (r *FixtureRepository) ListByRange(ctx context.Context, from, to time.Time, leagueID int64) ([]fixture.WithLeague, error) {
	conditions := []qb.Condition{
		qb.Gte("f.start_time", from),
		qb.Lt("f.start_time", to),
	}
	if leagueID > 0 {
		conditions = append(conditions, qb.Eq("f.league_id", leagueID))
	}

	query, args, err := qb.Select(fixtureListColumns...).
		From("fixtures f").
		Join("leagues l", "l.id = f.league_id").
		Where(conditions...).
		OrderBy("f.start_time ASC", "f.id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by range query: %w", err)
	}

	var rows []fixtureWithLeagueRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by range: %w", err)
	}

	out := make([]fixture.WithLeague, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.WithLeague{
			Fixture: fixture.Fixture{
				ID:          row.ID,
				LeagueID:    row.LeagueID,
				HomeTeam:    row.HomeTeam,
				HomeLogo:    stringPtr(row.HomeLogo),
				AwayTeam:    row.AwayTeam,
				AwayLogo:    stringPtr(row.AwayLogo),
				StartTime:   row.StartTime,
				StatusShort: row.StatusShort,
				StatusLong:  row.StatusLong,
				Elapsed:     intPtr(row.StatusElapsed),
				HomeGoals:   intPtr(row.HomeGoals),
				AwayGoals:   intPtr(row.AwayGoals),
			},
			League: fixture.League{
				ID:      row.LeagueID,
				Name:    row.LeagueName,
				Country: row.LeagueCountry,
				Logo:    stringPtr(row.LeagueLogo),
				Flag:    stringPtr(row.LeagueFlag),
			},
		})
	}

	return out, nil
}

func leagueModelFromDomain(item fixture.League) leagueTableModel {
	return leagueTableModel{
		ID:      item.ID,
		Name:    item.Name,
		Country: item.Country,
		Logo:    nullString(item.Logo),
		Flag:    nullString(item.Flag),
	}
}

func fixtureModelFromDomain(item fixture.Fixture) fixtureTableModel {
	return fixtureTableModel{
		ID:            item.ID,
		LeagueID:      item.LeagueID,
		HomeTeam:      item.HomeTeam,
		HomeLogo:      nullString(item.HomeLogo),
		AwayTeam:      item.AwayTeam,
		AwayLogo:      nullString(item.AwayLogo),
		StartTime:     item.StartTime.UTC(),
		StatusShort:   item.StatusShort,
		StatusLong:    item.StatusLong,
		StatusElapsed: nullInt(item.Elapsed),
		HomeGoals:     nullInt(item.HomeGoals),
		AwayGoals:     nullInt(item.AwayGoals),
	}
}
