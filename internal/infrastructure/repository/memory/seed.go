package memory

import (
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

const (
	LeagueIDPremierLeague int64 = 39
	LeagueIDLaLiga        int64 = 140
)

// SeedRecords returns a small matchday on the calendar day of day, used for
// the memory store and local runs without a provider key.
func SeedRecords(day time.Time) []fixture.Record {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	premier := fixture.League{ID: LeagueIDPremierLeague, Name: "Premier League", Country: "England"}
	laLiga := fixture.League{ID: LeagueIDLaLiga, Name: "La Liga", Country: "Spain"}

	elapsed := 67
	one, zero, two := 1, 0, 2

	return []fixture.Record{
		{
			League: premier,
			Fixture: fixture.Fixture{
				ID: 1001, LeagueID: premier.ID, HomeTeam: "Arsenal", AwayTeam: "Chelsea",
				StartTime: start.Add(12*time.Hour + 30*time.Minute), StatusShort: fixture.StatusFinished, StatusLong: "Match Finished",
				Elapsed: intPtr(90), HomeGoals: &two, AwayGoals: &one,
			},
		},
		{
			League: laLiga,
			Fixture: fixture.Fixture{
				ID: 2001, LeagueID: laLiga.ID, HomeTeam: "Barcelona", AwayTeam: "Sevilla",
				StartTime: start.Add(15 * time.Hour), StatusShort: fixture.StatusSecondHalf, StatusLong: "Second Half",
				Elapsed: &elapsed, HomeGoals: &one, AwayGoals: &zero,
			},
		},
		{
			League: premier,
			Fixture: fixture.Fixture{
				ID: 1002, LeagueID: premier.ID, HomeTeam: "Liverpool", AwayTeam: "Everton",
				StartTime: start.Add(17*time.Hour + 30*time.Minute), StatusShort: fixture.StatusNotStarted, StatusLong: "Not Started",
			},
		},
	}
}

func intPtr(v int) *int { return &v }
