package apifootball

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

func mapFixtureItem(item fixtureItem) (fixture.Record, error) {
	start, err := parseKickoff(item.Fixture.Date, item.Fixture.Timestamp)
	if err != nil {
		return fixture.Record{}, fmt.Errorf("fixture %d: %w", item.Fixture.ID, err)
	}

	record := fixture.Record{
		League: fixture.League{
			ID:      item.League.ID,
			Name:    item.League.Name,
			Country: item.League.Country,
			Logo:    optionalString(item.League.Logo),
			Flag:    optionalString(item.League.Flag),
		},
		Fixture: fixture.Fixture{
			ID:          item.Fixture.ID,
			LeagueID:    item.League.ID,
			HomeTeam:    item.Teams.Home.Name,
			HomeLogo:    optionalString(item.Teams.Home.Logo),
			AwayTeam:    item.Teams.Away.Name,
			AwayLogo:    optionalString(item.Teams.Away.Logo),
			StartTime:   start,
			StatusShort: item.Fixture.Status.Short,
			StatusLong:  item.Fixture.Status.Long,
			Elapsed:     positiveInt(item.Fixture.Status.Elapsed),
			HomeGoals:   item.Goals.Home,
			AwayGoals:   item.Goals.Away,
		},
	}
	if err := record.Validate(); err != nil {
		return fixture.Record{}, err
	}
	return record, nil
}

func mapEventItem(fixtureID int64, item eventItem) fixture.Event {
	return fixture.Event{
		FixtureID:  fixtureID,
		Elapsed:    positiveInt(item.Time.Elapsed),
		TeamName:   optionalString(item.Team.Name),
		PlayerName: optionalString(item.Player.Name),
		Type:       optionalString(item.Type),
		Detail:     optionalString(item.Detail),
	}
}

func parseKickoff(raw string, unix int64) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
	}
	if unix > 0 {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid kickoff date %q", raw)
}

// positiveInt drops zero minutes along with nulls; the provider reports 0
// for matches that have not kicked off.
func positiveInt(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	out := *v
	return &out
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
