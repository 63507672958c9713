package dashboard

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"
)

// DetailsAPI fetches the two halves of a match detail view.
type DetailsAPI interface {
	FixtureEvents(ctx context.Context, fixtureID int64) ([]Event, error)
	FixtureLineups(ctx context.Context, fixtureID int64) ([]Lineup, error)
}

// MatchDetails is one fixture's events and lineups. Each half carries its
// own error; a failed half does not hide the other.
type MatchDetails struct {
	Fixture    Fixture
	Events     []Event
	EventsErr  error
	Lineups    []Lineup
	LineupsErr error
}

// LoadMatchDetails fetches events and lineups concurrently.
func LoadMatchDetails(ctx context.Context, api DetailsAPI, f Fixture) MatchDetails {
	details := MatchDetails{Fixture: f}

	var wg conc.WaitGroup
	wg.Go(func() {
		events, err := api.FixtureEvents(ctx, f.ID)
		if err != nil {
			details.EventsErr = fmt.Errorf("fetch events: %w", err)
			return
		}
		details.Events = events
	})
	wg.Go(func() {
		lineups, err := api.FixtureLineups(ctx, f.ID)
		if err != nil {
			details.LineupsErr = fmt.Errorf("fetch lineups: %w", err)
			return
		}
		details.Lineups = lineups
	})
	wg.Wait()

	return details
}

// TeamLineups picks the home and away lineups by team name. When a name
// does not match, the provider order is used for the side left over.
// Either result is nil when there is nothing to show for that side.
func (d MatchDetails) TeamLineups() (home, away *Lineup) {
	if len(d.Lineups) == 0 {
		return nil, nil
	}

	homeIdx := indexOfTeam(d.Lineups, d.Fixture.Home.Name, -1)
	if homeIdx < 0 {
		homeIdx = 0
	}
	awayIdx := indexOfTeam(d.Lineups, d.Fixture.Away.Name, homeIdx)
	if awayIdx < 0 && len(d.Lineups) > 1 {
		awayIdx = 1
		if homeIdx == 1 {
			awayIdx = 0
		}
	}

	home = &d.Lineups[homeIdx]
	if awayIdx >= 0 {
		away = &d.Lineups[awayIdx]
	}
	return home, away
}

func indexOfTeam(lineups []Lineup, name string, skip int) int {
	for i, l := range lineups {
		if i != skip && l.Team == name {
			return i
		}
	}
	return -1
}
