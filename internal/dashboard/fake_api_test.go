package dashboard

import (
	"context"
	"sync"
	"time"
)

type fakeAPI struct {
	mu         sync.Mutex
	fixtures   []Fixture
	favourites []string
	events     []Event
	lineups    []Lineup

	fixturesErr   error
	favouritesErr error
	toggleErr     error
	eventsErr     error
	lineupsErr    error

	added   []string
	removed []string
}

func (f *fakeAPI) TodayFixtures(context.Context) ([]Fixture, error) {
	return f.fixtures, f.fixturesErr
}

func (f *fakeAPI) Favourites(context.Context, int64) ([]string, error) {
	return f.favourites, f.favouritesErr
}

func (f *fakeAPI) AddFavourite(_ context.Context, _ int64, team string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, team)
	return f.toggleErr
}

func (f *fakeAPI) RemoveFavourite(_ context.Context, _ int64, team string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, team)
	return f.toggleErr
}

func (f *fakeAPI) FixtureEvents(context.Context, int64) ([]Event, error) {
	return f.events, f.eventsErr
}

func (f *fakeAPI) FixtureLineups(context.Context, int64) ([]Lineup, error) {
	return f.lineups, f.lineupsErr
}

func intPtr(v int) *int { return &v }

var (
	premierLeague = League{ID: 39, Name: "Premier League", Country: "England"}
	laLiga        = League{ID: 140, Name: "La Liga", Country: "Spain"}
	bundesliga    = League{ID: 78, Name: "Bundesliga", Country: "Germany"}
)

func sampleFixtures() []Fixture {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []Fixture{
		{ID: 1001, Date: day.Add(12*time.Hour + 30*time.Minute), StatusShort: "FT", StatusLong: "Match Finished", Elapsed: intPtr(90),
			League: premierLeague, Home: Team{Name: "Arsenal"}, Away: Team{Name: "Chelsea"}, HomeGoals: intPtr(2), AwayGoals: intPtr(1)},
		{ID: 2001, Date: day.Add(15 * time.Hour), StatusShort: "2H", StatusLong: "Second Half", Elapsed: intPtr(67),
			League: laLiga, Home: Team{Name: "Barcelona"}, Away: Team{Name: "Sevilla"}, HomeGoals: intPtr(1), AwayGoals: intPtr(0)},
		{ID: 3001, Date: day.Add(15*time.Hour + 30*time.Minute), StatusShort: "HT", StatusLong: "Halftime", Elapsed: intPtr(45),
			League: bundesliga, Home: Team{Name: "Bayern"}, Away: Team{Name: "Dortmund"}, HomeGoals: intPtr(0), AwayGoals: intPtr(0)},
		{ID: 1002, Date: day.Add(17*time.Hour + 30*time.Minute), StatusShort: "NS", StatusLong: "Not Started",
			League: premierLeague, Home: Team{Name: "Liverpool"}, Away: Team{Name: "Everton"}},
	}
}
