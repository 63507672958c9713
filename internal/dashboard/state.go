package dashboard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"
)

var (
	ErrFixturesLoad   = errors.New("fetch fixtures")
	ErrFavouritesLoad = errors.New("fetch favourite teams")
)

type Tab string

const (
	TabToday Tab = "today"
	TabLive  Tab = "live"
)

func ParseTab(v string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(v))) {
	case TabToday, "":
		return TabToday, nil
	case TabLive:
		return TabLive, nil
	default:
		return "", fmt.Errorf("invalid tab %q: valid values are %s, %s", v, TabToday, TabLive)
	}
}

// Filter is the list view selection. LeagueID 0 means every league.
type Filter struct {
	Tab            Tab
	LeagueID       int64
	FavouritesOnly bool
}

// API is what the dashboard state needs from the fixtures backend.
type API interface {
	TodayFixtures(ctx context.Context) ([]Fixture, error)
	Favourites(ctx context.Context, userID int64) ([]string, error)
	AddFavourite(ctx context.Context, userID int64, teamName string) error
	RemoveFavourite(ctx context.Context, userID int64, teamName string) error
}

// State is the in-memory day fetched on load. Filtering never calls the API.
type State struct {
	api    API
	userID int64

	mu         sync.RWMutex
	fixtures   []Fixture
	favourites []string
	filter     Filter
	selected   int64
}

func NewState(api API, userID int64) *State {
	return &State{api: api, userID: userID, filter: Filter{Tab: TabToday}}
}

// Load fetches fixtures and favourites concurrently. Each half is kept when
// it succeeds, so a favourites failure still leaves the fixture list usable.
func (s *State) Load(ctx context.Context) error {
	var (
		fixtures      []Fixture
		favourites    []string
		fixturesErr   error
		favouritesErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { fixtures, fixturesErr = s.api.TodayFixtures(ctx) })
	wg.Go(func() { favourites, favouritesErr = s.api.Favourites(ctx, s.userID) })
	wg.Wait()

	s.mu.Lock()
	if fixturesErr == nil {
		s.fixtures = fixtures
	}
	if favouritesErr == nil {
		s.favourites = slices.Clone(favourites)
	}
	s.clearHiddenSelectionLocked()
	s.mu.Unlock()

	var errs []error
	if fixturesErr != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrFixturesLoad, fixturesErr))
	}
	if favouritesErr != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrFavouritesLoad, favouritesErr))
	}
	return errors.Join(errs...)
}

func (s *State) Fixtures() []Fixture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.fixtures)
}

// Fixture looks a fixture up regardless of the current filter.
func (s *State) Fixture(id int64) (Fixture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.fixtures {
		if f.ID == id {
			return f, true
		}
	}
	return Fixture{}, false
}

// Leagues lists each league seen in the fixtures once, ordered by name.
func (s *State) Leagues() []League {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int64]struct{}, len(s.fixtures))
	out := make([]League, 0)
	for _, f := range s.fixtures {
		if _, ok := seen[f.League.ID]; ok {
			continue
		}
		seen[f.League.ID] = struct{}{}
		out = append(out, f.League)
	}
	slices.SortStableFunc(out, func(a, b League) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func (s *State) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *State) SetFilter(f Filter) {
	if f.Tab == "" {
		f.Tab = TabToday
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.clearHiddenSelectionLocked()
}

// Visible applies tab, league and favourites predicates in fetch order.
func (s *State) Visible() []Fixture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleLocked()
}

func (s *State) visibleLocked() []Fixture {
	out := make([]Fixture, 0, len(s.fixtures))
	for _, f := range s.fixtures {
		if s.filter.Tab == TabLive && !IsLive(f.StatusShort) {
			continue
		}
		if s.filter.LeagueID != 0 && f.League.ID != s.filter.LeagueID {
			continue
		}
		if s.filter.FavouritesOnly && !s.isFavouriteLocked(f.Home.Name) && !s.isFavouriteLocked(f.Away.Name) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Select marks a visible fixture as the detail target.
func (s *State) Select(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.visibleLocked() {
		if f.ID == id {
			s.selected = id
			return nil
		}
	}
	return fmt.Errorf("fixture %d is not in the current view", id)
}

func (s *State) Selected() (Fixture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == 0 {
		return Fixture{}, false
	}
	for _, f := range s.fixtures {
		if f.ID == s.selected {
			return f, true
		}
	}
	return Fixture{}, false
}

func (s *State) clearHiddenSelectionLocked() {
	if s.selected == 0 {
		return
	}
	for _, f := range s.visibleLocked() {
		if f.ID == s.selected {
			return
		}
	}
	s.selected = 0
}

func (s *State) Favourites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favourites)
}

func (s *State) IsFavourite(teamName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isFavouriteLocked(teamName)
}

func (s *State) isFavouriteLocked(teamName string) bool {
	return slices.Contains(s.favourites, teamName)
}

// ToggleFavourite flips the team locally first, then tells the API. A failed
// call is returned but the local flip stays, so the view can drift from the
// store until the next Load.
func (s *State) ToggleFavourite(ctx context.Context, teamName string) (bool, error) {
	s.mu.Lock()
	added := !s.isFavouriteLocked(teamName)
	if added {
		s.favourites = append(s.favourites, teamName)
	} else {
		s.favourites = slices.DeleteFunc(s.favourites, func(name string) bool { return name == teamName })
	}
	s.clearHiddenSelectionLocked()
	s.mu.Unlock()

	var err error
	if added {
		err = s.api.AddFavourite(ctx, s.userID, teamName)
	} else {
		err = s.api.RemoveFavourite(ctx, s.userID, teamName)
	}
	if err != nil {
		return added, fmt.Errorf("toggle favourite %q: %w", teamName, err)
	}
	return added, nil
}
