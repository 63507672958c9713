package fixture

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusNotStarted = "NS"
	StatusFirstHalf  = "1H"
	StatusHalfTime   = "HT"
	StatusSecondHalf = "2H"
	StatusExtraTime  = "ET"
	StatusBreakTime  = "BT"
	StatusPenalties  = "P"
	StatusLive       = "LIVE"
	StatusFinished   = "FT"
)

// League is a competition as reported by the provider. Logo and Flag are
// optional and stay nil when the provider omits them.
type League struct {
	ID      int64
	Name    string
	Country string
	Logo    *string
	Flag    *string
}

// Fixture is one match. Elapsed and goals are nil before kickoff; the
// provider value is stored as-is on every sync.
type Fixture struct {
	ID          int64
	LeagueID    int64
	HomeTeam    string
	HomeLogo    *string
	AwayTeam    string
	AwayLogo    *string
	StartTime   time.Time
	StatusShort string
	StatusLong  string
	Elapsed     *int
	HomeGoals   *int
	AwayGoals   *int
}

// Record pairs a fixture with the league it belongs to, as written by a sync.
type Record struct {
	League  League
	Fixture Fixture
}

// WithLeague is the read model served by the today listing.
type WithLeague struct {
	Fixture
	League League
}

func (r Record) Validate() error {
	if r.League.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if r.Fixture.ID <= 0 {
		return fmt.Errorf("fixture id is required")
	}
	if r.Fixture.LeagueID != r.League.ID {
		return fmt.Errorf("fixture %d league mismatch: %d != %d", r.Fixture.ID, r.Fixture.LeagueID, r.League.ID)
	}
	if r.Fixture.StartTime.IsZero() {
		return fmt.Errorf("fixture %d start time is required", r.Fixture.ID)
	}
	return nil
}

func NormalizeStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// IsLiveStatus reports whether the match clock is running. Half time counts
// as live for event refreshes even though the dashboard's live tab skips it.
func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFirstHalf, StatusSecondHalf, StatusExtraTime, StatusPenalties, StatusBreakTime, StatusLive, StatusHalfTime:
		return true
	default:
		return false
	}
}

// DayRange returns [midnight, next midnight) of the calendar day containing
// now in loc.
func DayRange(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
