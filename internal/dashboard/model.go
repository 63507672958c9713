// Package dashboard is the client side of the fixtures API: it holds the
// fetched day, composes the list filters and renders fixtures and match
// details for a terminal.
package dashboard

import (
	"slices"
	"time"
)

const (
	StatusFinished = "FT"
	StatusLive     = "LIVE"
)

var liveStatuses = []string{"1H", "2H", "ET", "P", "BT", StatusLive}

type League struct {
	ID      int64
	Name    string
	Country string
	Logo    string
}

type Team struct {
	Name string
	Logo string
}

type Fixture struct {
	ID          int64
	Date        time.Time
	StatusShort string
	StatusLong  string
	Elapsed     *int
	League      League
	Home        Team
	Away        Team
	HomeGoals   *int
	AwayGoals   *int
}

// HasTeam reports whether name plays in the fixture, home or away.
func (f Fixture) HasTeam(name string) bool {
	return f.Home.Name == name || f.Away.Name == name
}

type Event struct {
	Elapsed *int
	Team    string
	Player  string
	Type    string
	Detail  string
}

type LineupPlayer struct {
	Number *int
	Name   string
	Pos    string
}

type Lineup struct {
	Team        string
	Formation   string
	Coach       string
	StartXI     []LineupPlayer
	Substitutes []LineupPlayer
}

// IsLive reports whether a status short code means the match is in play.
// Half time is not live here.
func IsLive(statusShort string) bool {
	return slices.Contains(liveStatuses, statusShort)
}

// FormatStatus is the short status label shown next to a fixture.
func FormatStatus(f Fixture) string {
	switch {
	case f.StatusShort == StatusFinished:
		return StatusFinished
	case IsLive(f.StatusShort):
		if f.Elapsed != nil && *f.Elapsed > 0 {
			return itoa(*f.Elapsed) + "'"
		}
		return StatusLive
	default:
		return f.StatusShort
	}
}
