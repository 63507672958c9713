package dashboard

import (
	"strconv"
	"time"
)

type fixturesEnvelope struct {
	Response []fixtureItemWire `json:"response"`
}

type fixtureItemWire struct {
	Fixture struct {
		ID     int64  `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short   string `json:"short"`
			Long    string `json:"long"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID      int64   `json:"id"`
		Name    string  `json:"name"`
		Country string  `json:"country"`
		Logo    *string `json:"logo"`
	} `json:"league"`
	Teams struct {
		Home teamWire `json:"home"`
		Away teamWire `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type teamWire struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type eventsEnvelope struct {
	Response []struct {
		Time struct {
			Elapsed *int `json:"elapsed"`
		} `json:"time"`
		Team   namedWire `json:"team"`
		Player namedWire `json:"player"`
		Type   *string   `json:"type"`
		Detail *string   `json:"detail"`
	} `json:"response"`
}

type namedWire struct {
	Name *string `json:"name"`
}

type lineupsEnvelope struct {
	Response []struct {
		Team        namedWire          `json:"team"`
		Coach       namedWire          `json:"coach"`
		Formation   *string            `json:"formation"`
		StartXI     []lineupPlayerWire `json:"startXI"`
		Substitutes []lineupPlayerWire `json:"substitutes"`
	} `json:"response"`
}

type lineupPlayerWire struct {
	Player struct {
		Name   *string `json:"name"`
		Number *int    `json:"number"`
		Pos    *string `json:"pos"`
	} `json:"player"`
}

type favouritesEnvelope struct {
	Favourites []string `json:"favourites"`
}

type favouriteRequest struct {
	UserID   int64  `json:"userId"`
	TeamName string `json:"teamName"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (w fixtureItemWire) toFixture() Fixture {
	date, _ := time.Parse(time.RFC3339, w.Fixture.Date)
	return Fixture{
		ID:          w.Fixture.ID,
		Date:        date,
		StatusShort: w.Fixture.Status.Short,
		StatusLong:  w.Fixture.Status.Long,
		Elapsed:     w.Fixture.Status.Elapsed,
		League: League{
			ID:      w.League.ID,
			Name:    w.League.Name,
			Country: w.League.Country,
			Logo:    deref(w.League.Logo),
		},
		Home:      Team{Name: w.Teams.Home.Name, Logo: deref(w.Teams.Home.Logo)},
		Away:      Team{Name: w.Teams.Away.Name, Logo: deref(w.Teams.Away.Logo)},
		HomeGoals: w.Goals.Home,
		AwayGoals: w.Goals.Away,
	}
}

func (e eventsEnvelope) toEvents() []Event {
	out := make([]Event, 0, len(e.Response))
	for _, item := range e.Response {
		out = append(out, Event{
			Elapsed: item.Time.Elapsed,
			Team:    deref(item.Team.Name),
			Player:  deref(item.Player.Name),
			Type:    deref(item.Type),
			Detail:  deref(item.Detail),
		})
	}
	return out
}

func (e lineupsEnvelope) toLineups() []Lineup {
	out := make([]Lineup, 0, len(e.Response))
	for _, item := range e.Response {
		out = append(out, Lineup{
			Team:        deref(item.Team.Name),
			Coach:       deref(item.Coach.Name),
			Formation:   deref(item.Formation),
			StartXI:     toLineupPlayers(item.StartXI),
			Substitutes: toLineupPlayers(item.Substitutes),
		})
	}
	return out
}

func toLineupPlayers(items []lineupPlayerWire) []LineupPlayer {
	out := make([]LineupPlayer, 0, len(items))
	for _, item := range items {
		out = append(out, LineupPlayer{
			Number: item.Player.Number,
			Name:   deref(item.Player.Name),
			Pos:    deref(item.Player.Pos),
		})
	}
	return out
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
