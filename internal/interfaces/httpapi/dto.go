package httpapi

import (
	"encoding/json"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
)

type listResponse[T any] struct {
	Response []T `json:"response"`
}

type rawResponse struct {
	Response json.RawMessage `json:"response"`
}

type fixtureItemDTO struct {
	Fixture fixtureDTO       `json:"fixture"`
	League  fixtureLeagueDTO `json:"league"`
	Teams   teamsDTO         `json:"teams"`
	Goals   goalsDTO         `json:"goals"`
}

type fixtureDTO struct {
	ID     int64     `json:"id"`
	Status statusDTO `json:"status"`
	Date   string    `json:"date"`
}

type statusDTO struct {
	Short   string `json:"short"`
	Long    string `json:"long"`
	Elapsed *int   `json:"elapsed"`
}

type fixtureLeagueDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Logo    *string `json:"logo"`
}

type teamsDTO struct {
	Home teamDTO `json:"home"`
	Away teamDTO `json:"away"`
}

type teamDTO struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type goalsDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type eventDTO struct {
	Time   eventTimeDTO `json:"time"`
	Team   namedDTO     `json:"team"`
	Player namedDTO     `json:"player"`
	Type   *string      `json:"type"`
	Detail *string      `json:"detail"`
}

type eventTimeDTO struct {
	Elapsed *int `json:"elapsed"`
}

type namedDTO struct {
	Name *string `json:"name"`
}

type favouritesDTO struct {
	Favourites []string `json:"favourites"`
}

type successDTO struct {
	Success bool `json:"success"`
}

type syncResultDTO struct {
	Success bool `json:"success"`
	Synced  int  `json:"synced"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func fixtureToDTO(item fixture.WithLeague) fixtureItemDTO {
	return fixtureItemDTO{
		Fixture: fixtureDTO{
			ID: item.ID,
			Status: statusDTO{
				Short:   item.StatusShort,
				Long:    item.StatusLong,
				Elapsed: item.Elapsed,
			},
			Date: item.StartTime.UTC().Format(time.RFC3339),
		},
		League: fixtureLeagueDTO{
			ID:      item.League.ID,
			Name:    item.League.Name,
			Country: item.League.Country,
			Logo:    item.League.Logo,
		},
		Teams: teamsDTO{
			Home: teamDTO{Name: item.HomeTeam, Logo: item.HomeLogo},
			Away: teamDTO{Name: item.AwayTeam, Logo: item.AwayLogo},
		},
		Goals: goalsDTO{Home: item.HomeGoals, Away: item.AwayGoals},
	}
}

func eventToDTO(item fixture.Event) eventDTO {
	return eventDTO{
		Time:   eventTimeDTO{Elapsed: item.Elapsed},
		Team:   namedDTO{Name: item.TeamName},
		Player: namedDTO{Name: item.PlayerName},
		Type:   item.Type,
		Detail: item.Detail,
	}
}
