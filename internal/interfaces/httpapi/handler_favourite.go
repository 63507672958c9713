package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-dashboard/internal/domain/favourite"
	"github.com/riskibarqy/football-dashboard/internal/usecase"
)

func (h *Handler) ListFavouriteTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavouriteTeams")
	defer span.End()

	userID, err := parseUserIDQuery(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(ctx, w, err, "")
		return
	}

	names, err := h.favouriteService.List(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list favourite teams failed", "user_id", userID, "error", err)
		writeError(ctx, w, err, "Failed to fetch favourite teams")
		return
	}

	writeJSON(ctx, w, http.StatusOK, favouritesDTO{Favourites: names})
}

func (h *Handler) AddFavouriteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFavouriteTeam")
	defer span.End()

	team, err := h.decodeFavouriteRequest(r, false)
	if err != nil {
		writeError(ctx, w, err, "")
		return
	}

	if err := h.favouriteService.Add(ctx, team); err != nil {
		h.logger.ErrorContext(ctx, "add favourite team failed", "user_id", team.UserID, "team_name", team.TeamName, "error", err)
		writeError(ctx, w, err, "Failed to add favourite team")
		return
	}

	writeJSON(ctx, w, http.StatusOK, successDTO{Success: true})
}

func (h *Handler) RemoveFavouriteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFavouriteTeam")
	defer span.End()

	team, err := h.decodeFavouriteRequest(r, true)
	if err != nil {
		writeError(ctx, w, err, "")
		return
	}

	if err := h.favouriteService.Remove(ctx, team); err != nil {
		h.logger.ErrorContext(ctx, "remove favourite team failed", "user_id", team.UserID, "team_name", team.TeamName, "error", err)
		writeError(ctx, w, err, "Failed to remove favourite team")
		return
	}

	writeJSON(ctx, w, http.StatusOK, successDTO{Success: true})
}

const maxRequestBodyBytes = 64 << 10

type favouriteTeamRequest struct {
	UserID   userIDParam `json:"userId"`
	TeamName string      `json:"teamName" validate:"required"`
}

// decodeFavouriteRequest reads the JSON body; with queryFallback an empty body
// is read from the userId/teamName query parameters instead.
func (h *Handler) decodeFavouriteRequest(r *http.Request, queryFallback bool) (favourite.Team, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return favourite.Team{}, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}

	var req favouriteTeamRequest
	switch {
	case len(bytes.TrimSpace(body)) > 0:
		if err := sonic.Unmarshal(body, &req); err != nil {
			return favourite.Team{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
	case queryFallback:
		query := r.URL.Query()
		if err := req.UserID.parse(query.Get("userId")); err != nil {
			return favourite.Team{}, err
		}
		req.TeamName = query.Get("teamName")
	}

	if err := h.validateRequest(r.Context(), req); err != nil {
		return favourite.Team{}, err
	}

	return favourite.Team{UserID: req.UserID.value(), TeamName: req.TeamName}, nil
}

// userIDParam accepts a JSON number or a numeric string. Missing, null, empty
// and zero all fall back to the default user.
type userIDParam struct {
	id int64
}

func (p *userIDParam) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	return p.parse(raw)
}

func (p *userIDParam) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: userId must be a number", usecase.ErrInvalidInput)
	}
	if id < 0 {
		return fmt.Errorf("%w: userId must be positive", usecase.ErrInvalidInput)
	}
	p.id = id
	return nil
}

func (p userIDParam) value() int64 {
	if p.id == 0 {
		return favourite.DefaultUserID
	}
	return p.id
}

func parseUserIDQuery(raw string) (int64, error) {
	var p userIDParam
	if err := p.parse(raw); err != nil {
		return 0, err
	}
	return p.value(), nil
}
