package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-dashboard/internal/usecase"
)

func (h *Handler) ListTodayFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTodayFixtures")
	defer span.End()

	leagueID := parseLeagueFilter(r.URL.Query().Get("league"))
	items, err := h.fixtureService.ListToday(ctx, leagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list today fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err, "Failed to fetch today fixtures from DB")
		return
	}

	response := make([]fixtureItemDTO, 0, len(items))
	for _, item := range items {
		response = append(response, fixtureToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, listResponse[fixtureItemDTO]{Response: response})
}

func (h *Handler) ListFixtureEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureEvents")
	defer span.End()

	fixtureID, err := parseFixtureID(r.PathValue("fixtureID"))
	if err != nil {
		writeError(ctx, w, err, "")
		return
	}

	events, err := h.eventService.ListByFixture(ctx, fixtureID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list fixture events failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err, "Failed to fetch events")
		return
	}

	response := make([]eventDTO, 0, len(events))
	for _, item := range events {
		response = append(response, eventToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, listResponse[eventDTO]{Response: response})
}

func (h *Handler) ListFixtureLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureLineups")
	defer span.End()

	fixtureID, err := parseFixtureID(r.PathValue("fixtureID"))
	if err != nil {
		writeError(ctx, w, err, "")
		return
	}

	raw, err := h.lineupService.ListByFixture(ctx, fixtureID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list fixture lineups failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err, "Failed to fetch lineups")
		return
	}

	writeJSON(ctx, w, http.StatusOK, rawResponse{Response: raw})
}

// parseLeagueFilter ignores anything that is not a positive league id.
func parseLeagueFilter(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value <= 0 {
		return 0
	}
	return value
}

func parseFixtureID(raw string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: Invalid fixture id", usecase.ErrInvalidInput)
	}
	return value, nil
}
