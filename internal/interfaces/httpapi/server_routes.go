package httpapi

import (
	"net/http"
	"strings"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/fixtures/today", handler.ListTodayFixtures)
	mux.HandleFunc("GET /api/fixtures/{fixtureID}/events", handler.ListFixtureEvents)
	mux.HandleFunc("GET /api/fixtures/{fixtureID}/lineups", handler.ListFixtureLineups)
}

func registerFavouriteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/favourites/teams", handler.ListFavouriteTeams)
	mux.HandleFunc("POST /api/favourites/teams", handler.AddFavouriteTeam)
	mux.HandleFunc("DELETE /api/favourites/teams", handler.RemoveFavouriteTeam)
}

// registerInternalJobRoutes is a no-op without a token so the manual sync is
// never reachable unauthenticated.
func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	if strings.TrimSpace(internalJobToken) == "" {
		return
	}
	mux.Handle("POST /api/internal/sync/today", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncToday)))
}
