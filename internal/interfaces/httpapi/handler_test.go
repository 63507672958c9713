package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/football-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
	"github.com/riskibarqy/football-dashboard/internal/usecase"
)

var testNow = time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)

type stubProvider struct {
	records    []fixture.Record
	events     map[int64][]fixture.Event
	lineups    json.RawMessage
	err        error
	eventCalls atomic.Int32
}

func (p *stubProvider) FetchFixturesByDate(context.Context, string) ([]fixture.Record, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.records, nil
}

func (p *stubProvider) FetchFixtureEvents(_ context.Context, fixtureID int64) ([]fixture.Event, error) {
	p.eventCalls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return p.events[fixtureID], nil
}

func (p *stubProvider) FetchFixtureLineups(context.Context, int64) (json.RawMessage, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.lineups, nil
}

type testServer struct {
	router    http.Handler
	provider  *stubProvider
	fixtures  *memory.FixtureRepository
	eventRepo *memory.EventRepository
}

func newTestServer(t *testing.T, internalToken string) *testServer {
	t.Helper()

	clock := func() time.Time { return testNow }
	provider := &stubProvider{
		records: memory.SeedRecords(testNow),
		events: map[int64][]fixture.Event{
			2001: {{Elapsed: intPtr(55), TeamName: strPtr("Barcelona"), PlayerName: strPtr("Pedri"), Type: strPtr("Goal"), Detail: strPtr("Normal Goal")}},
		},
		lineups: json.RawMessage(`[{"team":{"name":"Barcelona"},"formation":"4-3-3"}]`),
	}
	fixtureRepo := memory.NewFixtureRepository(memory.SeedRecords(testNow)...)
	eventRepo := memory.NewEventRepository()

	syncService := usecase.NewSyncService(provider, fixtureRepo, eventRepo, usecase.SyncConfig{Location: time.UTC, Now: clock}, nil)
	handler := NewHandler(
		usecase.NewFixtureService(fixtureRepo, usecase.FixtureServiceConfig{Location: time.UTC, Now: clock}),
		usecase.NewEventService(eventRepo, syncService, usecase.EventServiceConfig{MissTTL: time.Minute, Now: clock}, nil),
		usecase.NewLineupService(provider),
		usecase.NewFavouriteService(memory.NewFavouriteRepository()),
		syncService,
		logging.NewNop(),
	)

	return &testServer{
		router:    NewRouter(handler, logging.NewNop(), RouterConfig{CORSAllowedOrigins: []string{"*"}, InternalJobToken: internalToken}),
		provider:  provider,
		fixtures:  fixtureRepo,
		eventRepo: eventRepo,
	}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v (raw=%q)", err, rec.Body.String())
	}
	return body
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	rec := srv.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["status"]; got != "ok" {
		t.Fatalf("unexpected status: %v", got)
	}
}

func TestListTodayFixtures_ShapeAndOrder(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	rec := srv.do(t, http.MethodGet, "/api/fixtures/today", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Response []struct {
			Fixture struct {
				ID     int64 `json:"id"`
				Status struct {
					Short   string `json:"short"`
					Long    string `json:"long"`
					Elapsed *int   `json:"elapsed"`
				} `json:"status"`
				Date string `json:"date"`
			} `json:"fixture"`
			League struct {
				ID   int64   `json:"id"`
				Name string  `json:"name"`
				Logo *string `json:"logo"`
			} `json:"league"`
			Teams struct {
				Home struct {
					Name string `json:"name"`
				} `json:"home"`
			} `json:"teams"`
			Goals struct {
				Home *int `json:"home"`
				Away *int `json:"away"`
			} `json:"goals"`
		} `json:"response"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if len(body.Response) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(body.Response))
	}
	wantIDs := []int64{1001, 2001, 1002}
	for i, want := range wantIDs {
		if got := body.Response[i].Fixture.ID; got != want {
			t.Fatalf("fixture[%d] id=%d want %d", i, got, want)
		}
	}

	first := body.Response[0]
	if first.Fixture.Date != "2026-03-01T12:30:00Z" {
		t.Fatalf("unexpected date: %q", first.Fixture.Date)
	}
	if first.League.Name != "Premier League" || first.League.Logo != nil {
		t.Fatalf("unexpected league: %+v", first.League)
	}
	if first.Teams.Home.Name != "Arsenal" {
		t.Fatalf("unexpected home team: %q", first.Teams.Home.Name)
	}

	notStarted := body.Response[2]
	if notStarted.Fixture.Status.Short != "NS" || notStarted.Goals.Home != nil || notStarted.Fixture.Status.Elapsed != nil {
		t.Fatalf("expected null goals and elapsed for NS fixture, got %+v", notStarted)
	}
	if !strings.Contains(rec.Body.String(), `"home":null`) {
		t.Fatalf("expected explicit null goals in body: %s", rec.Body.String())
	}
}

func TestListTodayFixtures_LeagueFilter(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")

	cases := map[string]int{
		"/api/fixtures/today?league=140": 1,
		"/api/fixtures/today?league=39":  2,
		"/api/fixtures/today?league=abc": 3,
		"/api/fixtures/today?league=0":   3,
		"/api/fixtures/today?league=555": 0,
	}
	for target, want := range cases {
		rec := srv.do(t, http.MethodGet, target, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
		items, _ := decodeBody(t, rec)["response"].([]any)
		if len(items) != want {
			t.Fatalf("%s: expected %d fixtures, got %d", target, want, len(items))
		}
	}
}

func TestListFixtureEvents_MissSyncsThenServesCache(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	for i := 0; i < 2; i++ {
		rec := srv.do(t, http.MethodGet, "/api/fixtures/2001/events", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
		}
		items, _ := decodeBody(t, rec)["response"].([]any)
		if len(items) != 1 {
			t.Fatalf("expected 1 event, got %d", len(items))
		}
		event := items[0].(map[string]any)
		if event["type"] != "Goal" {
			t.Fatalf("unexpected event type: %v", event["type"])
		}
		if player := event["player"].(map[string]any); player["name"] != "Pedri" {
			t.Fatalf("unexpected player: %v", player)
		}
		if elapsed := event["time"].(map[string]any)["elapsed"]; elapsed != float64(55) {
			t.Fatalf("unexpected elapsed: %v", elapsed)
		}
	}
	if calls := srv.provider.eventCalls.Load(); calls != 1 {
		t.Fatalf("expected exactly one upstream events call, got %d", calls)
	}
}

func TestListFixtureEvents_EmptyIsArray(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	rec := srv.do(t, http.MethodGet, "/api/fixtures/1002/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"response":[]}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestFixtureRoutes_InvalidID(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	for _, target := range []string{"/api/fixtures/abc/events", "/api/fixtures/0/events", "/api/fixtures/-3/lineups"} {
		rec := srv.do(t, http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Invalid fixture id" {
			t.Fatalf("%s: unexpected error message %v", target, got)
		}
	}
}

func TestListFixtureEvents_UpstreamFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	srv.provider.err = &usecase.UpstreamError{StatusCode: http.StatusTooManyRequests, Body: "rate limit"}

	rec := srv.do(t, http.MethodGet, "/api/fixtures/2001/events", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Failed to fetch events" {
		t.Fatalf("unexpected error message: %v", got)
	}
}

func TestListFixtureLineups(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	rec := srv.do(t, http.MethodGet, "/api/fixtures/2001/lineups", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items, _ := decodeBody(t, rec)["response"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected passthrough lineups, got %s", rec.Body.String())
	}

	srv.provider.err = errors.New("boom")
	rec = srv.do(t, http.MethodGet, "/api/fixtures/2001/lineups", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Failed to fetch lineups" {
		t.Fatalf("unexpected error message: %v", got)
	}
}

func TestFavouriteTeams_Flow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")

	for i := 0; i < 2; i++ {
		rec := srv.do(t, http.MethodPost, "/api/favourites/teams", `{"userId":1,"teamName":"Arsenal"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec)["success"]; got != true {
			t.Fatalf("unexpected success flag: %v", got)
		}
	}
	srv.do(t, http.MethodPost, "/api/favourites/teams", `{"userId":"1","teamName":"Liverpool"}`)
	srv.do(t, http.MethodPost, "/api/favourites/teams", `{"teamName":"Barcelona"}`)
	srv.do(t, http.MethodPost, "/api/favourites/teams", `{"userId":2,"teamName":"Chelsea"}`)

	rec := srv.do(t, http.MethodGet, "/api/favourites/teams", "")
	if strings.TrimSpace(rec.Body.String()) != `{"favourites":["Arsenal","Barcelona","Liverpool"]}` {
		t.Fatalf("unexpected favourites: %s", rec.Body.String())
	}

	rec = srv.do(t, http.MethodDelete, "/api/favourites/teams", `{"teamName":"Arsenal"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rec.Code)
	}
	rec = srv.do(t, http.MethodDelete, "/api/favourites/teams?userId=1&teamName=Liverpool", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on query delete, got %d", rec.Code)
	}
	rec = srv.do(t, http.MethodDelete, "/api/favourites/teams", `{"teamName":"Never Added"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected idempotent delete, got %d", rec.Code)
	}

	rec = srv.do(t, http.MethodGet, "/api/favourites/teams?userId=1", "")
	if strings.TrimSpace(rec.Body.String()) != `{"favourites":["Barcelona"]}` {
		t.Fatalf("unexpected favourites after delete: %s", rec.Body.String())
	}
	rec = srv.do(t, http.MethodGet, "/api/favourites/teams?userId=2", "")
	if strings.TrimSpace(rec.Body.String()) != `{"favourites":["Chelsea"]}` {
		t.Fatalf("unexpected favourites for user 2: %s", rec.Body.String())
	}
}

func TestFavouriteTeams_Validation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")
	cases := []struct {
		method  string
		target  string
		body    string
		wantMsg string
	}{
		{http.MethodPost, "/api/favourites/teams", `{"userId":1}`, "teamName is required"},
		{http.MethodPost, "/api/favourites/teams", ``, "teamName is required"},
		{http.MethodPost, "/api/favourites/teams", `{"teamName":"   "}`, "teamName is required"},
		{http.MethodDelete, "/api/favourites/teams", `{"userId":1}`, "teamName is required"},
		{http.MethodPost, "/api/favourites/teams", `{"userId":"abc","teamName":"Arsenal"}`, ""},
		{http.MethodPost, "/api/favourites/teams", `{not json`, ""},
		{http.MethodGet, "/api/favourites/teams?userId=x", ``, "userId must be a number"},
	}

	for _, tc := range cases {
		rec := srv.do(t, tc.method, tc.target, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s %s %q: expected 400, got %d", tc.method, tc.target, tc.body, rec.Code)
		}
		if tc.wantMsg == "" {
			continue
		}
		if got := decodeBody(t, rec)["error"]; got != tc.wantMsg {
			t.Fatalf("%s %s %q: unexpected error %v", tc.method, tc.target, tc.body, got)
		}
	}
}

func TestInternalSyncRoute(t *testing.T) {
	t.Parallel()

	t.Run("not registered without token", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, "")
		rec := srv.do(t, http.MethodPost, "/api/internal/sync/today", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("rejects bad token", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, "secret")
		req := httptest.NewRequest(http.MethodPost, "/api/internal/sync/today", nil)
		req.Header.Set(headerInternalJobToken, "wrong")
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("runs sync with token", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, "secret")
		srv.provider.records = srv.provider.records[:2]
		req := httptest.NewRequest(http.MethodPost, "/api/internal/sync/today", nil)
		req.Header.Set(headerInternalJobToken, "secret")
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["success"] != true || body["synced"] != float64(2) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("surfaces upstream failure", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, "secret")
		srv.provider.err = &usecase.UpstreamError{StatusCode: http.StatusForbidden, Body: "key suspended"}
		req := httptest.NewRequest(http.MethodPost, "/api/internal/sync/today", nil)
		req.Header.Set(headerInternalJobToken, "secret")
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "key suspended") {
			t.Fatalf("upstream body leaked to client: %s", rec.Body.String())
		}
	})
}
