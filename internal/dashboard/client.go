package dashboard

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
)

const (
	DefaultBaseURL        = "http://localhost:4000"
	defaultRequestTimeout = 15 * time.Second
	favouriteTeamsPath    = "/api/favourites/teams"
)

// APIError is a non-2xx answer from the fixtures API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

type ClientConfig struct {
	BaseURL string
	// Timeout applies when the caller's context has no deadline.
	Timeout    time.Duration
	HTTPClient *fasthttp.Client
}

// Client talks to the fixtures API over fasthttp.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "football-dashboard-cli",
			MaxIdleConnDuration: 30 * time.Second,
		}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{http: httpClient, baseURL: baseURL, timeout: timeout}
}

func (c *Client) TodayFixtures(ctx context.Context) ([]Fixture, error) {
	var env fixturesEnvelope
	if err := c.do(ctx, fasthttp.MethodGet, "/api/fixtures/today", nil, &env); err != nil {
		return nil, err
	}
	out := make([]Fixture, 0, len(env.Response))
	for _, item := range env.Response {
		out = append(out, item.toFixture())
	}
	return out, nil
}

func (c *Client) FixtureEvents(ctx context.Context, fixtureID int64) ([]Event, error) {
	var env eventsEnvelope
	if err := c.do(ctx, fasthttp.MethodGet, fixturePath(fixtureID, "events"), nil, &env); err != nil {
		return nil, err
	}
	return env.toEvents(), nil
}

func (c *Client) FixtureLineups(ctx context.Context, fixtureID int64) ([]Lineup, error) {
	var env lineupsEnvelope
	if err := c.do(ctx, fasthttp.MethodGet, fixturePath(fixtureID, "lineups"), nil, &env); err != nil {
		return nil, err
	}
	return env.toLineups(), nil
}

func (c *Client) Favourites(ctx context.Context, userID int64) ([]string, error) {
	path := favouriteTeamsPath + "?" + url.Values{"userId": {strconv.FormatInt(userID, 10)}}.Encode()

	var env favouritesEnvelope
	if err := c.do(ctx, fasthttp.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Favourites == nil {
		return []string{}, nil
	}
	return env.Favourites, nil
}

func (c *Client) AddFavourite(ctx context.Context, userID int64, teamName string) error {
	return c.do(ctx, fasthttp.MethodPost, favouriteTeamsPath, favouriteRequest{UserID: userID, TeamName: teamName}, nil)
}

func (c *Client) RemoveFavourite(ctx context.Context, userID int64, teamName string) error {
	return c.do(ctx, fasthttp.MethodDelete, favouriteTeamsPath, favouriteRequest{UserID: userID, TeamName: teamName}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	// resp is released on return, so decoded strings must not alias its buffer.
	respBody := append([]byte(nil), resp.Body()...)
	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		apiErr := &APIError{Method: method, Path: path, StatusCode: status}
		var env errorEnvelope
		if sonic.Unmarshal(respBody, &env) == nil {
			apiErr.Message = env.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func fixturePath(fixtureID int64, resource string) string {
	return "/api/fixtures/" + strconv.FormatInt(fixtureID, 10) + "/" + resource
}
