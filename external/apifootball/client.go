package apifootball

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
	"github.com/riskibarqy/football-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/football-dashboard/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	DefaultBaseURL = "https://v3.football.api-sports.io"
	apiKeyHeader   = "x-apisports-key"
	maxBodyBytes   = 6 << 20
)

var errMissingAPIKey = crerr.New("api-football key is not configured")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	// Timeout of 0 leaves requests bounded only by the caller's context.
	Timeout time.Duration
	// Breaker is disabled when FailureThreshold is 0.
	Breaker resilience.BreakerConfig
	Logger  *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logging.Logger
	breaker    *resilience.Breaker
	flight     flightGroup
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
		breaker:    resilience.NewBreaker(cfg.Breaker),
	}
}

func (c *Client) FetchFixturesByDate(ctx context.Context, date string) ([]fixture.Record, error) {
	env, err := c.Fetch(ctx, "/fixtures", map[string]string{"date": date})
	if err != nil {
		return nil, err
	}

	var items []fixtureItem
	if err := decodeResponse(env, &items); err != nil {
		return nil, err
	}

	out := make([]fixture.Record, 0, len(items))
	for i, item := range items {
		record, err := mapFixtureItem(item)
		if err != nil {
			c.logger.WarnContext(ctx, "reject api-football fixtures batch", "date", date, "index", i, "fixture_id", item.Fixture.ID, "error", err)
			return nil, &usecase.UpstreamError{Err: crerr.Wrapf(err, "map fixture item %d", i)}
		}
		out = append(out, record)
	}
	return out, nil
}

func (c *Client) FetchFixtureEvents(ctx context.Context, fixtureID int64) ([]fixture.Event, error) {
	env, err := c.Fetch(ctx, "/fixtures/events", map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)})
	if err != nil {
		return nil, err
	}

	var items []eventItem
	if err := decodeResponse(env, &items); err != nil {
		return nil, err
	}

	out := make([]fixture.Event, 0, len(items))
	for _, item := range items {
		out = append(out, mapEventItem(fixtureID, item))
	}
	return out, nil
}

func (c *Client) FetchFixtureLineups(ctx context.Context, fixtureID int64) (json.RawMessage, error) {
	env, err := c.Fetch(ctx, "/fixtures/lineups", map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)})
	if err != nil {
		return nil, err
	}
	if isNullJSON(env.Response) {
		return json.RawMessage("[]"), nil
	}
	return env.Response, nil
}

// Fetch issues one GET against the provider and decodes the envelope.
// Identical concurrent requests share a single upstream call.
func (c *Client) Fetch(ctx context.Context, path string, query map[string]string) (Envelope, error) {
	if c.apiKey == "" {
		return Envelope{}, &usecase.UpstreamError{Err: errMissingAPIKey}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err := c.flight.Do(ctx, fullURL, func(callCtx context.Context) (any, error) {
		var raw []byte
		err := c.breaker.Do(callCtx, func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(callCtx, fullURL)
			return reqErr
		})
		if crerr.Is(err, resilience.ErrBreakerOpen) {
			c.logger.WarnContext(callCtx, "api-football breaker open, skipping request", "path", path)
			return nil, &usecase.UpstreamError{Err: err}
		}
		return raw, err
	})
	if err != nil {
		return Envelope{}, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return Envelope{}, fmt.Errorf("unexpected response payload type %T", out)
	}

	var env Envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return Envelope{}, &usecase.UpstreamError{
			StatusCode: http.StatusOK,
			Body:       abbreviateBody(raw),
			Err:        crerr.Wrap(err, "decode api-football envelope"),
		}
	}
	if hasProviderErrors(env.Errors) {
		c.logger.WarnContext(ctx, "api-football reported errors", "path", path, "errors", abbreviateBody(env.Errors))
	}

	return env, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upErr := &usecase.UpstreamError{Err: crerr.Newf("send request: %s", c.sanitize(err.Error()))}
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", upErr)
		return nil, upErr
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, &usecase.UpstreamError{StatusCode: resp.StatusCode, Err: crerr.Wrap(err, "read response body")}
	}
	raw := append([]byte(nil), buf.B...)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upErr := &usecase.UpstreamError{StatusCode: resp.StatusCode, Body: c.sanitize(abbreviateBody(raw))}
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "status", resp.StatusCode, "error", upErr)
		return nil, upErr
	}

	return raw, nil
}

func decodeResponse(env Envelope, target any) error {
	if isNullJSON(env.Response) {
		return nil
	}
	if err := sonic.Unmarshal(env.Response, target); err != nil {
		return &usecase.UpstreamError{
			StatusCode: http.StatusOK,
			Body:       abbreviateBody(env.Response),
			Err:        crerr.Wrap(err, "decode api-football response"),
		}
	}
	return nil
}

// hasProviderErrors treats [], {} and null as "no errors".
func hasProviderErrors(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return false
	default:
		return true
	}
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func (c *Client) sanitize(value string) string {
	if c.apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, c.apiKey, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
