package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-dashboard/internal/usecase"
)

func TestWriteError_ClientErrorEchoesReason(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: teamName is required", usecase.ErrInvalidInput), "Failed to add favourite team")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body["error"] != "teamName is required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestWriteError_ServerErrorUsesFallback(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("%w: list events: %w", usecase.ErrStore, errors.New("pq: relation does not exist"))
	writeError(context.Background(), rec, err, "Failed to fetch events")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Failed to fetch events"}` {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "unauthorized", err: fmt.Errorf("%w: token", errUnauthorized), want: http.StatusUnauthorized},
		{name: "upstream", err: &usecase.UpstreamError{StatusCode: 502}, want: http.StatusInternalServerError},
		{name: "store", err: usecase.ErrStore, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err, "")
			if got.HTTPStatus != tt.want {
				t.Fatalf("mapError(%v)=%d want=%d", tt.err, got.HTTPStatus, tt.want)
			}
			if tt.want == http.StatusInternalServerError && got.Message != internalErrorMessage {
				t.Fatalf("expected generic message, got %q", got.Message)
			}
		})
	}
}
