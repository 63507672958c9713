package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-dashboard/internal/usecase"
)

const internalErrorMessage = "internal server error"

var errUnauthorized = errors.New("unauthorized")

type mappedError struct {
	HTTPStatus int
	Message    string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeError answers with {"error": msg}. Client errors echo their reason;
// server errors use fallback so provider and database details stay in logs.
func writeError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err, fallback)
	writeJSON(ctx, w, mapped.HTTPStatus, errorDTO{Error: mapped.Message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorDTO{Error: internalErrorMessage})
}

func mapError(ctx context.Context, err error, fallback string) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	if strings.TrimSpace(fallback) == "" {
		fallback = internalErrorMessage
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Message:    reasonOf(err, usecase.ErrInvalidInput),
		}
	case errors.Is(err, errUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Message:    reasonOf(err, errUnauthorized),
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Message:    fallback,
		}
	}
}

// reasonOf strips the leading sentinel text from a wrapped error message.
func reasonOf(err, sentinel error) string {
	msg := err.Error()
	if reason, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return reason
	}
	return msg
}
