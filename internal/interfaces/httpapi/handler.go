package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
	"github.com/riskibarqy/football-dashboard/internal/usecase"
)

// TodaySyncer runs the today-fixtures sync on demand.
type TodaySyncer interface {
	SyncTodayFixtures(ctx context.Context) (int, error)
	Today() string
}

type Handler struct {
	fixtureService   *usecase.FixtureService
	eventService     *usecase.EventService
	lineupService    *usecase.LineupService
	favouriteService *usecase.FavouriteService
	syncService      TodaySyncer
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	fixtureService *usecase.FixtureService,
	eventService *usecase.EventService,
	lineupService *usecase.LineupService,
	favouriteService *usecase.FavouriteService,
	syncService TodaySyncer,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &Handler{
		fixtureService:   fixtureService,
		eventService:     eventService,
		lineupService:    lineupService,
		favouriteService: favouriteService,
		syncService:      syncService,
		logger:           logger,
		validator:        v,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, first.Field())
	default:
		return fmt.Errorf("%w: %s is invalid", usecase.ErrInvalidInput, first.Field())
	}
}
