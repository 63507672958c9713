package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-dashboard/external/apifootball"
	"github.com/riskibarqy/football-dashboard/internal/config"
	"github.com/riskibarqy/football-dashboard/internal/domain/favourite"
	"github.com/riskibarqy/football-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/football-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
	"github.com/riskibarqy/football-dashboard/internal/platform/scheduler"
	"github.com/riskibarqy/football-dashboard/internal/usecase"
)

// App is the assembled API process: HTTP server, optional sync scheduler and
// the resources they share.
type App struct {
	Server *http.Server
	// Scheduler is nil when periodic sync is disabled.
	Scheduler *scheduler.Scheduler
	Sync      *usecase.SyncService

	db     *sqlx.DB
	logger *logging.Logger
}

type stores struct {
	fixtures   fixture.Repository
	events     fixture.EventRepository
	favourites favourite.Repository
	db         *sqlx.DB
}

type Options struct {
	// Provider overrides the api-football client, mainly for tests.
	Provider usecase.FootballProvider
	Now      func() time.Time
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	st, err := buildStores(ctx, cfg, now, logger)
	if err != nil {
		return nil, err
	}

	provider := opts.Provider
	if provider == nil {
		provider = apifootball.NewClient(apifootball.ClientConfig{
			BaseURL: cfg.APIFootballBaseURL,
			APIKey:  cfg.APIFootballKey,
			Timeout: cfg.APIFootballTimeout,
			Breaker: cfg.APIFootballBreaker,
			Logger:  logger.Named("apifootball"),
		})
	}

	syncSvc := usecase.NewSyncService(provider, st.fixtures, st.events, usecase.SyncConfig{
		Location:       cfg.Location,
		Now:            now,
		RefreshWorkers: cfg.EventsRefreshWorkers,
	}, logger.Named("sync"))
	fixtureSvc := usecase.NewFixtureService(st.fixtures, usecase.FixtureServiceConfig{
		Location: cfg.Location,
		Now:      now,
	})
	eventSvc := usecase.NewEventService(st.events, syncSvc, usecase.EventServiceConfig{
		MissTTL: cfg.EventsMissTTL,
		Now:     now,
	}, logger.Named("events"))
	lineupSvc := usecase.NewLineupService(provider)
	favouriteSvc := usecase.NewFavouriteService(st.favourites)

	a := &App{
		Sync:   syncSvc,
		db:     st.db,
		logger: logger,
	}

	var manualSync httpapi.TodaySyncer = syncSvc
	if cfg.SyncEnabled {
		a.Scheduler = scheduler.New(scheduler.Config{
			Name:       "sync-today-fixtures",
			Interval:   cfg.SyncInterval,
			RunOnStart: cfg.SyncOnStart,
		}, func(ctx context.Context) error {
			synced, err := syncSvc.SyncTodayFixtures(ctx)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "today fixtures synced", "fixtures", synced, "date", syncSvc.Today())
			return nil
		}, logger)
		manualSync = scheduledSync{SyncService: syncSvc, scheduler: a.Scheduler}
	}

	handler := httpapi.NewHandler(fixtureSvc, eventSvc, lineupSvc, favouriteSvc, manualSync, logger)
	a.Server = &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			InternalJobToken:   cfg.InternalJobToken,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

// scheduledSync runs manual today syncs through the scheduler so they queue
// behind a scheduled run instead of overlapping it.
type scheduledSync struct {
	*usecase.SyncService
	scheduler *scheduler.Scheduler
}

func (s scheduledSync) SyncTodayFixtures(ctx context.Context) (int, error) {
	var synced int
	err := s.scheduler.RunNow(ctx, func(ctx context.Context) error {
		var err error
		synced, err = s.SyncService.SyncTodayFixtures(ctx)
		return err
	})
	return synced, err
}

func buildStores(ctx context.Context, cfg config.Config, now func() time.Time, logger *logging.Logger) (stores, error) {
	var st stores

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if cfg.DBAutoMigrate {
			if err := MigrateUp(NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary), logger); err != nil {
				return stores{}, err
			}
		}
		db, err := OpenDatabase(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		st = stores{
			fixtures:   postgres.NewFixtureRepository(db),
			events:     postgres.NewEventRepository(db),
			favourites: postgres.NewFavouriteRepository(db),
			db:         db,
		}
	case config.StoreDriverMemory:
		var seed []fixture.Record
		// Without a provider key nothing will ever sync, so serve demo data.
		if strings.TrimSpace(cfg.APIFootballKey) == "" {
			seed = memory.SeedRecords(now().In(cfg.Location))
			logger.Warn("api-football key missing, serving seeded fixtures", "fixtures", len(seed))
		}
		st = stores{
			fixtures:   memory.NewFixtureRepository(seed...),
			events:     memory.NewEventRepository(),
			favourites: memory.NewFavouriteRepository(),
		}
	default:
		return stores{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	if cfg.CacheEnabled && cfg.CacheTTL > 0 {
		st.fixtures = cache.NewFixtureRepository(st.fixtures, cfg.CacheTTL)
	}
	return st, nil
}

// Start launches the scheduler, if any. The HTTP server is started by the caller.
func (a *App) Start(ctx context.Context) error {
	if a.Scheduler == nil {
		return nil
	}
	return a.Scheduler.Start(ctx)
}

// Shutdown stops the scheduler, then the HTTP server, then the store.
func (a *App) Shutdown(ctx context.Context) error {
	if a.Scheduler != nil {
		if err := a.Scheduler.Stop(ctx); err != nil {
			a.logger.Warn("stop scheduler failed", "error", err)
		}
	}
	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return a.Close()
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	a.db = nil
	return nil
}
