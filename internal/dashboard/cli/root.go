// Package cli is the cobra command tree of the terminal dashboard.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/riskibarqy/football-dashboard/internal/dashboard"
	"github.com/riskibarqy/football-dashboard/internal/platform/logging"
	"github.com/spf13/cobra"
)

// RootOptions holds the global flags shared by every command.
type RootOptions struct {
	APIURL   string
	UserID   int64
	Timeout  time.Duration
	Timezone string
	Verbose  bool

	client   *dashboard.Client
	location *time.Location
	logger   *logging.Logger
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "football-dashboard",
		Short:         "Today's football fixtures in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", envOr("DASHBOARD_API_URL", dashboard.DefaultBaseURL), "fixtures API base URL")
	cmd.PersistentFlags().Int64Var(&opts.UserID, "user", 1, "user id owning the favourite teams")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 15*time.Second, "per request timeout")
	cmd.PersistentFlags().StringVar(&opts.Timezone, "tz", os.Getenv("APP_TIMEZONE"), "timezone for kickoff times (default local)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(newFixturesCommand(opts))
	cmd.AddCommand(newLeaguesCommand(opts))
	cmd.AddCommand(newMatchCommand(opts))
	cmd.AddCommand(newFavouritesCommand(opts))

	return cmd
}

func (o *RootOptions) init(cmd *cobra.Command) error {
	if o.UserID <= 0 {
		return fmt.Errorf("invalid --user %d: must be positive", o.UserID)
	}

	o.location = time.Local
	if tz := strings.TrimSpace(o.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("parse --tz: %w", err)
		}
		o.location = loc
	}

	level := logging.LevelWarn
	if o.Verbose {
		level = logging.LevelDebug
	}
	o.logger = logging.New(logging.Options{Level: level, Output: cmd.ErrOrStderr(), Service: "football-dashboard-cli"})
	o.client = dashboard.NewClient(dashboard.ClientConfig{BaseURL: o.APIURL, Timeout: o.Timeout})
	return nil
}

// loadState fetches the day. Unless requireFavourites is set, a favourites
// failure only warns and the fixture list is used without it.
func (o *RootOptions) loadState(cmd *cobra.Command, requireFavourites bool) (*dashboard.State, error) {
	started := time.Now()
	state := dashboard.NewState(o.client, o.UserID)
	err := state.Load(cmd.Context())
	o.logger.Debug("dashboard state loaded",
		"api", o.APIURL,
		"fixtures", len(state.Fixtures()),
		"favourites", len(state.Favourites()),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	if err == nil {
		return state, nil
	}
	if requireFavourites || errors.Is(err, dashboard.ErrFixturesLoad) {
		return nil, err
	}
	o.logger.Warn("favourite teams unavailable", "error", err)
	return state, nil
}

func (o *RootOptions) renderer(mode dashboard.Mode) dashboard.Renderer {
	return dashboard.NewRenderer(mode, o.location)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
