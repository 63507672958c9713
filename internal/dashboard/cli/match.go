package cli

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/football-dashboard/internal/dashboard"
	"github.com/spf13/cobra"
)

var errInvalidFixtureID = errors.New("invalid fixture id")

func newMatchCommand(opts *RootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "match <fixture-id>",
		Short: "Show events and lineups of one of today's fixtures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFixtureID(args[0])
			if err != nil {
				return err
			}
			parsedMode, err := dashboard.ParseMode(mode)
			if err != nil {
				return err
			}

			state, err := opts.loadState(cmd, false)
			if err != nil {
				return err
			}
			fx, ok := state.Fixture(id)
			if !ok {
				return fmt.Errorf("fixture %d is not on today's list", id)
			}

			details := dashboard.LoadMatchDetails(cmd.Context(), opts.client, fx)
			if details.EventsErr != nil {
				opts.logger.Warn("events unavailable", "fixture_id", id, "error", details.EventsErr)
			}
			if details.LineupsErr != nil {
				opts.logger.Warn("lineups unavailable", "fixture_id", id, "error", details.LineupsErr)
			}
			return opts.renderer(parsedMode).RenderDetails(cmd.OutOrStdout(), details)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(dashboard.ModePanel), "panel or modal")
	return cmd
}
