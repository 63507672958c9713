package cli

import (
	"strconv"

	"github.com/riskibarqy/football-dashboard/internal/dashboard"
	"github.com/spf13/cobra"
)

func newFixturesCommand(opts *RootOptions) *cobra.Command {
	var (
		tab            string
		leagueID       int64
		favouritesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "List today's fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedTab, err := dashboard.ParseTab(tab)
			if err != nil {
				return err
			}

			state, err := opts.loadState(cmd, false)
			if err != nil {
				return err
			}
			state.SetFilter(dashboard.Filter{Tab: parsedTab, LeagueID: leagueID, FavouritesOnly: favouritesOnly})

			return opts.renderer(dashboard.ModePanel).RenderFixtures(cmd.OutOrStdout(), state.Visible(), state.IsFavourite)
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(dashboard.TabToday), "today or live")
	cmd.Flags().Int64Var(&leagueID, "league", 0, "only this league id (0 = all)")
	cmd.Flags().BoolVar(&favouritesOnly, "favourites", false, "only fixtures with a favourite team")
	return cmd
}

func newLeaguesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List the leagues playing today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := opts.loadState(cmd, false)
			if err != nil {
				return err
			}
			return opts.renderer(dashboard.ModePanel).RenderLeagues(cmd.OutOrStdout(), state.Leagues())
		},
	}
}

func parseFixtureID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidFixtureID
	}
	return id, nil
}
