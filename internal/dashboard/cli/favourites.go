package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFavouritesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favourites"},
		Short:   "Manage favourite teams",
	}
	cmd.AddCommand(newFavouritesListCommand(opts))
	cmd.AddCommand(newFavouritesToggleCommand(opts))
	return cmd
}

func newFavouritesListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favourite teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			teams, err := opts.client.Favourites(cmd.Context(), opts.UserID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(teams) == 0 {
				_, err := fmt.Fprintln(out, "No favourite teams.")
				return err
			}
			for _, team := range teams {
				if _, err := fmt.Fprintln(out, team); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFavouritesToggleCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <team name>",
		Short: "Add the team to favourites, or remove it when already there",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team := strings.TrimSpace(strings.Join(args, " "))
			if team == "" {
				return fmt.Errorf("teamName is required")
			}

			state, err := opts.loadState(cmd, true)
			if err != nil {
				return err
			}
			added, err := state.ToggleFavourite(cmd.Context(), team)
			if err != nil {
				return err
			}

			verb := "Removed"
			if added {
				verb = "Added"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, team)
			return err
		},
	}
}
