package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	show := func(cmd *cobra.Command) {
		p := palette(app)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			p.ThemeBadge(app.Theme.Current()), p.Faint("("+string(app.Theme.Source())+")"))
	}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show, toggle or reset the saved color theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			show(cmd)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the current theme and where it came from",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				show(cmd)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark and save the choice",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app.Theme.Toggle()
				show(cmd)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Forget the saved choice and follow the system theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app.Theme.Reset()
				show(cmd)
				return nil
			},
		},
	)
	return cmd
}
