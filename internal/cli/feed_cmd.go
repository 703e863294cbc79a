package cli

import (
	"errors"
	"fmt"

	"github.com/dgilligan/folio/internal/cli/formatter"
	"github.com/dgilligan/folio/internal/content"
	"github.com/spf13/cobra"
)

// palette returns the colors for command output under the current theme.
func palette(app *App) formatter.Palette {
	return formatter.ForTheme(app.Theme.Current())
}

func newRolesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List work experience",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoleList(palette(app), app.Feed.Roles, 0))
			return nil
		},
	}
}

func newRoleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "role <id>",
		Short: "Show one role in full",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			ids := make([]string, 0, len(app.Feed.Roles))
			for _, r := range app.Feed.Roles {
				ids = append(ids, r.ID)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Feed.RoleByID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRole(palette(app), r, formatter.ContentWidth(0)))
			return nil
		},
	}
}

func newCertsCmd(app *App) *cobra.Command {
	var viewable bool

	cmd := &cobra.Command{
		Use:     "certs",
		Aliases: []string{"certificates"},
		Short:   "List certificates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			certs := app.Feed.Certificates
			if viewable {
				certs = app.Feed.PresentableCertificates()
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCertificateList(palette(app), certs, 0))
			return nil
		},
	}

	cmd.Flags().BoolVar(&viewable, "viewable", false, "Only certificates with an image")
	return cmd
}

func newQualificationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "qualifications",
		Short: "List qualifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter.FormatQualifications(palette(app), app.Feed.Qualifications, formatter.ContentWidth(0))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newErpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "erp",
		Short: "List ERP systems worked with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatErpSystems(palette(app), app.Feed.ErpSystems, 0))
			return nil
		},
	}
}

// errInvalidFeed is returned by feed check when validation finds problems.
var errInvalidFeed = errors.New("content feed is invalid")

func newFeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Inspect the content feed",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the content feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := content.Validate(app.Feed)
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatValidation(palette(app), len(app.Feed.Roles), len(app.Feed.Certificates), errs))
			if len(errs) > 0 {
				return errInvalidFeed
			}
			return nil
		},
	})
	return cmd
}
