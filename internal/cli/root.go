package cli

import (
	"fmt"

	"github.com/dgilligan/folio/internal/cli/formatter"
	"github.com/dgilligan/folio/internal/contact"
	"github.com/dgilligan/folio/internal/content"
	"github.com/dgilligan/folio/internal/preference"
	"github.com/dgilligan/folio/internal/theme"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands and the TUI need.
type App struct {
	Feed    *content.Feed
	Store   preference.Store
	Signal  theme.Signal
	Contact *contact.Adapter

	// Theme is resolved from Store and Signal before any command runs
	// unless the caller supplies one.
	Theme *theme.Controller

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Mouse enables mouse capture in the TUI.
	Mouse bool
}

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		contentPath string
		ephemeral   bool
		system      = systemThemeAuto
	)

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Terminal portfolio with roles, certificates and a contact form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if contentPath != "" {
				f, err := content.Load(contentPath)
				if err != nil {
					return fmt.Errorf("loading content: %w", err)
				}
				app.Feed = f
			}
			if app.Feed == nil {
				app.Feed = content.Default()
			}
			if ephemeral {
				app.Store = preference.NewMemoryStore()
			}
			if app.Theme == nil {
				app.Theme = theme.New(app.Store, system.signal(app.Signal))
			}
			if app.Contact == nil {
				app.Contact = contact.NewAdapter(nil, nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			p := formatter.ForTheme(app.Theme.Current())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPage(p, app.Feed, 0))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&contentPath, "content", "", "Load portfolio content from a YAML file")
	flags.BoolVar(&ephemeral, "ephemeral", false, "Keep preferences in memory for this run only")
	flags.Var(&system, "system-theme", "Terminal color scheme when no theme is saved (auto, light, dark)")

	root.AddCommand(
		newRolesCmd(app),
		newRoleCmd(app),
		newCertsCmd(app),
		newQualificationsCmd(app),
		newErpCmd(app),
		newThemeCmd(app),
		newContactCmd(app),
		newFeedCmd(app),
	)

	return root
}
