package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the interactive portfolio until the user quits. The modal
// controller is torn down on every exit path so the scroll lock is never
// left held.
func RunTUI(app *App) error {
	m := newAppModel(app)
	defer m.state.Modals.Teardown()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
