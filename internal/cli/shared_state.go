package cli

import (
	"github.com/dgilligan/folio/internal/cli/formatter"
	"github.com/dgilligan/folio/internal/domain"
	"github.com/dgilligan/folio/internal/modal"
)

// Screen layout: header (title + separator) above the content area and
// status bar (separator + status + hints) below it.
const (
	headerLines = 2
	footerLines = 3
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Modals owns the role and certificate dialogs and the scroll lock.
	Modals *modal.Controller

	// ScrollFrozen is driven by the scroll lock hooks. The page ignores
	// scroll input while it is set.
	ScrollFrozen bool

	Palette formatter.Palette

	// Terminal dimensions
	Width  int
	Height int
}

// newSharedState wires the modal controller so its scroll lock freezes
// the page, and follows theme changes.
func newSharedState(app *App) *SharedState {
	s := &SharedState{App: app}
	lock := modal.NewScrollLock(
		func() { s.ScrollFrozen = true },
		func() { s.ScrollFrozen = false },
	)
	s.Modals = modal.NewController(lock)
	s.Palette = formatter.ForTheme(app.Theme.Current())
	app.Theme.OnChange(func(t domain.ThemePreference) {
		s.Palette = formatter.ForTheme(t)
	})
	return s
}

// ContentHeight returns the available height for view content.
func (s *SharedState) ContentHeight() int {
	h := s.Height - headerLines - footerLines
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the text width inside the page.
func (s *SharedState) ContentWidth() int {
	return formatter.ContentWidth(s.Width)
}
