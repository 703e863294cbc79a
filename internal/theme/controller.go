// Package theme owns the dark/light presentation choice. The value is
// resolved once at construction from the preference store, then the
// system color-scheme signal, then light; it changes only through Toggle.
package theme

import (
	"strconv"

	"github.com/dgilligan/folio/internal/domain"
	"github.com/dgilligan/folio/internal/preference"
)

// PreferenceKey is the store key holding the theme as "true" (dark) or
// "false" (light).
const PreferenceKey = "portfolio:dark"

// Source records where the startup theme came from.
type Source string

const (
	SourceStored  Source = "stored"
	SourceSystem  Source = "system"
	SourceDefault Source = "default"
)

// Controller is the single owner of the current theme. It is not safe for
// concurrent use; the UI drives it from one goroutine.
type Controller struct {
	store     preference.Store
	signal    Signal
	current   domain.ThemePreference
	source    Source
	listeners []func(domain.ThemePreference)
}

// New resolves the startup theme and returns a controller holding it.
// A nil store behaves as unavailable storage and a nil signal as "prefers
// light". Nothing is written until the first Toggle.
func New(store preference.Store, signal Signal) *Controller {
	if store == nil {
		store = preference.Unavailable()
	}
	current, source := Resolve(store, signal)
	return &Controller{store: store, signal: signal, current: current, source: source}
}

// Resolve computes the startup theme without constructing a controller.
func Resolve(store preference.Store, signal Signal) (domain.ThemePreference, Source) {
	if store != nil {
		// Only the exact literals written by Toggle count as stored.
		switch raw, _ := store.Get(PreferenceKey); raw {
		case "true":
			return domain.ThemeDark, SourceStored
		case "false":
			return domain.ThemeLight, SourceStored
		}
	}
	if signal != nil && signal.PrefersDark() {
		return domain.ThemeDark, SourceSystem
	}
	if signal != nil {
		return domain.ThemeLight, SourceSystem
	}
	return domain.ThemeLight, SourceDefault
}

// Current returns the in-memory theme.
func (c *Controller) Current() domain.ThemePreference { return c.current }

// Dark reports whether the current theme is dark.
func (c *Controller) Dark() bool { return c.current.IsDark() }

// Source reports how the theme was chosen at startup, or SourceStored once
// the user has toggled.
func (c *Controller) Source() Source { return c.source }

// Toggle flips the theme, persists the new value and notifies listeners.
// It returns the new theme.
func (c *Controller) Toggle() domain.ThemePreference {
	c.current = c.current.Toggled()
	c.source = SourceStored
	c.store.Set(PreferenceKey, strconv.FormatBool(c.current.IsDark()))
	for _, fn := range c.listeners {
		fn(c.current)
	}
	return c.current
}

// Reset forgets the saved choice and resolves the theme again from the
// system signal. Listeners run only when the theme actually changes.
func (c *Controller) Reset() domain.ThemePreference {
	c.store.Delete(PreferenceKey)
	prev := c.current
	c.current, c.source = Resolve(c.store, c.signal)
	if c.current != prev {
		for _, fn := range c.listeners {
			fn(c.current)
		}
	}
	return c.current
}

// OnChange registers fn to run after every Toggle.
func (c *Controller) OnChange(fn func(domain.ThemePreference)) {
	c.listeners = append(c.listeners, fn)
}
