package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Signal is the system-level "prefers dark" hint consulted when no theme
// has been stored.
type Signal interface {
	PrefersDark() bool
}

// SignalFunc adapts a function to Signal.
type SignalFunc func() bool

func (f SignalFunc) PrefersDark() bool { return f() }

// StaticSignal always reports the same preference.
type StaticSignal bool

func (s StaticSignal) PrefersDark() bool { return bool(s) }

// TerminalSignal reports a dark preference when Out is a terminal whose
// background is dark. Non-terminal output reports light without querying.
type TerminalSignal struct {
	Out *os.File
}

func (s TerminalSignal) PrefersDark() bool {
	if s.Out == nil {
		return false
	}
	fd := s.Out.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return lipgloss.HasDarkBackground()
}

// OverrideSignal returns Value when set and defers to Fallback otherwise.
// It carries an explicit user setting such as FOLIO_PREFERS_DARK.
type OverrideSignal struct {
	Value    *bool
	Fallback Signal
}

func (s OverrideSignal) PrefersDark() bool {
	if s.Value != nil {
		return *s.Value
	}
	if s.Fallback == nil {
		return false
	}
	return s.Fallback.PrefersDark()
}
