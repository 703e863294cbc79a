package cli

import (
	"fmt"
	"strings"

	"github.com/dgilligan/folio/internal/theme"
	"github.com/spf13/pflag"
)

// systemThemeFlag overrides the terminal color-scheme probe.
type systemThemeFlag string

const (
	systemThemeAuto  systemThemeFlag = "auto"
	systemThemeLight systemThemeFlag = "light"
	systemThemeDark  systemThemeFlag = "dark"
)

var _ pflag.Value = (*systemThemeFlag)(nil)

func (f *systemThemeFlag) String() string { return string(*f) }
func (f *systemThemeFlag) Type() string   { return "scheme" }

func (f *systemThemeFlag) Set(v string) error {
	switch s := systemThemeFlag(strings.ToLower(strings.TrimSpace(v))); s {
	case systemThemeAuto, systemThemeLight, systemThemeDark:
		*f = s
		return nil
	}
	return fmt.Errorf("must be auto, light or dark, got %q", v)
}

// signal returns the signal to resolve the theme with. Auto keeps
// fallback; light and dark pin the answer.
func (f systemThemeFlag) signal(fallback theme.Signal) theme.Signal {
	switch f {
	case systemThemeLight:
		return theme.StaticSignal(false)
	case systemThemeDark:
		return theme.StaticSignal(true)
	}
	return fallback
}
