package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgilligan/folio/internal/domain"
)

// Palette is one set of colors for the whole UI. Every renderer takes the
// palette explicitly so a theme toggle re-renders without global state.
type Palette struct {
	Name   string
	Accent lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Shade  lipgloss.Color
}

// Gruvbox dark and light variants.
var (
	Dark = Palette{
		Name:   "dark",
		Accent: lipgloss.Color("#fe8019"),
		Green:  lipgloss.Color("#8ec07c"),
		Yellow: lipgloss.Color("#fabd2f"),
		Red:    lipgloss.Color("#fb4934"),
		Blue:   lipgloss.Color("#83a598"),
		Purple: lipgloss.Color("#d3869b"),
		Dim:    lipgloss.Color("#928374"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Shade:  lipgloss.Color("#3c3836"),
	}
	Light = Palette{
		Name:   "light",
		Accent: lipgloss.Color("#af3a03"),
		Green:  lipgloss.Color("#427b58"),
		Yellow: lipgloss.Color("#b57614"),
		Red:    lipgloss.Color("#9d0006"),
		Blue:   lipgloss.Color("#076678"),
		Purple: lipgloss.Color("#8f3f71"),
		Dim:    lipgloss.Color("#7c6f64"),
		Fg:     lipgloss.Color("#3c3836"),
		Shade:  lipgloss.Color("#d5c4a1"),
	}
)

// ForTheme returns the palette for t.
func ForTheme(t domain.ThemePreference) Palette {
	if t.IsDark() {
		return Dark
	}
	return Light
}

func (p Palette) style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Header renders a section header with an underline.
func (p Palette) Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", p.style(p.Accent).Bold(true).Render(upper), p.Faint(line))
}

// Faint renders text in the muted color.
func (p Palette) Faint(text string) string { return p.style(p.Dim).Render(text) }

// Bold renders text in bold with the foreground color.
func (p Palette) Bold(text string) string { return p.style(p.Fg).Bold(true).Render(text) }

// Text renders text in the foreground color.
func (p Palette) Text(text string) string { return p.style(p.Fg).Render(text) }

// Highlight renders text in the accent color.
func (p Palette) Highlight(text string) string { return p.style(p.Accent).Render(text) }

// Good renders text in green.
func (p Palette) Good(text string) string { return p.style(p.Green).Render(text) }

// Warn renders text in yellow.
func (p Palette) Warn(text string) string { return p.style(p.Yellow).Render(text) }

// Bad renders text in red.
func (p Palette) Bad(text string) string { return p.style(p.Red).Render(text) }

// Link renders text in blue.
func (p Palette) Link(text string) string { return p.style(p.Blue).Render(text) }

// NameStyle renders text in purple, used for the profile name.
func (p Palette) NameStyle(text string) string { return p.style(p.Purple).Bold(true).Render(text) }

// ThemeBadge returns the header indicator for the current theme.
func (p Palette) ThemeBadge(t domain.ThemePreference) string {
	if t.IsDark() {
		return p.style(p.Purple).Render("☾ dark")
	}
	return p.style(p.Yellow).Render("☀ light")
}
