package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderBox wraps content in a rounded-border box with an optional title.
// A width of zero lets the box size to its content.
func (p Palette) RenderBox(title, content string, width int) string {
	return p.box(title, content, width, p.Dim)
}

// FocusBox is RenderBox with the accent border used for the focused card.
func (p Palette) FocusBox(title, content string, width int) string {
	return p.box(title, content, width, p.Accent)
}

func (p Palette) box(title, content string, width int, border lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2)
	if width > 0 {
		// Width in lipgloss excludes the border.
		boxStyle = boxStyle.Width(max(width-2, 8))
	}

	if title != "" {
		titleRendered := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(title)
		return boxStyle.Render(titleRendered + "\n" + content)
	}
	return boxStyle.Render(content)
}

// ModalBox renders a detail dialog with a close hint under the body.
func (p Palette) ModalBox(title, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Accent).
		Padding(1, 3)
	if width > 0 {
		style = style.Width(max(width-2, 16))
	}
	head := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(title)
	foot := p.Faint("esc / x: close   click outside: close")
	return style.Render(head + "\n\n" + content + "\n\n" + foot)
}

// Wrap wraps text to width cells, breaking on spaces and splitting words
// that do not fit. A non-positive width returns text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// Bullets renders each item on its own line with a leading marker, wrapped
// so continuation lines align under the text.
func (p Palette) Bullets(items []string, width int) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		body := Wrap(it, width-2)
		body = strings.ReplaceAll(body, "\n", "\n  ")
		lines = append(lines, p.Highlight("•")+" "+p.Text(body))
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to at most n cells, ending with an ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	return ansi.Truncate(s, n, "…")
}
