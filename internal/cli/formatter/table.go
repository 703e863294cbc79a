package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Columns are padded to their widest cell, measured in visible cells so
// styled text lines up. When maxWidth is positive the last column is
// truncated to keep every row within it.
func (p Palette) RenderTable(headers []string, rows [][]string, maxWidth int) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)
	last := len(widths) - 1
	if maxWidth > 0 {
		used := colGap * last
		for _, w := range widths[:last] {
			used += w
		}
		widths[last] = max(min(widths[last], maxWidth-used), 4)
	}

	var b strings.Builder
	head := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = head.Render(h)
	}
	writeRow(&b, cells, widths)

	for i, w := range widths {
		cells[i] = p.Faint(strings.Repeat("─", w))
	}
	writeRow(&b, cells, widths)

	for _, row := range rows {
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		cells[last] = Truncate(cells[last], widths[last])
		writeRow(&b, cells, widths)
	}
	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		b.WriteString(cell)
		if i < len(cells)-1 {
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}
