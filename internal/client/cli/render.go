package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// renderTable prints a plain column-aligned table with a bold header row.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(pad(h, widths[i]))
	}
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(b.String(), " ")))

	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(pad(cell, widths[i]))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func pad(s string, width int) string {
	if len(s) < width {
		s += strings.Repeat(" ", width-len(s))
	}
	return s + "  "
}

// renderCards prints labeled counters side by side, overview-style.
func renderCards(w io.Writer, cards [][2]string) {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := lipgloss.JoinVertical(lipgloss.Left, dimStyle.Render(c[0]), headerStyle.Render(c[1]))
		rendered = append(rendered, cardStyle.Render(body))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// truncate shortens long free text for table cells.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
