package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/funclicker/internal/core"
)

// colorStyles maps semantic colors to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	core.ColorTile: lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("57")).
		Bold(true),
	core.ColorNext: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("42")).
		Bold(true),
	core.ColorTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	core.ColorScore:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorOK:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	core.ColorWarn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorDanger: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
