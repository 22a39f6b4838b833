package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/funclicker/internal/storage"
)

const maxHistory = 100 // Max results to load

// historyView shows the results of this session in a table.
type historyView struct {
	table   table.Model
	results []storage.Result
	stats   storage.Stats
	width   int
	height  int
}

func newHistoryView(width, height int) historyView {
	h := historyView{width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table with appropriate columns.
func (h *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Rounds", Width: 7},
		{Title: "Avg", Width: 6},
		{Title: "Rating", Width: 17},
		{Title: "Time", Width: 9},
	}

	height := h.height - 8 // Title, stats, border and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the table from the store. A nil store shows no history.
func (h *historyView) load(store *storage.Store) error {
	h.results, h.stats = nil, storage.Stats{}
	defer h.updateRows()

	if store == nil {
		return nil
	}

	results, err := store.Recent(maxHistory)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	h.results, h.stats = results, stats
	return nil
}

func (h *historyView) updateRows() {
	rows := make([]table.Row, len(h.results))
	n := len(h.results)
	for i, r := range h.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", n-i),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Rounds),
			fmt.Sprintf("%.1f", r.AvgPerRound),
			Rating(r.Score),
			r.PlayedAt.Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h *historyView) resize(width, height int) {
	h.width, h.height = width, height
	h.table = h.createTable()
	h.updateRows()
}

// View renders the history screen without the help line.
func (h historyView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION HISTORY", h.width)))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	avg := 0.0
	if h.stats.Games > 0 {
		avg = h.stats.AvgScore
	}
	stats := fmt.Sprintf("Games %d  |  Best %d  |  Avg score %.1f  |  Rounds played %d",
		h.stats.Games, h.stats.Best, avg, h.stats.TotalRounds)
	b.WriteString(statsStyle.Render(centerText(stats, h.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(h.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No games finished yet.\nPlay a round to fill the history!")
	} else {
		content = h.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(h.width, lipgloss.Center, tableStyle.Render(content)))

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textLen := lipgloss.Width(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}
