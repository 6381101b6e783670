package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/yafb/internal/core"
)

// Scoreboard column widths
const (
	rankWidth  = 6
	nameWidth  = 14
	scoreWidth = 8
)

// ScoreTable renders the high-score table for printing outside the game.
// Every rank up to capacity gets a row; empty ranks show dashes.
func ScoreTable(entries []core.ScoreEntry, capacity int, source string) string {
	if capacity < len(entries) {
		capacity = len(entries)
	}

	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
	}

	rows := make([]table.Row, capacity)
	for i := range rows {
		if i < len(entries) {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				entries[i].Name,
				fmt.Sprintf("%d", entries[i].Score),
			}
			continue
		}
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), "-", "-"}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(capacity+3), // Header and its border
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	footStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(t.View()))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(footStyle.Render("No scores recorded yet."))
		b.WriteString("\n")
	}
	if source != "" {
		b.WriteString(footStyle.Render(source))
		b.WriteString("\n")
	}
	return b.String()
}
