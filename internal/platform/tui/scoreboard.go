package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkamenev/torsnake/internal/scores"
)

// BoardKeyMap defines the key bindings shown on the leaderboard screen.
type BoardKeyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Quit}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r", "R", "enter"),
			key.WithHelp("r/enter", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var emptyBoardStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true)

// renderBoard renders the leaderboard as a table. Width is only used to
// keep the table from exceeding the terminal.
func renderBoard(entries []scores.Entry, width int) string {
	if len(entries) == 0 {
		return emptyBoardStyle.Render("No scores yet. Be the first!")
	}

	nameWidth := scores.MaxNameLen
	if width > 0 && nameWidth > width-16 {
		nameWidth = width - 16
	}
	if nameWidth < 4 {
		nameWidth = 4
	}

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: 7},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return t.View()
}
