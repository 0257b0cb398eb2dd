package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const maxRuns = 100 // Runs loaded into the table

// runsView lists the runs finished in this session.
type runsView struct {
	store  *storage.Store
	runs   []storage.Run
	stats  storage.Stats
	table  table.Model
	width  int
	height int
}

func newRunsView(store *storage.Store, width, height int) runsView {
	v := runsView{store: store, width: width, height: height}
	v.table = v.createTable()
	return v
}

// createTable creates the runs table sized to the view.
func (v *runsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Best", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Cause", Width: 8},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-8, 3)),
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

// refresh reloads runs and stats from the store.
func (v *runsView) refresh() {
	v.runs, v.stats = nil, storage.Stats{}
	if v.store != nil {
		if runs, err := v.store.RecentRuns(maxRuns); err == nil {
			v.runs = runs
		}
		if stats, err := v.store.Stats(); err == nil {
			v.stats = stats
		}
	}

	rows := make([]table.Row, len(v.runs))
	for i, r := range v.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Best),
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.Duration().Round(100 * time.Millisecond).String(),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

func (v runsView) resize(width, height int) runsView {
	v.width, v.height = width, height
	v.table = v.createTable()
	v.refresh()
	return v
}

func (v runsView) Update(msg tea.Msg) (runsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v runsView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("SESSION RUNS"))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(v.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No finished runs yet.")))
	} else {
		b.WriteString(boxStyle.Render(v.table.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d runs  best %d  avg %.1f",
			v.stats.Runs, v.stats.Best, v.stats.Average)))
	}

	return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, b.String())
}
