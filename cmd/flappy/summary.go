package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const summaryRuns = 10 // Runs listed in the summary

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	summaryDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	summaryHead  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	summaryCell  = lipgloss.NewStyle().Padding(0, 1)
)

// printSummary writes the session's best runs and totals as a table.
func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if stats.Runs == 0 {
		fmt.Fprintln(w, summaryDim.Render("No runs finished this session."))
		return nil
	}

	runs, err := store.TopRuns(summaryRuns)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return summaryHead
			}
			return summaryCell
		}).
		Headers("Rank", "Score", "Ticks", "Cause", "Time")

	for i, r := range runs {
		t.Row(
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.Duration().Round(100*time.Millisecond).String(),
		)
	}

	fmt.Fprintln(w, summaryTitle.Render("Session summary"))
	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, summaryDim.Render(fmt.Sprintf("%d runs  best %d  avg %.1f  %d ticks",
		stats.Runs, stats.Best, stats.Average, stats.TotalTicks)))
	return nil
}
