// Package board renders the dashboard pieces: stat tiles, the cumulative
// progress chart, the achievement catalog and the leaderboard.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/progress"
	"github.com/julianstephens/thirtyday/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Align(lipgloss.Center)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	youStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func tile(label, value string) string {
	return tileStyle.Render(valueStyle.Render(value) + "\n" + labelStyle.Render(label))
}

// Stats renders the dashboard stat tiles.
func Stats(tr *i18n.Translator, s progress.Stats) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tile(tr.T(i18n.MsgLongestStreak), fmt.Sprintf("%d", s.Longest)),
		tile(tr.T(i18n.MsgSuccessRate), fmt.Sprintf("%.0f%%", s.SuccessRate)),
		tile(tr.T(i18n.MsgDaysFailed), fmt.Sprintf("%d", s.DaysFailed)),
	)
}

// ProgressBar renders succeeded out of the challenge length in width cells.
func ProgressBar(succeeded, width int) string {
	if width < 10 {
		width = 10
	}
	filled := succeeded * width / constants.ChallengeDays
	if filled > width {
		filled = width
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) + labelStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d/%d", bar, succeeded, constants.ChallengeDays)
}

// Chart draws the cumulative success count per elapsed day as vertical
// bars, one column per day. Failed days are marked under the axis.
func Chart(series []progress.SeriesPoint, height int) string {
	if len(series) == 0 {
		return labelStyle.Render("—")
	}
	if height < 3 {
		height = 3
	}
	peak := 0
	for _, p := range series {
		if p.Cumulative > peak {
			peak = p.Cumulative
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for _, p := range series {
			if p.Cumulative*height >= row*peak && p.Cumulative > 0 {
				b.WriteString(barStyle.Render("▇"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	for _, p := range series {
		if p.Status == models.StatusFailure {
			b.WriteString(failStyle.Render("x"))
		} else {
			b.WriteString(labelStyle.Render("─"))
		}
	}
	return b.String()
}

// Achievements lists the catalog, dimming locked entries.
func Achievements(tr *i18n.Translator, catalog []models.Achievement) string {
	lines := []string{titleStyle.Render(tr.T(i18n.MsgAchievements))}
	for _, a := range catalog {
		line := fmt.Sprintf("%s  %s  %s", a.Icon, tr.T(a.Title), labelStyle.Render(tr.T(a.Description)))
		if !a.Unlocked {
			line = lockedStyle.Render(fmt.Sprintf("🔒  %s  %s", tr.T(a.Title), tr.T(a.Description)))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Leaderboard renders ranked entries with medals for the top three.
func Leaderboard(tr *i18n.Translator, entries []tracker.BoardEntry, err error) string {
	lines := []string{titleStyle.Render(tr.T(i18n.MsgLeaderboard))}
	switch {
	case err != nil:
		lines = append(lines, failStyle.Render(err.Error()))
	case len(entries) == 0:
		lines = append(lines, labelStyle.Render(tr.T(i18n.MsgNoEntries)))
	}
	for _, e := range entries {
		line := fmt.Sprintf("%-4s %-24s %3d", e.Label, e.Name, e.Streak)
		if e.You {
			line = youStyle.Render(line + " ← " + tr.T(i18n.MsgYou))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
