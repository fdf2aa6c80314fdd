package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/tui/components/board"
	"github.com/julianstephens/thirtyday/internal/tui/components/countdown"
)

const (
	chartHeight = 8
	barWidth    = 30
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		title := m.tr.T(i18n.MsgAppName)
		switch m.state {
		case constants.StateJournal:
			title = m.tr.T(i18n.MsgJournalFor, m.journalForm.Day)
		case constants.StateRegister:
			title = m.tr.T(i18n.MsgWelcome)
		case constants.StateEditSettings:
			title = m.tr.T(i18n.MsgSettings)
		}
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			headerStyle(m.prefs.Accent, m.prefs.Theme).Render(title),
			"",
			m.form.View(),
			m.flashView(),
		))
	}

	if m.state == constants.StateCelebrate {
		return m.place(m.celebrationView())
	}

	if m.state == constants.StateQuote {
		return m.place(modalStyle.BorderForeground(accentColor(m.prefs.Accent)).Render(m.quote))
	}

	var body string
	switch m.state {
	case constants.StateTracker:
		body = m.trackerView()
	case constants.StateDashboard:
		body = m.dashboardView()
	case constants.StateAchievements:
		body = board.Achievements(m.tr, m.snap.Achievements)
	case constants.StateSettings:
		body = m.settingsModel.View()
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.tabsView(),
		"",
		body,
		m.flashView(),
		m.help.View(m),
	))
}

func (m Model) tabsView() string {
	names := map[constants.SessionState]string{
		constants.StateTracker:      i18n.MsgTracker,
		constants.StateDashboard:    i18n.MsgDashboard,
		constants.StateAchievements: i18n.MsgAchievements,
		constants.StateSettings:     i18n.MsgSettings,
	}
	rendered := make([]string, 0, len(tabs))
	for _, s := range tabs {
		label := m.tr.T(names[s])
		if s == m.state {
			rendered = append(rendered, activeTabStyle.Render(label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) trackerView() string {
	if !m.snap.Running && !m.snap.Preview {
		if m.snap.UntilEnd <= 0 && m.snap.UntilStart <= 0 {
			return m.clock.View(m.tr.T(i18n.MsgAppName), m.tr.T(i18n.MsgChallengeOver))
		}
		return lipgloss.JoinVertical(lipgloss.Center,
			m.clock.View(m.tr.T(i18n.MsgAppName), countdown.Days(m.tr, i18n.MsgStartsIn, m.snap.UntilStart)),
			mutedStyle.Render(m.tr.T(i18n.MsgPreviewHint)),
		)
	}

	name := m.snap.User.Name
	if name == "" {
		name = "-"
	}
	lines := []string{
		headerStyle(m.prefs.Accent, m.prefs.Theme).Render(m.tr.T(i18n.MsgTagline, name)),
		board.ProgressBar(m.snap.Stats.DaysSucceeded, barWidth),
	}
	if m.snap.Preview {
		lines = append(lines, warningStyle.Render(m.tr.T(i18n.MsgPreviewNotice)))
	}
	if m.snap.CooldownRemaining > 0 {
		lines = append(lines, bannerStyle.Render(
			m.tr.T(i18n.MsgCooldownTitle)+"  "+countdown.Clock(m.tr, i18n.MsgCooldownRemaining, m.snap.CooldownRemaining),
		))
	}
	lines = append(lines,
		"",
		m.grid.View(),
		"",
		mutedStyle.Render(countdown.Days(m.tr, i18n.MsgEndsIn, m.snap.UntilEnd)),
	)

	day := m.grid.Selected()
	if text := m.snap.Journal[day]; text != "" {
		lines = append(lines, "", m.tr.T(i18n.MsgJournalFor, day), mutedStyle.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m Model) dashboardView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		board.Stats(m.tr, m.snap.Stats),
		"",
		board.Chart(m.snap.Series, chartHeight),
		"",
		board.Leaderboard(m.tr, m.board, m.boardErr),
	)
}

func (m Model) flashView() string {
	if m.flash == "" {
		return ""
	}
	if m.flashErr {
		return dangerStyle.Render(m.flash)
	}
	return mutedStyle.Render(m.flash)
}

func (m Model) celebrationView() string {
	lines := []string{
		"🏆",
		"",
		m.tr.T(i18n.MsgCelebration),
	}
	if m.quote != "" {
		lines = append(lines, "", mutedStyle.Render(m.quote))
	}
	lines = append(lines, "", mutedStyle.Render(m.tr.T(i18n.MsgDismiss)))
	return celebrateStyle.BorderForeground(accentColor(m.prefs.Accent)).Render(
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

// place centers a modal when the window size is known.
func (m Model) place(modal string) string {
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return modal
}
