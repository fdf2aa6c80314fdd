// Package countdown drives the once-a-second clock the tracker views render
// their countdowns from.
package countdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/thirtyday/internal/calendar"
	"github.com/julianstephens/thirtyday/internal/cooldown"
	"github.com/julianstephens/thirtyday/internal/i18n"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Align(lipgloss.Center)
)

type TickMsg time.Time

type Model struct {
	Time   time.Time
	width  int
	height int
}

func New(now time.Time) Model {
	return Model{Time: now}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(TickMsg); ok {
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

// Days renders the message key with d split into days, hours, minutes and
// seconds.
func Days(tr *i18n.Translator, key string, d time.Duration) string {
	days, h, m, s := calendar.Countdown(d)
	return tr.T(key, days, h, m, s)
}

// Clock renders the message key with d split into hours, minutes and seconds.
func Clock(tr *i18n.Translator, key string, d time.Duration) string {
	h, m, s := cooldown.Split(d)
	return tr.T(key, h, m, s)
}

// View renders a titled countdown box centered in the component's area.
func (m Model) View(title, body string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		clockStyle.Render(body),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
