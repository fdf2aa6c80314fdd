package settings

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/thirtyday/internal/models"
)

type EditSettingsMsg struct{}

type Model struct {
	prefs  models.Preferences
	user   string
	width  int
	height int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(25)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

func New(prefs models.Preferences, width, height int) Model {
	return Model{prefs: prefs, width: width, height: height}
}

func (m *Model) SetPreferences(prefs models.Preferences) {
	m.prefs = prefs
}

// SetUser sets the name shown in the account section. Empty means
// unregistered.
func (m *Model) SetUser(name string) {
	m.user = name
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "e" {
		return m, func() tea.Msg { return EditSettingsMsg{} }
	}
	return m, nil
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(value))
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	user := m.user
	if user == "" {
		user = "-"
	}

	var sections []string

	sections = append(sections, sectionStyle.Render(titleStyle.Render("Account")+"\n"+lipgloss.JoinVertical(
		lipgloss.Left,
		row("Name:", user),
		row("Language:", m.prefs.Language),
	)))

	sections = append(sections, sectionStyle.Render(titleStyle.Render("Appearance")+"\n"+lipgloss.JoinVertical(
		lipgloss.Left,
		row("Theme:", m.prefs.Theme),
		row("Accent:", m.prefs.Accent),
	)))

	sections = append(sections, sectionStyle.Render(titleStyle.Render("Challenge")+"\n"+lipgloss.JoinVertical(
		lipgloss.Left,
		row("Month:", time.Month(m.prefs.ChallengeMonth).String()),
		row("Timezone:", m.prefs.Timezone),
		row("Preview mode:", fmt.Sprintf("%t", m.prefs.PreviewMode)),
	)))

	sections = append(sections, sectionStyle.Render(titleStyle.Render("Reminders")+"\n"+lipgloss.JoinVertical(
		lipgloss.Left,
		row("Enabled:", fmt.Sprintf("%t", m.prefs.NotificationsEnabled)),
		row("Time:", m.prefs.ReminderTime),
	)))

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(2).
		Render("Press 'e' to edit settings")
	sections = append(sections, helpText)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(2, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
