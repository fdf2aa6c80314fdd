package tui

import "github.com/charmbracelet/lipgloss"

var accents = map[string]lipgloss.Color{
	"purple": lipgloss.Color("99"),
	"blue":   lipgloss.Color("33"),
	"green":  lipgloss.Color("42"),
	"orange": lipgloss.Color("208"),
	"pink":   lipgloss.Color("205"),
	"red":    lipgloss.Color("196"),
}

// AccentNames lists the accent colors the settings form offers.
func AccentNames() []string {
	return []string{"purple", "blue", "green", "orange", "pink", "red"}
}

func accentColor(name string) lipgloss.Color {
	if c, ok := accents[name]; ok {
		return c
	}
	return accents["purple"]
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Width(50).
			Align(lipgloss.Center)

	celebrateStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Padding(1, 4).
			Width(56).
			Align(lipgloss.Center)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// headerStyle colors the tracker header with the chosen accent. The light
// theme uses a dark foreground for body text.
func headerStyle(accent, theme string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Foreground(accentColor(accent))
	if theme == "light" {
		s = s.Background(lipgloss.Color("255"))
	}
	return s
}
