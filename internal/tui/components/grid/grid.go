// Package grid renders the 30 challenge days as a 6x5 grid with a cursor.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/models"
)

const (
	Columns = 6
	Rows    = constants.ChallengeDays / Columns
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	futureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lockedStyle  = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	cursor   int
	statuses [constants.ChallengeDays]models.DayStatus
	journal  map[int]bool
	today    int
	locked   bool
	accent   lipgloss.Color
}

func New(accent lipgloss.Color) Model {
	return Model{cursor: 1, journal: map[int]bool{}, accent: accent}
}

// SetDays replaces what the grid shows. locked dims the grid while the
// relapse cooldown is active.
func (m *Model) SetDays(statuses [constants.ChallengeDays]models.DayStatus, journal map[int]string, today int, locked bool) {
	m.statuses = statuses
	m.today = today
	m.locked = locked
	m.journal = make(map[int]bool, len(journal))
	for d, text := range journal {
		m.journal[d] = text != ""
	}
}

func (m *Model) SetAccent(accent lipgloss.Color) {
	m.accent = accent
}

// Selected is the day under the cursor.
func (m Model) Selected() int {
	return m.cursor
}

// Select moves the cursor to day, clamped to the challenge.
func (m *Model) Select(day int) {
	m.cursor = clamp(day)
}

// Move shifts the cursor by dx columns and dy rows, stopping at the edges.
func (m *Model) Move(dx, dy int) {
	row := (m.cursor - 1) / Columns
	col := (m.cursor - 1) % Columns
	col += dx
	row += dy
	if col < 0 || col >= Columns || row < 0 || row >= Rows {
		return
	}
	m.cursor = row*Columns + col + 1
}

func clamp(day int) int {
	if day < 1 {
		return 1
	}
	if day > constants.ChallengeDays {
		return constants.ChallengeDays
	}
	return day
}

func (m Model) cell(day int) string {
	status := m.statuses[day-1]
	label := fmt.Sprintf("%d", day)
	var text string
	switch {
	case status == models.StatusSuccess:
		text = successStyle.Render("✓" + label)
	case status == models.StatusFailure:
		text = failureStyle.Render("✕")
	case day > m.today:
		text = futureStyle.Render(label)
	default:
		text = pendingStyle.Render(label)
	}
	if m.journal[day] && status != models.StatusFailure {
		text += "•"
	}

	style := cellStyle
	if day == m.today {
		style = style.BorderForeground(m.accent)
	}
	if day == m.cursor {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("205"))
	}
	if m.locked {
		style = style.Inherit(lockedStyle)
	}
	return style.Render(text)
}

func (m Model) View() string {
	rows := make([]string, 0, Rows)
	for r := 0; r < Rows; r++ {
		cells := make([]string, 0, Columns)
		for c := 0; c < Columns; c++ {
			cells = append(cells, m.cell(r*Columns+c+1))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
