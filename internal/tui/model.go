// Package tui is the interactive calendar: a day grid with journal, a
// dashboard with the leaderboard, the achievement catalog and settings.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/kv"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/tracker"
	"github.com/julianstephens/thirtyday/internal/tui/components/countdown"
	"github.com/julianstephens/thirtyday/internal/tui/components/grid"
	"github.com/julianstephens/thirtyday/internal/tui/components/settings"
)

const gatewayTimeout = 10 * time.Second

type JournalFormModel struct {
	Day  int
	Text string
}

type RegisterFormModel struct {
	Name string
}

type SettingsFormModel struct {
	Theme                string
	Accent               string
	Language             string
	ReminderTime         string
	NotificationsEnabled bool
	Timezone             string
	ChallengeMonth       int
	PreviewMode          bool
}

type Model struct {
	tracker       *tracker.Tracker
	store         kv.Store
	prefs         models.Preferences
	tr            *i18n.Translator
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	grid          grid.Model
	clock         countdown.Model
	settingsModel settings.Model
	snap          tracker.Snapshot
	board         []tracker.BoardEntry
	boardErr      error
	form          *huh.Form
	journalForm   *JournalFormModel
	registerForm  *RegisterFormModel
	settingsForm  *SettingsFormModel
	quote         string
	flash         string
	flashErr      bool
	shareURL      string
	quitting      bool
	width         int
	height        int
}

type Option func(*Model)

// WithStartTime sets the clock the first frame renders at.
func WithStartTime(now time.Time) Option {
	return func(m *Model) { m.clock = countdown.New(now) }
}

func NewModel(t *tracker.Tracker, store kv.Store, prefs models.Preferences, opts ...Option) Model {
	tr := i18n.New(prefs.Language)
	t.SetTranslator(tr)

	m := Model{
		tracker:       t,
		store:         store,
		prefs:         prefs,
		tr:            tr,
		state:         constants.StateTracker,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		grid:          grid.New(accentColor(prefs.Accent)),
		clock:         countdown.New(time.Now()),
		settingsModel: settings.New(prefs, 0, 0),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.refresh()
	if m.snap.Today > 0 {
		m.grid.Select(m.snap.Today)
	}
	if m.snap.User.Name == "" {
		m.openRegisterForm()
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateTracker:
		keys = append(keys, m.keys.Toggle, m.keys.Journal)
	case constants.StateDashboard:
		keys = append(keys, m.keys.Refresh)
	case constants.StateSettings:
		keys = append(keys, m.keys.Edit, m.keys.Register)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateTracker:
		actions = []key.Binding{m.keys.Toggle, m.keys.Journal, m.keys.Preview, m.keys.Share, m.keys.Refresh}
	case constants.StateDashboard:
		actions = []key.Binding{m.keys.Refresh}
	case constants.StateSettings:
		actions = []key.Binding{m.keys.Edit, m.keys.Register}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.clock.Init(), m.fetchBoard()}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

// refresh re-reads local state as of the current clock tick.
func (m *Model) refresh() {
	snap, err := m.tracker.Snapshot(m.clock.Time)
	if err != nil {
		logger.Error("Failed to read local state", "error", err)
		m.setFlash(err.Error(), true)
		return
	}
	m.snap = snap
	m.grid.SetDays(snap.Statuses, snap.Journal, snap.Today, snap.Cooldown.Active(m.clock.Time))
	m.settingsModel.SetUser(snap.User.Name)
}

func (m *Model) setFlash(text string, isErr bool) {
	m.flash = text
	m.flashErr = isErr
}

// State reports the active view.
func (m Model) State() constants.SessionState {
	return m.state
}
