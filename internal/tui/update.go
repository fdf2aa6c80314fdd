package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/thirtyday/internal/calendar"
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/cooldown"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/tracker"
	"github.com/julianstephens/thirtyday/internal/tui/components/countdown"
	"github.com/julianstephens/thirtyday/internal/tui/components/settings"
	"github.com/julianstephens/thirtyday/internal/validation"
)

type toggledMsg struct {
	res tracker.ToggleResult
	err error
}

type boardMsg struct {
	entries []tracker.BoardEntry
	err     error
}

type journalSavedMsg struct {
	day     int
	syncErr error
	err     error
}

type registeredMsg struct {
	res tracker.RegisterResult
	err error
}

type syncedMsg struct {
	res tracker.SyncResult
	err error
}

type sharedMsg struct {
	share models.Share
	err   error
}

var tabs = []constants.SessionState{
	constants.StateTracker,
	constants.StateDashboard,
	constants.StateAchievements,
	constants.StateSettings,
}

func (m Model) toggle(day int) tea.Cmd {
	t, now := m.tracker, m.clock.Time
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		res, err := t.Toggle(ctx, day, now)
		return toggledMsg{res: res, err: err}
	}
}

func (m Model) fetchBoard() tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		entries, err := t.Leaderboard(ctx)
		return boardMsg{entries: entries, err: err}
	}
}

func (m Model) saveJournal(day int, text string) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		syncErr, err := t.SaveJournal(ctx, day, text)
		return journalSavedMsg{day: day, syncErr: syncErr, err: err}
	}
}

func (m Model) register(name string) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		res, err := t.Register(ctx, name)
		return registeredMsg{res: res, err: err}
	}
}

func (m Model) sync() tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		res, err := t.Sync(ctx)
		return syncedMsg{res: res, err: err}
	}
}

func (m Model) share() tea.Cmd {
	t, now := m.tracker, m.clock.Time
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		share, err := t.Share(ctx, now, nil)
		return sharedMsg{share: share, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.settingsModel.SetSize(msg.Width, msg.Height-4)
		m.clock.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case countdown.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		m.refresh()
		return m, cmd

	case toggledMsg:
		return m.handleToggled(msg)

	case boardMsg:
		m.board, m.boardErr = msg.entries, msg.err
		return m, nil

	case journalSavedMsg:
		m.refresh()
		switch {
		case msg.err != nil:
			m.setFlash(msg.err.Error(), true)
		case msg.syncErr != nil:
			m.setFlash(m.tr.T(i18n.MsgSyncFailed, apperrors.PublicMessage(msg.syncErr)), true)
		default:
			m.setFlash(m.tr.T(i18n.MsgJournalFor, msg.day)+" ✓", false)
		}
		return m, nil

	case registeredMsg:
		if msg.err != nil {
			m.setFlash(msg.err.Error(), true)
			m.openRegisterForm()
			return m, m.form.Init()
		}
		m.refresh()
		m.celebrate(msg.res.NewlyUnlocked)
		if msg.res.SyncErr != nil {
			m.setFlash(m.tr.T(i18n.MsgSyncFailed, apperrors.PublicMessage(msg.res.SyncErr)), true)
			return m, nil
		}
		notes := append([]string{m.tr.T(i18n.MsgTagline, msg.res.Name)}, m.toasts(msg.res.NewlyUnlocked)...)
		m.setFlash(strings.Join(notes, "  "), false)
		return m, m.fetchBoard()

	case syncedMsg:
		m.refresh()
		m.celebrate(msg.res.NewlyUnlocked)
		if msg.err != nil {
			m.setFlash(m.tr.T(i18n.MsgSyncFailed, apperrors.PublicMessage(msg.err)), true)
			return m, nil
		}
		if notes := m.toasts(msg.res.NewlyUnlocked); len(notes) > 0 {
			m.setFlash(strings.Join(notes, "  "), false)
		}
		return m, m.fetchBoard()

	case sharedMsg:
		if msg.err != nil {
			m.setFlash(apperrors.PublicMessage(msg.err), true)
			return m, nil
		}
		m.shareURL = msg.share.URL
		m.setFlash(m.tr.T(i18n.MsgShareCreated, msg.share.URL), false)
		return m, nil

	case settings.EditSettingsMsg:
		m.openSettingsForm()
		return m, m.form.Init()
	}

	switch m.state {
	case constants.StateJournal, constants.StateRegister, constants.StateEditSettings:
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleToggled(msg toggledMsg) (tea.Model, tea.Cmd) {
	m.refresh()
	if msg.err != nil {
		if errors.Is(msg.err, cooldown.ErrActive) {
			m.setFlash(m.tr.T(i18n.MsgCooldownBody), true)
		} else {
			m.setFlash(apperrors.PublicMessage(msg.err), true)
		}
		return m, nil
	}

	res := msg.res
	var notes []string
	if res.Relapse {
		notes = append(notes, m.tr.T(i18n.MsgCooldownTitle))
	}
	notes = append(notes, m.toasts(res.NewlyUnlocked)...)
	isErr := res.Relapse
	if res.SyncErr != nil {
		notes = append(notes, m.tr.T(i18n.MsgSyncFailed, apperrors.PublicMessage(res.SyncErr)))
		isErr = true
	}
	m.setFlash(strings.Join(notes, "  "), isErr)

	if res.Quote != "" {
		m.quote = res.Quote
		m.openModal(constants.StateQuote)
	}
	m.celebrate(res.NewlyUnlocked)
	if res.SyncErr == nil && m.snap.Registered {
		return m, m.fetchBoard()
	}
	return m, nil
}

func (m Model) toasts(unlocked []models.Achievement) []string {
	notes := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		notes = append(notes, m.tr.T(i18n.MsgAchievementToast, a.Icon, m.tr.T(a.Title)))
	}
	return notes
}

// celebrate opens the finisher banner when the last achievement was just
// unlocked.
func (m *Model) celebrate(unlocked []models.Achievement) {
	if m.form != nil {
		return
	}
	for _, a := range unlocked {
		if a.ID == models.AchievementFinisher {
			m.openModal(constants.StateCelebrate)
			return
		}
	}
}

// openModal shows a dismissable overlay, remembering the view underneath.
func (m *Model) openModal(state constants.SessionState) {
	if !isModal(m.state) {
		m.previousState = m.state
	}
	m.state = state
}

func isModal(state constants.SessionState) bool {
	return state == constants.StateQuote || state == constants.StateCelebrate
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.form = nil
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		state := m.state
		m.form = nil
		m.state = m.previousState
		switch state {
		case constants.StateJournal:
			return m, tea.Batch(cmd, m.saveJournal(m.journalForm.Day, m.journalForm.Text))
		case constants.StateRegister:
			return m, tea.Batch(cmd, m.register(m.registerForm.Name))
		case constants.StateEditSettings:
			m.applySettings()
		}
	case huh.StateAborted:
		m.form = nil
		m.state = m.previousState
	}
	return m, cmd
}

// applySettings saves the settings form and rebuilds everything that
// depends on preferences.
func (m *Model) applySettings() {
	f := m.settingsForm
	prefs := m.prefs
	prefs.Theme = f.Theme
	prefs.Accent = f.Accent
	prefs.Language = f.Language
	prefs.ReminderTime = f.ReminderTime
	prefs.NotificationsEnabled = f.NotificationsEnabled
	prefs.Timezone = f.Timezone
	prefs.ChallengeMonth = f.ChallengeMonth
	prefs.PreviewMode = f.PreviewMode

	if err := validation.Preferences(prefs); err != nil {
		m.setFlash(err.Error(), true)
		return
	}
	window, err := calendar.FromPreferences(prefs)
	if err != nil {
		m.setFlash(err.Error(), true)
		return
	}
	if err := tracker.SavePreferences(m.store, prefs); err != nil {
		logger.Error("Failed to save preferences", "error", err)
		m.setFlash(err.Error(), true)
		return
	}

	m.prefs = prefs
	m.tr = i18n.New(prefs.Language)
	m.tracker.SetTranslator(m.tr)
	m.tracker.SetWindow(window)
	m.grid.SetAccent(accentColor(prefs.Accent))
	m.settingsModel.SetPreferences(prefs)
	m.refresh()
	m.setFlash("Settings saved", false)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isModal(m.state) {
		m.state = m.previousState
		m.quote = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = cycle(m.state, 1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = cycle(m.state, -1)
		return m, nil
	}

	switch m.state {
	case constants.StateTracker:
		return m.handleTrackerKey(msg)
	case constants.StateDashboard:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.fetchBoard()
		}
	case constants.StateSettings:
		if key.Matches(msg, m.keys.Register) {
			m.openRegisterForm()
			return m, m.form.Init()
		}
		var cmd tea.Cmd
		m.settingsModel, cmd = m.settingsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleTrackerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Preview) && (!m.snap.Running || m.snap.Preview) {
		m.tracker.SetPreview(!m.snap.Preview)
		m.refresh()
		if m.snap.Today > 0 {
			m.grid.Select(m.snap.Today)
		}
		if m.snap.Preview {
			m.setFlash(m.tr.T(i18n.MsgPreviewNotice), false)
		} else {
			m.setFlash("", false)
		}
		return m, nil
	}
	if !m.snap.Running {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.grid.Move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.grid.Move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.grid.Move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.grid.Move(1, 0)
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggle(m.grid.Selected())
	case key.Matches(msg, m.keys.Enter):
		day := m.grid.Selected()
		if m.snap.Checked[day] {
			m.openJournalForm(day)
			return m, m.form.Init()
		}
		return m, m.toggle(day)
	case key.Matches(msg, m.keys.Journal):
		m.openJournalForm(m.grid.Selected())
		if m.form != nil {
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Share):
		return m, m.share()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.sync()
	}
	return m, nil
}

// cycle moves through the tab states, leaving non-tab states unchanged.
func cycle(state constants.SessionState, step int) constants.SessionState {
	for i, s := range tabs {
		if s == state {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return state
}
