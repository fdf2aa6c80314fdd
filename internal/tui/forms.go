package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/utils"
	"github.com/julianstephens/thirtyday/internal/validation"
)

func (m *Model) openJournalForm(day int) {
	text, err := m.tracker.Journal(day)
	if err != nil {
		m.setFlash(err.Error(), true)
		return
	}
	m.journalForm = &JournalFormModel{Day: day, Text: text}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(m.tr.T(i18n.MsgJournalFor, day)).
				Description(m.tr.T(i18n.MsgJournalPrompt)).
				CharLimit(constants.MaxJournalLength).
				Value(&m.journalForm.Text),
		),
	)
	m.previousState = m.state
	m.state = constants.StateJournal
}

func (m *Model) openRegisterForm() {
	m.registerForm = &RegisterFormModel{Name: m.snap.User.Name}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(m.tr.T(i18n.MsgAppName)).
				Description(m.tr.T(i18n.MsgWelcome)).
				CharLimit(constants.MaxNameLength).
				Value(&m.registerForm.Name).
				Validate(func(s string) error {
					_, err := validation.Name(s)
					return err
				}),
		),
	)
	m.previousState = m.state
	m.state = constants.StateRegister
}

func (m *Model) openSettingsForm() {
	p := m.prefs
	m.settingsForm = &SettingsFormModel{
		Theme:                p.Theme,
		Accent:               p.Accent,
		Language:             p.Language,
		ReminderTime:         p.ReminderTime,
		NotificationsEnabled: p.NotificationsEnabled,
		Timezone:             p.Timezone,
		ChallengeMonth:       p.ChallengeMonth,
		PreviewMode:          p.PreviewMode,
	}

	months := make([]huh.Option[int], 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		months = append(months, huh.NewOption(mo.String(), int(mo)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions("dark", "light")...).
				Value(&m.settingsForm.Theme),
			huh.NewSelect[string]().
				Title("Accent").
				Options(huh.NewOptions(AccentNames()...)...).
				Value(&m.settingsForm.Accent),
			huh.NewSelect[string]().
				Title("Language").
				Options(huh.NewOptions(i18n.Languages()...)...).
				Value(&m.settingsForm.Language),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Challenge month").
				Options(months...).
				Value(&m.settingsForm.ChallengeMonth),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name, or Local").
				Value(&m.settingsForm.Timezone).
				Validate(func(s string) error {
					if !utils.ValidateTimezone(s) {
						return fmt.Errorf("unknown timezone %q", s)
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Preview mode").
				Value(&m.settingsForm.PreviewMode),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Daily reminder").
				Value(&m.settingsForm.NotificationsEnabled),
			huh.NewInput().
				Title("Reminder time (HH:MM)").
				Value(&m.settingsForm.ReminderTime).
				Validate(validation.ReminderTime),
		),
	)
	m.previousState = constants.StateSettings
	m.state = constants.StateEditSettings
}
