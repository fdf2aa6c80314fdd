package settings

import (
	"fmt"
	"sort"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/tracker"
	"github.com/julianstephens/thirtyday/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme                *string `help:"Color theme (dark or light)."`
	Accent               *string `help:"Accent color name."`
	Language             *string `help:"Interface language (en or vi)."`
	ReminderTime         *string `help:"Daily reminder time (HH:MM)."`
	NotificationsEnabled *bool   `help:"Enable or disable the daily reminder."`
	Timezone             *string `help:"IANA timezone used for challenge days."`
	ChallengeMonth       *int    `help:"Month the challenge runs in (1-12)."`
	PreviewMode          *bool   `help:"Pretend the challenge is running."`
}

// changes collects the flags that were set, keyed by setting name.
func (c *SettingsCmd) changes() map[string]string {
	out := map[string]string{}
	str := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	str(constants.SettingTheme, c.Theme)
	str(constants.SettingAccent, c.Accent)
	str(constants.SettingLanguage, c.Language)
	str(constants.SettingReminderTime, c.ReminderTime)
	str(constants.SettingTimezone, c.Timezone)
	if c.NotificationsEnabled != nil {
		out[constants.SettingNotificationsEnabled] = fmt.Sprintf("%v", *c.NotificationsEnabled)
	}
	if c.ChallengeMonth != nil {
		out[constants.SettingChallengeMonth] = fmt.Sprintf("%d", *c.ChallengeMonth)
	}
	if c.PreviewMode != nil {
		out[constants.SettingPreviewMode] = fmt.Sprintf("%v", *c.PreviewMode)
	}
	return out
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		list(ctx, prefs)
		return nil
	}

	changes := c.changes()
	if len(changes) == 0 {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	updated, err := models.MergePreferences(prefs, changes)
	if err != nil {
		return err
	}
	if !i18n.Supported(updated.Language) {
		return fmt.Errorf("unsupported language %q (available: %v)", updated.Language, i18n.Languages())
	}
	if err := validation.Preferences(updated); err != nil {
		return err
	}
	if err := tracker.SavePreferences(ctx.KV, updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}

func list(ctx *cli.Context, prefs models.Preferences) {
	values := models.PreferencesToMap(prefs)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx.Println("Current Settings:")
	for _, k := range keys {
		ctx.Printf("  %-22s %s\n", k+":", values[k])
	}
}
