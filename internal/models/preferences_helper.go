package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/thirtyday/internal/constants"
)

// MapToPreferences converts a map of key-value pairs to a Preferences struct.
// Unknown keys are rejected.
func MapToPreferences(data map[string]string) (Preferences, error) {
	prefs := Preferences{}

	for key, value := range data {
		switch key {
		case constants.SettingTheme:
			prefs.Theme = value
		case constants.SettingAccent:
			prefs.Accent = value
		case constants.SettingLanguage:
			prefs.Language = value
		case constants.SettingReminderTime:
			prefs.ReminderTime = value
		case constants.SettingNotificationsEnabled:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing notifications_enabled: %w", err)
			}
			prefs.NotificationsEnabled = b
		case constants.SettingTimezone:
			prefs.Timezone = value
		case constants.SettingChallengeMonth:
			if _, err := fmt.Sscanf(value, "%d", &prefs.ChallengeMonth); err != nil {
				return Preferences{}, fmt.Errorf("parsing challenge_month: %w", err)
			}
		case constants.SettingPreviewMode:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing preview_mode: %w", err)
			}
			prefs.PreviewMode = b
		default:
			return Preferences{}, fmt.Errorf("unknown setting %q", key)
		}
	}
	return prefs, nil
}

// PreferencesToMap converts a Preferences struct to a map of key-value pairs.
func PreferencesToMap(prefs Preferences) map[string]string {
	return map[string]string{
		constants.SettingTheme:                prefs.Theme,
		constants.SettingAccent:               prefs.Accent,
		constants.SettingLanguage:             prefs.Language,
		constants.SettingReminderTime:         prefs.ReminderTime,
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", prefs.NotificationsEnabled),
		constants.SettingTimezone:             prefs.Timezone,
		constants.SettingChallengeMonth:       fmt.Sprintf("%d", prefs.ChallengeMonth),
		constants.SettingPreviewMode:          fmt.Sprintf("%v", prefs.PreviewMode),
	}
}

// MergePreferences overlays the keys present in data onto prefs.
func MergePreferences(prefs Preferences, data map[string]string) (Preferences, error) {
	current := PreferencesToMap(prefs)
	for k, v := range data {
		if _, ok := current[k]; !ok {
			return prefs, fmt.Errorf("unknown setting %q", k)
		}
		current[k] = v
	}
	return MapToPreferences(current)
}

// ApplyDefaultPreferences applies default values to missing preferences.
func ApplyDefaultPreferences(prefs *Preferences) {
	if prefs.Theme == "" {
		prefs.Theme = constants.DefaultTheme
	}
	if prefs.Accent == "" {
		prefs.Accent = constants.DefaultAccent
	}
	if prefs.Language == "" {
		prefs.Language = constants.DefaultLanguage
	}
	if prefs.ReminderTime == "" {
		prefs.ReminderTime = constants.DefaultReminderTime
	}
	if prefs.Timezone == "" {
		prefs.Timezone = constants.DefaultTimezone
	}
	if prefs.ChallengeMonth < 1 || prefs.ChallengeMonth > 12 {
		prefs.ChallengeMonth = int(constants.DefaultChallengeMonth)
	}
}

// DefaultPreferences returns a Preferences value with every default applied.
func DefaultPreferences() Preferences {
	prefs := Preferences{NotificationsEnabled: constants.DefaultNotificationsEnabled}
	ApplyDefaultPreferences(&prefs)
	return prefs
}
