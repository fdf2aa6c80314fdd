package constants

const (
	// Preference keys
	SettingTheme                = "theme"
	SettingAccent               = "accent"
	SettingLanguage             = "language"
	SettingReminderTime         = "reminder_time"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingTimezone             = "timezone"
	SettingChallengeMonth       = "challenge_month"
	SettingPreviewMode          = "preview_mode"

	// Default preference values
	DefaultTheme                = "dark"
	DefaultAccent               = "purple"
	DefaultLanguage             = "en"
	DefaultReminderTime         = "08:00"
	DefaultNotificationsEnabled = false
	DefaultTimezone             = "Local" // Use system local timezone by default

	// Local key-value store keys
	KeyUser         = "user"
	KeyDays         = "days"
	KeyJournal      = "journal"
	KeyAchievements = "achievements"
	KeyCooldown     = "cooldown"
	KeyPreferences  = "preferences"
	KeyUnsynced     = "unsynced_unchecks"
)
