package models

// Preferences are per-device client options kept in the local store.
type Preferences struct {
	Theme                string `json:"theme"`                 // "dark" or "light"
	Accent               string `json:"accent"`                // accent color name, e.g. "purple"
	Language             string `json:"language"`              // BCP 47 tag, "en" or "vi"
	ReminderTime         string `json:"reminder_time"`         // daily reminder, e.g. "08:00"
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether the reminder daemon notifies
	Timezone             string `json:"timezone"`              // IANA timezone name or "Local"
	ChallengeMonth       int    `json:"challenge_month"`       // 1..12, the month the challenge runs in
	PreviewMode          bool   `json:"preview_mode"`          // pretend the challenge is running (day 15)
}
