package models

// AchievementID identifies one entry of the fixed achievement catalog.
type AchievementID string

const (
	AchievementFirstWeek AchievementID = "FIRST_WEEK"
	AchievementStreak7   AchievementID = "STREAK_7"
	AchievementHalfway   AchievementID = "HALFWAY"
	AchievementFinisher  AchievementID = "FINISHER"
)

// Achievement is the display metadata for a catalog entry.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Unlocked    bool          `json:"unlocked"`
}
