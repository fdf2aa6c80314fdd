package models

// LeaderboardEntry is a read-only projection of a user's longest streak.
type LeaderboardEntry struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}
