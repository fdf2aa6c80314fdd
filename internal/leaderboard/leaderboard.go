// Package leaderboard orders and labels longest-streak entries.
package leaderboard

import (
	"fmt"
	"sort"

	"github.com/julianstephens/thirtyday/internal/models"
)

// Rank returns a copy of entries sorted by streak descending, then name
// ascending (byte order). Entries with equal keys keep their input order.
func Rank(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	out := append([]models.LeaderboardEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Streak != out[j].Streak {
			return out[i].Streak > out[j].Streak
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Top drops zero streaks, ranks what remains and keeps the first n. n <= 0
// keeps everything.
func Top(entries []models.LeaderboardEntry, n int) []models.LeaderboardEntry {
	nonZero := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.Streak > 0 {
			nonZero = append(nonZero, e)
		}
	}
	ranked := Rank(nonZero)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Label returns the display badge for a 1-based position.
func Label(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", position)
	}
}

// Position returns the 1-based position of name in ranked, or 0.
func Position(ranked []models.LeaderboardEntry, name string) int {
	for i, e := range ranked {
		if e.Name == name {
			return i + 1
		}
	}
	return 0
}
