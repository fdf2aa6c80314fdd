package tracker

import (
	"github.com/julianstephens/thirtyday/internal/leaderboard"
	"github.com/julianstephens/thirtyday/internal/models"
)

func rankForDisplay(entries []models.LeaderboardEntry, you string) []BoardEntry {
	ranked := leaderboard.Rank(entries)
	out := make([]BoardEntry, 0, len(ranked))
	for i, e := range ranked {
		out = append(out, BoardEntry{
			LeaderboardEntry: e,
			Position:         i + 1,
			Label:            leaderboard.Label(i + 1),
			You:              you != "" && e.Name == you,
		})
	}
	return out
}
