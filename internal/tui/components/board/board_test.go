package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/thirtyday/internal/achievements"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/progress"
	"github.com/julianstephens/thirtyday/internal/tracker"
)

func TestProgressBar(t *testing.T) {
	got := ProgressBar(15, 30)
	if strings.Count(got, "█") != 15 || strings.Count(got, "░") != 15 || !strings.HasSuffix(got, "15/30") {
		t.Errorf("ProgressBar(15, 30) = %q", got)
	}
	if got := ProgressBar(30, 10); strings.Count(got, "█") != 10 {
		t.Errorf("ProgressBar(30, 10) = %q", got)
	}
}

func TestChart(t *testing.T) {
	series := progress.Series(map[int]bool{1: true, 2: true, 4: true}, 4)
	chart := Chart(series, 3)
	lines := strings.Split(chart, "\n")
	if len(lines) != 4 {
		t.Fatalf("chart has %d lines, want 4:\n%s", len(lines), chart)
	}
	if !strings.Contains(lines[3], "x") {
		t.Errorf("failed day not marked: %q", lines[3])
	}
	if Chart(nil, 3) == "" {
		t.Error("empty chart should render a placeholder")
	}
}

func TestLeaderboard(t *testing.T) {
	tr := i18n.New("en")
	entries := []tracker.BoardEntry{
		{LeaderboardEntry: models.LeaderboardEntry{Name: "An", Streak: 12}, Position: 1, Label: "🥇"},
		{LeaderboardEntry: models.LeaderboardEntry{Name: "Binh", Streak: 9}, Position: 2, Label: "🥈", You: true},
	}
	view := Leaderboard(tr, entries, nil)
	for _, want := range []string{"🥇", "An", "Binh", "← you"} {
		if !strings.Contains(view, want) {
			t.Errorf("leaderboard missing %q:\n%s", want, view)
		}
	}

	if view := Leaderboard(tr, nil, nil); !strings.Contains(view, i18n.MsgNoEntries) {
		t.Errorf("empty board = %q", view)
	}
	if view := Leaderboard(tr, nil, errors.New("Server unreachable")); !strings.Contains(view, "Server unreachable") {
		t.Errorf("error board = %q", view)
	}
}

func TestAchievements(t *testing.T) {
	view := Achievements(i18n.New("en"), achievements.Catalog([]models.AchievementID{models.AchievementFirstWeek}))
	if !strings.Contains(view, "🚀") || strings.Count(view, "🔒") != 3 {
		t.Errorf("achievements view:\n%s", view)
	}
}
