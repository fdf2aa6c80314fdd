package progress

import (
	"sort"

	"github.com/julianstephens/thirtyday/internal/models"
)

// CurrentStreak counts consecutive successes walking back from today. It is 0
// when today itself is not a success.
func CurrentStreak(checked map[int]bool, today int) int {
	today = ClampToday(today)
	streak := 0
	for day := today; day >= 1; day-- {
		if Status(day, checked[day], today) != models.StatusSuccess {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive successes among days
// 1..today. Days after today are pending and never count.
func LongestStreak(checked map[int]bool, today int) int {
	today = ClampToday(today)
	if today == 0 {
		return 0
	}
	days := make([]int, 0, len(checked))
	for day, ok := range checked {
		if ok && day >= 1 && day <= today {
			days = append(days, day)
		}
	}
	return LongestRun(days)
}

// LongestRun returns the size of the largest group of consecutive integers in
// days. Duplicates are ignored. Consecutive days share the same day-minus-rank
// value once sorted, so each island is one group.
func LongestRun(days []int) int {
	if len(days) == 0 {
		return 0
	}
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)

	best, run := 0, 0
	rank := 0
	prevKey, prevDay := 0, 0
	for i, day := range sorted {
		if i > 0 && day == prevDay {
			continue
		}
		key := day - rank
		if rank == 0 || key != prevKey {
			run = 0
		}
		run++
		if run > best {
			best = run
		}
		prevKey, prevDay = key, day
		rank++
	}
	return best
}

// Streaks computes both figures at once.
func Streaks(checked map[int]bool, today int) models.StreakState {
	return models.StreakState{
		Current: CurrentStreak(checked, today),
		Longest: LongestStreak(checked, today),
	}
}
