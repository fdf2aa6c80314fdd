// Package progress derives day statuses, streaks and aggregate figures from
// the set of checked challenge days.
package progress

import (
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/models"
)

// Status returns the derived status of day given whether it is checked and the
// current challenge day. today <= 0 means the challenge has not started.
func Status(day int, checked bool, today int) models.DayStatus {
	if today <= 0 {
		return models.StatusPending
	}
	if checked {
		return models.StatusSuccess
	}
	if day < today {
		return models.StatusFailure
	}
	return models.StatusPending
}

// Statuses computes the whole grid. Index 0 is day 1.
func Statuses(checked map[int]bool, today int) [constants.ChallengeDays]models.DayStatus {
	var out [constants.ChallengeDays]models.DayStatus
	for day := 1; day <= constants.ChallengeDays; day++ {
		out[day-1] = Status(day, checked[day], today)
	}
	return out
}

// ClampToday bounds today to [0, ChallengeDays].
func ClampToday(today int) int {
	switch {
	case today < 0:
		return 0
	case today > constants.ChallengeDays:
		return constants.ChallengeDays
	default:
		return today
	}
}

// ValidDay reports whether day is inside the challenge.
func ValidDay(day int) bool {
	return day >= 1 && day <= constants.ChallengeDays
}
