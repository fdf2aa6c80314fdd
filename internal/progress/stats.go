package progress

import (
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/models"
)

// Stats summarizes a challenge as of a given day.
type Stats struct {
	Today         int     `json:"today"`
	DaysSucceeded int     `json:"daysSucceeded"`
	PastDays      int     `json:"pastDays"`
	DaysFailed    int     `json:"daysFailed"`
	DaysRemaining int     `json:"daysRemaining"`
	SuccessRate   float64 `json:"successRate"` // percent, 0..100
	models.StreakState
}

// SeriesPoint is one day of the progress chart.
type SeriesPoint struct {
	Day        int              `json:"day"`
	Status     models.DayStatus `json:"status"`
	Cumulative int              `json:"cumulative"`
}

// Summarize computes the aggregate figures shown on the dashboard.
func Summarize(checked map[int]bool, today int) Stats {
	today = ClampToday(today)

	succeeded := 0
	for day := 1; day <= constants.ChallengeDays; day++ {
		if Status(day, checked[day], today) == models.StatusSuccess {
			succeeded++
		}
	}

	pastDays := today - 1
	if pastDays < 0 {
		pastDays = 0
	}

	rate := 0.0
	if pastDays > 0 {
		rate = float64(succeeded) / float64(pastDays) * 100
	}
	// Today can be checked before it is over, so both figures need bounds.
	if rate > 100 {
		rate = 100
	}
	failed := pastDays - succeeded
	if failed < 0 {
		failed = 0
	}

	return Stats{
		Today:         today,
		DaysSucceeded: succeeded,
		PastDays:      pastDays,
		DaysFailed:    failed,
		DaysRemaining: constants.ChallengeDays - today,
		SuccessRate:   rate,
		StreakState:   Streaks(checked, today),
	}
}

// Series returns one point per challenge day with a running success total.
func Series(checked map[int]bool, today int) []SeriesPoint {
	today = ClampToday(today)
	points := make([]SeriesPoint, 0, constants.ChallengeDays)
	total := 0
	for day := 1; day <= constants.ChallengeDays; day++ {
		status := Status(day, checked[day], today)
		if status == models.StatusSuccess {
			total++
		}
		points = append(points, SeriesPoint{Day: day, Status: status, Cumulative: total})
	}
	return points
}

// CheckedFromRecords builds the checked-day map from day records.
func CheckedFromRecords(records []models.DayRecord) map[int]bool {
	checked := make(map[int]bool, len(records))
	for _, r := range records {
		if r.Checked && ValidDay(r.Day) {
			checked[r.Day] = true
		}
	}
	return checked
}
