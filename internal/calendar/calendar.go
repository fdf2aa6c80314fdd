// Package calendar maps wall-clock time onto challenge days.
package calendar

import (
	"time"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/utils"
)

// Window is the calendar month the challenge runs in.
type Window struct {
	Month    time.Month
	Location *time.Location
	// Preview pins today to the middle of the challenge so the tracker can be
	// tried outside the challenge month.
	Preview bool
}

// FromPreferences builds a Window from stored preferences.
func FromPreferences(prefs models.Preferences) (Window, error) {
	loc, err := utils.LoadLocation(prefs.Timezone)
	if err != nil {
		return Window{}, err
	}
	month := time.Month(prefs.ChallengeMonth)
	if month < time.January || month > time.December {
		month = constants.DefaultChallengeMonth
	}
	return Window{Month: month, Location: loc, Preview: prefs.PreviewMode}, nil
}

func (w Window) loc() *time.Location {
	if w.Location == nil {
		return time.Local
	}
	return w.Location
}

// Today returns the current challenge day: the day of the month while inside
// the challenge month, the preview day in preview mode, 0 otherwise.
func (w Window) Today(now time.Time) int {
	if w.Preview {
		return constants.PreviewDay
	}
	n := now.In(w.loc())
	if n.Month() != w.Month {
		return 0
	}
	if n.Day() > constants.ChallengeDays {
		return constants.ChallengeDays
	}
	return n.Day()
}

// Active reports whether now falls inside the challenge month.
func (w Window) Active(now time.Time) bool {
	return now.In(w.loc()).Month() == w.Month
}

// NextStart is the first instant of the next challenge month at or after now.
// While the challenge is running it is the start of the current one.
func (w Window) NextStart(now time.Time) time.Time {
	n := now.In(w.loc())
	start := time.Date(n.Year(), w.Month, 1, 0, 0, 0, 0, w.loc())
	end := start.AddDate(0, 1, 0)
	if !n.Before(end) {
		start = start.AddDate(1, 0, 0)
	}
	return start
}

// End is the first instant after the challenge month that contains or
// follows now.
func (w Window) End(now time.Time) time.Time {
	return w.NextStart(now).AddDate(0, 1, 0)
}

// UntilStart is the countdown shown before the challenge begins. It is 0 while
// the challenge is running.
func (w Window) UntilStart(now time.Time) time.Duration {
	start := w.NextStart(now)
	if !now.Before(start) {
		return 0
	}
	return start.Sub(now)
}

// UntilEnd is the countdown to the end of the running challenge, 0 outside it.
func (w Window) UntilEnd(now time.Time) time.Duration {
	if !w.Active(now) {
		return 0
	}
	return w.End(now).Sub(now)
}

// Year is the calendar year of the challenge that contains or follows now.
func (w Window) Year(now time.Time) int {
	return w.NextStart(now).Year()
}

// Countdown splits d into days, hours, minutes and seconds.
func Countdown(d time.Duration) (days, hours, minutes, seconds int) {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	days = total / 86400
	total %= 86400
	return days, total / 3600, (total % 3600) / 60, total % 60
}
