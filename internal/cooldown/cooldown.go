// Package cooldown implements the lock that suspends day toggles for a fixed
// period after a relapse.
package cooldown

import (
	stderrors "errors"
	"time"

	"github.com/julianstephens/thirtyday/internal/constants"
)

// ErrActive is returned when a toggle is attempted while the gate is closed.
var ErrActive = stderrors.New("relapse cooldown is active")

// Gate is either inactive (zero deadline) or active until Deadline.
type Gate struct {
	Deadline time.Time `json:"deadline"`
}

// FromMillis restores a gate from an epoch-millisecond deadline. 0 is inactive.
func FromMillis(ms int64) Gate {
	if ms <= 0 {
		return Gate{}
	}
	return Gate{Deadline: time.UnixMilli(ms)}
}

// Millis is the deadline as epoch milliseconds, 0 when inactive.
func (g Gate) Millis() int64 {
	if g.Deadline.IsZero() {
		return 0
	}
	return g.Deadline.UnixMilli()
}

// Trigger closes the gate for the relapse cooldown period starting at now.
func (g *Gate) Trigger(now time.Time) {
	g.Deadline = now.Add(constants.RelapseCooldown)
}

// Active reports whether toggles are suspended at now.
func (g Gate) Active(now time.Time) bool {
	return !g.Deadline.IsZero() && now.Before(g.Deadline)
}

// Sweep clears an expired deadline. It returns true when the gate changed.
func (g *Gate) Sweep(now time.Time) bool {
	if g.Deadline.IsZero() || g.Active(now) {
		return false
	}
	g.Deadline = time.Time{}
	return true
}

// Check returns ErrActive while the gate is closed.
func (g Gate) Check(now time.Time) error {
	if g.Active(now) {
		return ErrActive
	}
	return nil
}

// IsRelapse reports whether toggling day from wasChecked marks a relapse:
// unchecking a day that is already in the past.
func IsRelapse(day int, wasChecked bool, today int) bool {
	return wasChecked && day < today
}

// Remaining is the time left until deadline, never negative.
func Remaining(now, deadline time.Time) time.Duration {
	if deadline.IsZero() || !now.Before(deadline) {
		return 0
	}
	return deadline.Sub(now)
}

// Split breaks d into whole hours, minutes and seconds for countdown displays.
// Hours are not wrapped at 24.
func Split(d time.Duration) (hours, minutes, seconds int) {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return total / 3600, (total % 3600) / 60, total % 60
}
