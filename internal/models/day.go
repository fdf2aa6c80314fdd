package models

import "sort"

// DayStatus is the derived state of a single challenge day. It is never persisted.
type DayStatus int

const (
	StatusPending DayStatus = iota
	StatusSuccess
	StatusFailure
)

func (s DayStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "pending"
	}
}

// DayRecord is one user's entry for one challenge day.
type DayRecord struct {
	Day     int    `json:"day"`     // 1..30
	Checked bool   `json:"checked"` // true once the day is marked a success
	Journal string `json:"journal"` // free text, kept when the day is unchecked
}

// StreakState holds both streak figures for the current challenge day.
type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Progress is the persisted view of a user's challenge: the days marked a
// success plus journal text keyed by day.
type Progress struct {
	CheckedDays    map[int]bool   `json:"checkedDays"`
	JournalEntries map[int]string `json:"journalEntries"`
}

// NewProgress returns an empty Progress with both maps allocated.
func NewProgress() Progress {
	return Progress{
		CheckedDays:    map[int]bool{},
		JournalEntries: map[int]string{},
	}
}

// Records flattens Progress into one DayRecord per known day, ordered by day.
func (p Progress) Records() []DayRecord {
	seen := map[int]bool{}
	var days []int
	for d := range p.CheckedDays {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	for d := range p.JournalEntries {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Ints(days)

	records := make([]DayRecord, 0, len(days))
	for _, d := range days {
		records = append(records, DayRecord{
			Day:     d,
			Checked: p.CheckedDays[d],
			Journal: p.JournalEntries[d],
		})
	}
	return records
}

// ProgressUpdate is a single (user, day) upsert. A nil Journal leaves the
// stored journal text untouched.
type ProgressUpdate struct {
	UserID  int64   `json:"userId"`
	Day     int     `json:"day"`
	Checked bool    `json:"checked"`
	Journal *string `json:"journalEntry,omitempty"`
}
