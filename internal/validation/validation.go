package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/thirtyday/internal/constants"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/utils"
)

// ConflictType represents the type of integrity problem found in stored data
type ConflictType string

const (
	ConflictDayOutOfRange  ConflictType = "day_out_of_range"
	ConflictJournalTooLong ConflictType = "journal_too_long"
	ConflictDuplicateName  ConflictType = "duplicate_user_name"
	ConflictBlankName      ConflictType = "blank_user_name"
	ConflictNegativeStreak ConflictType = "negative_streak"
)

// Conflict represents one detected problem
type Conflict struct {
	Type        ConflictType
	Description string
	UserID      int64 // 0 when not tied to a user
	Day         int   // 0 when not tied to a day
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// Name normalizes and checks a display name.
func Name(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.Validation("Name is required")
	}
	if utf8.RuneCountInString(name) > constants.MaxNameLength {
		return "", apperrors.Validationf("Name must be at most %d characters", constants.MaxNameLength)
	}
	return name, nil
}

// Day checks that day is a challenge day.
func Day(day int) error {
	if day < 1 || day > constants.ChallengeDays {
		return apperrors.Validationf("Day must be between 1 and %d", constants.ChallengeDays)
	}
	return nil
}

// UserID checks that id refers to a persisted user.
func UserID(id int64) error {
	if id <= 0 {
		return apperrors.Validation("userId is required")
	}
	return nil
}

// Journal checks journal text length.
func Journal(text string) error {
	if utf8.RuneCountInString(text) > constants.MaxJournalLength {
		return apperrors.Validationf("Journal entry must be at most %d characters", constants.MaxJournalLength)
	}
	return nil
}

// ProgressUpdate validates a whole upsert before anything is written.
func ProgressUpdate(u models.ProgressUpdate) error {
	if err := UserID(u.UserID); err != nil {
		return err
	}
	if err := Day(u.Day); err != nil {
		return err
	}
	if u.Journal != nil {
		return Journal(*u.Journal)
	}
	return nil
}

// ShareRequest validates a share snapshot.
func ShareRequest(r models.ShareRequest) error {
	if r.UserID <= 0 || strings.TrimSpace(r.UserName) == "" {
		return apperrors.Validation("userId and userName are required")
	}
	if r.Streak < 0 || r.DaysSucceeded < 0 {
		return apperrors.Validation("streak and daysSucceeded must not be negative")
	}
	if r.Streak > constants.ChallengeDays || r.DaysSucceeded > constants.ChallengeDays {
		return apperrors.Validationf("streak and daysSucceeded must be at most %d", constants.ChallengeDays)
	}
	return nil
}

// ReminderTime checks an HH:MM reminder time.
func ReminderTime(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return apperrors.Validationf("invalid reminder time %q, expected HH:MM", s)
	}
	return nil
}

// Preferences checks every preference that has a constrained format.
func Preferences(p models.Preferences) error {
	if err := ReminderTime(p.ReminderTime); err != nil {
		return err
	}
	if !utils.ValidateTimezone(p.Timezone) {
		return apperrors.Validationf("invalid timezone %q", p.Timezone)
	}
	if p.ChallengeMonth < 1 || p.ChallengeMonth > 12 {
		return apperrors.Validationf("challenge month must be between 1 and 12, got %d", p.ChallengeMonth)
	}
	switch p.Theme {
	case "dark", "light":
	default:
		return apperrors.Validationf("unknown theme %q", p.Theme)
	}
	return nil
}

// Validator checks stored data for integrity problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateUsers reports blank and duplicate names. Names compare exactly, as
// the users table does.
func (v *Validator) ValidateUsers(users []models.User) ValidationResult {
	var result ValidationResult
	seen := map[string]int64{}
	for _, u := range users {
		if strings.TrimSpace(u.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBlankName,
				Description: fmt.Sprintf("user %d has a blank name", u.ID),
				UserID:      u.ID,
			})
			continue
		}
		if first, ok := seen[u.Name]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateName,
				Description: fmt.Sprintf("users %d and %d share the name %q", first, u.ID, u.Name),
				UserID:      u.ID,
			})
			continue
		}
		seen[u.Name] = u.ID
	}
	return result
}

// ValidateProgress reports records that fall outside the challenge or carry
// oversized journal text.
func (v *Validator) ValidateProgress(userID int64, records []models.DayRecord) ValidationResult {
	var result ValidationResult
	for _, r := range records {
		if Day(r.Day) != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDayOutOfRange,
				Description: fmt.Sprintf("user %d has a record for day %d", userID, r.Day),
				UserID:      userID,
				Day:         r.Day,
			})
		}
		if Journal(r.Journal) != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictJournalTooLong,
				Description: fmt.Sprintf("user %d journal for day %d exceeds %d characters", userID, r.Day, constants.MaxJournalLength),
				UserID:      userID,
				Day:         r.Day,
			})
		}
	}
	return result
}

// ValidateShares reports shares whose figures cannot come from a real challenge.
func (v *Validator) ValidateShares(shares []models.Share) ValidationResult {
	var result ValidationResult
	for _, s := range shares {
		if s.Streak < 0 || s.DaysSucceeded < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeStreak,
				Description: fmt.Sprintf("share %s has negative figures", s.ID),
				UserID:      s.UserID,
			})
		}
	}
	return result
}
