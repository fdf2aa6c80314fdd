package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/storage"
)

func (s *Store) SaveProgress(ctx context.Context, update models.ProgressUpdate) error {
	var journal sql.NullString
	if update.Journal != nil {
		journal = sql.NullString{String: *update.Journal, Valid: true}
	}

	// A NULL journal keeps whatever text is already stored for the day.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_progress (user_id, day, checked, journal_entry, updated_at)
		VALUES ($1, $2, $3, COALESCE($4, ''), NOW())
		ON CONFLICT (user_id, day) DO UPDATE SET
			checked = EXCLUDED.checked,
			journal_entry = COALESCE($4, user_progress.journal_entry),
			updated_at = NOW()`,
		update.UserID, update.Day, update.Checked, journal)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (s *Store) GetProgress(ctx context.Context, userID int64) ([]models.DayRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, checked, journal_entry
		FROM user_progress WHERE user_id = $1
		ORDER BY day`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DayRecord
	for rows.Next() {
		var r models.DayRecord
		if err := rows.Scan(&r.Day, &r.Checked, &r.Journal); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) ListCheckedDays(ctx context.Context) ([]storage.UserDays, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.name, p.day
		FROM users u
		JOIN user_progress p ON p.user_id = u.id
		WHERE p.checked
		ORDER BY u.id, p.day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []storage.UserDays
	for rows.Next() {
		var id int64
		var name string
		var day int
		if err := rows.Scan(&id, &name, &day); err != nil {
			return nil, err
		}
		if n := len(out); n > 0 && out[n-1].UserID == id {
			out[n-1].Days = append(out[n-1].Days, day)
			continue
		}
		out = append(out, storage.UserDays{UserID: id, Name: name, Days: []int{day}})
	}
	return out, rows.Err()
}
