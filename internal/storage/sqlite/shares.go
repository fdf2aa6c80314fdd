package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/models"
)

func (s *Store) CreateShare(ctx context.Context, share models.Share) error {
	data := string(share.Extra)
	if data == "" {
		data = "{}"
	}
	createdAt := share.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shared_progress (id, user_id, user_name, streak, days_succeeded, share_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		share.ID, share.UserID, share.UserName, share.Streak, share.DaysSucceeded, data,
		createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to create share: %w", err)
	}
	return nil
}

func (s *Store) GetShare(ctx context.Context, id string) (models.Share, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, user_name, streak, days_succeeded, share_data, created_at
		FROM shared_progress WHERE id = ?`, id)
	share, err := scanShare(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Share{}, apperrors.NotFound("Share not found")
	}
	return share, err
}

func (s *Store) GetAllShares(ctx context.Context) ([]models.Share, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, user_name, streak, days_succeeded, share_data, created_at
		FROM shared_progress ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []models.Share
	for rows.Next() {
		share, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, rows.Err()
}

func scanShare(row scanner) (models.Share, error) {
	var share models.Share
	var data, createdAt string
	if err := row.Scan(&share.ID, &share.UserID, &share.UserName, &share.Streak,
		&share.DaysSucceeded, &data, &createdAt); err != nil {
		return models.Share{}, err
	}
	share.Extra = []byte(data)
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Share{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	share.CreatedAt = t
	return share, nil
}
