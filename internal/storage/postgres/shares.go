package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/models"
)

const shareColumns = "id, user_id, user_name, streak, days_succeeded, share_data, created_at"

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
		INSERT INTO shared_progress (`+shareColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)`,
		share.ID, share.UserID, share.UserName, share.Streak, share.DaysSucceeded, data, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create share: %w", err)
	}
	return nil
}

func (s *Store) GetShare(ctx context.Context, id string) (models.Share, error) {
	var share models.Share
	err := s.db.QueryRowContext(ctx, "SELECT "+shareColumns+" FROM shared_progress WHERE id = $1", id).
		Scan(&share.ID, &share.UserID, &share.UserName, &share.Streak, &share.DaysSucceeded, &share.Extra, &share.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Share{}, apperrors.NotFound("Share not found")
	}
	return share, err
}

func (s *Store) GetAllShares(ctx context.Context) ([]models.Share, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+shareColumns+" FROM shared_progress ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []models.Share
	for rows.Next() {
		var share models.Share
		if err := rows.Scan(&share.ID, &share.UserID, &share.UserName, &share.Streak,
			&share.DaysSucceeded, &share.Extra, &share.CreatedAt); err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, rows.Err()
}
