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

func (s *Store) RegisterUser(ctx context.Context, name string) (models.Registration, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`, name).Scan(&id)
	if err == nil {
		return models.Registration{UserID: id, Name: name}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Registration{}, fmt.Errorf("failed to insert user: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE name = $1", name).Scan(&id); err != nil {
		return models.Registration{}, fmt.Errorf("failed to look up user: %w", err)
	}
	return models.Registration{UserID: id, Name: name, Existing: true}, nil
}

// AddUser inserts a user with a fixed id and moves the id sequence past it.
func (s *Store) AddUser(ctx context.Context, user models.User) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (id, name, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, created_at = EXCLUDED.created_at`,
		user.ID, user.Name, createdAt.UTC()); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))`); err != nil {
		return fmt.Errorf("failed to advance user sequence: %w", err)
	}
	return tx.Commit()
}

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, "SELECT id, name, created_at FROM users WHERE id = $1", id).
		Scan(&u.ID, &u.Name, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperrors.NotFound("User not found")
	}
	return u, err
}

func (s *Store) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
