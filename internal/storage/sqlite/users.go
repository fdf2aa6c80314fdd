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

func (s *Store) RegisterUser(ctx context.Context, name string) (models.Registration, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (name, created_at) VALUES (?, ?)
		ON CONFLICT(name) DO NOTHING`,
		name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return models.Registration{}, fmt.Errorf("failed to insert user: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return models.Registration{}, err
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE name = ?", name).Scan(&id); err != nil {
		return models.Registration{}, fmt.Errorf("failed to look up user: %w", err)
	}

	return models.Registration{UserID: id, Name: name, Existing: inserted == 0}, nil
}

// AddUser inserts a user with a fixed id, used when copying between stores.
func (s *Store) AddUser(ctx context.Context, user models.User) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, created_at = excluded.created_at`,
		user.ID, user.Name, createdAt.UTC().Format(time.RFC3339))
	return err
}

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, created_at FROM users WHERE id = ?", id)
	u, err := scanUser(row)
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
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Name, &createdAt); err != nil {
		return models.User{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	u.CreatedAt = t
	return u, nil
}
