package storage

import (
	"context"

	"github.com/julianstephens/thirtyday/internal/models"
)

// UserDays is one user's checked days, the input of the leaderboard.
type UserDays struct {
	UserID int64
	Name   string
	Days   []int
}

// Provider is a persistence backend for users, progress and shares.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string
	Ping(ctx context.Context) error

	// Users
	RegisterUser(ctx context.Context, name string) (models.Registration, error)
	AddUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// Progress
	SaveProgress(ctx context.Context, update models.ProgressUpdate) error
	// GetProgress returns every stored record for the user, checked or not.
	GetProgress(ctx context.Context, userID int64) ([]models.DayRecord, error)
	// ListCheckedDays returns the checked days of every user with at least one.
	ListCheckedDays(ctx context.Context) ([]UserDays, error)

	// Shares
	CreateShare(ctx context.Context, share models.Share) error
	GetShare(ctx context.Context, id string) (models.Share, error)
	GetAllShares(ctx context.Context) ([]models.Share, error)
}

// Gateway is the persistence surface the tracker talks to. It is served
// in-process over a Provider or remotely over HTTP.
type Gateway interface {
	// RegisterUser is idempotent by name.
	RegisterUser(ctx context.Context, name string) (models.Registration, error)
	// SaveProgress upserts one (user, day) record. Last write wins.
	SaveProgress(ctx context.Context, update models.ProgressUpdate) error
	// GetProgress returns checked days and the journal text of checked days.
	GetProgress(ctx context.Context, userID int64) (models.Progress, error)
	// GetLeaderboard returns the top longest streaks.
	GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	// CreateShare stores an immutable snapshot and returns it with its URL.
	CreateShare(ctx context.Context, req models.ShareRequest) (models.Share, error)
	// GetShare returns a snapshot or a not-found error.
	GetShare(ctx context.Context, id string) (models.Share, error)
}
