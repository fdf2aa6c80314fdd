// Package service implements the persistence gateway over a storage provider.
// It is what the HTTP server exposes and what the CLI uses when no remote
// server is configured.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/julianstephens/thirtyday/internal/cache"
	"github.com/julianstephens/thirtyday/internal/constants"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/leaderboard"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/progress"
	"github.com/julianstephens/thirtyday/internal/storage"
	"github.com/julianstephens/thirtyday/internal/validation"
)

type Service struct {
	store   storage.Provider
	cache   cache.Leaderboard
	baseURL string
	now     func() time.Time
	newID   func() string
}

var _ storage.Gateway = (*Service)(nil)

type Option func(*Service)

// WithCache caches the leaderboard between progress writes.
func WithCache(c cache.Leaderboard) Option {
	return func(s *Service) { s.cache = c }
}

// WithBaseURL sets the public origin share URLs are built on.
func WithBaseURL(u string) Option {
	return func(s *Service) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithClock overrides the time source used for share timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store:   store,
		cache:   cache.Nop{},
		baseURL: constants.DefaultServerURL,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// storeErr classifies a provider failure. Validation and not-found errors
// pass through; everything else is transient.
func storeErr(msg string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return apperrors.Transient(msg, err)
}

func (s *Service) RegisterUser(ctx context.Context, name string) (models.Registration, error) {
	name, err := validation.Name(name)
	if err != nil {
		return models.Registration{}, err
	}

	reg, err := s.store.RegisterUser(ctx, name)
	if err != nil {
		return models.Registration{}, storeErr("Failed to register user", err)
	}
	logger.Info("User registered", "userId", reg.UserID, "existing", reg.Existing)
	return reg, nil
}

func (s *Service) requireUser(ctx context.Context, id int64) (models.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, storeErr("Failed to look up user", err)
	}
	return u, nil
}

func (s *Service) SaveProgress(ctx context.Context, update models.ProgressUpdate) error {
	if err := validation.ProgressUpdate(update); err != nil {
		return err
	}
	if _, err := s.requireUser(ctx, update.UserID); err != nil {
		return err
	}

	if err := s.store.SaveProgress(ctx, update); err != nil {
		return storeErr("Failed to save progress", err)
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate leaderboard cache", "error", err)
	}
	logger.Debug("Progress saved", "userId", update.UserID, "day", update.Day, "checked", update.Checked)
	return nil
}

// GetProgress returns the checked days of a user and the journal text of
// those days. Unknown users get empty progress.
func (s *Service) GetProgress(ctx context.Context, userID int64) (models.Progress, error) {
	if err := validation.UserID(userID); err != nil {
		return models.Progress{}, err
	}

	records, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		return models.Progress{}, storeErr("Failed to fetch progress", err)
	}

	p := models.NewProgress()
	for _, r := range records {
		if !r.Checked {
			continue
		}
		p.CheckedDays[r.Day] = true
		if r.Journal != "" {
			p.JournalEntries[r.Day] = r.Journal
		}
	}
	return p, nil
}

// GetLeaderboard ranks users by their longest run of consecutive checked days.
func (s *Service) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if entries, ok, err := s.cache.Get(ctx); err != nil {
		logger.Warn("Failed to read leaderboard cache", "error", err)
	} else if ok {
		return entries, nil
	}

	users, err := s.store.ListCheckedDays(ctx)
	if err != nil {
		return nil, storeErr("Failed to fetch leaderboard", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, models.LeaderboardEntry{
			Name:   u.Name,
			Streak: progress.LongestRun(u.Days),
		})
	}
	board := leaderboard.Top(entries, constants.LeaderboardLimit)
	if board == nil {
		board = []models.LeaderboardEntry{}
	}

	if err := s.cache.Set(ctx, board); err != nil {
		logger.Warn("Failed to write leaderboard cache", "error", err)
	}
	return board, nil
}

// newShareID prefixes a random id with the slugged user name so links stay
// readable.
func (s *Service) newShareID(name string) string {
	prefix := slug.Make(name)
	if prefix == "" {
		prefix = "share"
	}
	return prefix + "-" + s.newID()
}

// ShareURL returns the public link for a share id.
func (s *Service) ShareURL(id string) string {
	return s.baseURL + "/share/" + id
}

func (s *Service) CreateShare(ctx context.Context, req models.ShareRequest) (models.Share, error) {
	if err := validation.ShareRequest(req); err != nil {
		return models.Share{}, err
	}
	extra := req.Extra
	if len(extra) == 0 || string(extra) == "null" {
		extra = json.RawMessage("{}")
	}
	if !json.Valid(extra) {
		return models.Share{}, apperrors.Validation("shareData must be valid JSON")
	}
	if _, err := s.requireUser(ctx, req.UserID); err != nil {
		return models.Share{}, err
	}

	share := models.Share{
		ID:            s.newShareID(req.UserName),
		UserID:        req.UserID,
		UserName:      strings.TrimSpace(req.UserName),
		Streak:        req.Streak,
		DaysSucceeded: req.DaysSucceeded,
		Extra:         extra,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.store.CreateShare(ctx, share); err != nil {
		return models.Share{}, storeErr("Failed to create share", err)
	}
	share.URL = s.ShareURL(share.ID)
	logger.Info("Share created", "shareId", share.ID, "userId", share.UserID)
	return share, nil
}

func (s *Service) GetShare(ctx context.Context, id string) (models.Share, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Share{}, apperrors.Validation("shareId is required")
	}
	share, err := s.store.GetShare(ctx, id)
	if err != nil {
		return models.Share{}, storeErr("Failed to fetch share", err)
	}
	share.URL = s.ShareURL(share.ID)
	return share, nil
}

// Health reports whether the backing store answers.
func (s *Service) Health(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return apperrors.Transient("Storage unavailable", err)
	}
	return nil
}

// StorageName identifies the backend without exposing connection details.
func (s *Service) StorageName() string {
	if s.store.GetConfigPath() == "postgresql" {
		return "postgresql"
	}
	return "sqlite"
}
