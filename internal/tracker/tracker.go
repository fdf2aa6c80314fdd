// Package tracker is the client side of the challenge. It keeps the user's
// days, journal, achievements and cooldown in a local key-value store and
// mirrors writes to a gateway.
//
// Local writes always happen first. Gateway failures are reported next to the
// successful local result as a sync error; they are not retried.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/julianstephens/thirtyday/internal/achievements"
	"github.com/julianstephens/thirtyday/internal/calendar"
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/cooldown"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/kv"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/progress"
	"github.com/julianstephens/thirtyday/internal/storage"
	"github.com/julianstephens/thirtyday/internal/validation"
)

// ErrNotRegistered is returned by operations that need a server identity.
var ErrNotRegistered = apperrors.Validation("Register a name first")

type Tracker struct {
	mu      sync.Mutex
	store   kv.Store
	gateway storage.Gateway
	window  calendar.Window
	tr      *i18n.Translator
	rng     *rand.Rand
	now     func() time.Time
}

type Option func(*Tracker)

// WithTranslator sets the language quotes are picked in.
func WithTranslator(tr *i18n.Translator) Option {
	return func(t *Tracker) { t.tr = tr }
}

// WithRand makes quote selection deterministic.
func WithRand(r *rand.Rand) Option {
	return func(t *Tracker) { t.rng = r }
}

// WithClock sets the clock sync uses to evaluate achievements.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func New(store kv.Store, gateway storage.Gateway, window calendar.Window, opts ...Option) *Tracker {
	t := &Tracker{
		store:   store,
		gateway: gateway,
		window:  window,
		tr:      i18n.New("en"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Window returns the challenge calendar the tracker uses.
func (t *Tracker) Window() calendar.Window {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.window
}

// SetPreview toggles preview mode for this session.
func (t *Tracker) SetPreview(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.window.Preview = on
}

// SetWindow replaces the challenge calendar, e.g. after the month or
// timezone preference changed.
func (t *Tracker) SetWindow(w calendar.Window) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.window = w
}

// SetTranslator changes the language quotes are picked in.
func (t *Tracker) SetTranslator(tr *i18n.Translator) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tr = tr
}

// syncErr keeps classified gateway errors and marks anything else transient.
func syncErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrTransient) || errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return apperrors.Transient("Sync failed", err)
}

// User returns the locally registered user, if any.
func (t *Tracker) User() (models.User, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := loadState(t.store)
	if err != nil {
		return models.User{}, false, err
	}
	return s.user, s.registered(), nil
}

// RegisterResult is the outcome of Register.
type RegisterResult struct {
	models.Registration
	SyncResult
	SyncErr error
}

// SyncResult is the outcome of a merge with the gateway.
type SyncResult struct {
	// Pulled is the number of checked days merged in from the gateway.
	Pulled        int
	NewlyUnlocked []models.Achievement
}

// Register claims name on the gateway, stores the identity locally and
// merges progress in both directions.
func (t *Tracker) Register(ctx context.Context, name string) (RegisterResult, error) {
	name, err := validation.Name(name)
	if err != nil {
		return RegisterResult{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := loadState(t.store)
	if err != nil {
		return RegisterResult{}, err
	}

	reg, err := t.gateway.RegisterUser(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrTransient) {
			return RegisterResult{}, err
		}
		// Keep the name so the session can continue offline. Sync
		// registers it once the gateway is back.
		if s.user.Name != name {
			if s.registered() {
				logger.Info("Switching local identity", "from", s.user.ID, "to", name)
				if err := s.reset(t.store); err != nil {
					return RegisterResult{}, err
				}
			}
			s.user = models.User{Name: name}
			if err := s.saveUser(t.store); err != nil {
				return RegisterResult{}, err
			}
		}
		return RegisterResult{Registration: models.Registration{UserID: s.user.ID, Name: name}, SyncErr: err}, nil
	}

	if s.registered() && s.user.ID != reg.UserID {
		logger.Info("Switching local identity", "from", s.user.ID, "to", reg.UserID)
		if err := s.reset(t.store); err != nil {
			return RegisterResult{}, err
		}
	}
	s.user = models.User{ID: reg.UserID, Name: reg.Name}
	if err := s.saveUser(t.store); err != nil {
		return RegisterResult{}, err
	}

	res, err := t.sync(ctx, s)
	return RegisterResult{Registration: reg, SyncResult: res, SyncErr: err}, nil
}

// Sync merges gateway progress into local state and pushes local-only
// days back. A name kept while offline is registered first.
func (t *Tracker) Sync(ctx context.Context) (SyncResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := loadState(t.store)
	if err != nil {
		return SyncResult{}, err
	}
	if !s.registered() {
		if s.user.Name == "" {
			return SyncResult{}, ErrNotRegistered
		}
		reg, err := t.gateway.RegisterUser(ctx, s.user.Name)
		if err != nil {
			return SyncResult{}, syncErr(err)
		}
		logger.Info("Registered offline identity", "name", reg.Name, "id", reg.UserID)
		s.user = models.User{ID: reg.UserID, Name: reg.Name}
		if err := s.saveUser(t.store); err != nil {
			return SyncResult{}, err
		}
	}
	return t.sync(ctx, s)
}

// sync pulls remote progress, merges it and uploads what the gateway lacks.
// Remote checked days are added locally unless they were unchecked here and
// that uncheck never reached the gateway; remote journal text replaces local
// text for the same day. Achievements earned by the merged days are unlocked.
// Gateway failures are returned as sync errors.
func (t *Tracker) sync(ctx context.Context, s *state) (SyncResult, error) {
	var res SyncResult
	remote, err := t.gateway.GetProgress(ctx, s.user.ID)
	if err != nil {
		return res, syncErr(err)
	}

	for day, ok := range remote.CheckedDays {
		if ok && progress.ValidDay(day) && !s.days[day] && !s.unsynced[day] {
			s.days[day] = true
			res.Pulled++
		}
	}
	for day, text := range remote.JournalEntries {
		if text != "" && progress.ValidDay(day) {
			s.journal[day] = text
		}
	}
	if err := s.saveDays(t.store); err != nil {
		return res, err
	}
	if err := s.saveJournal(t.store); err != nil {
		return res, err
	}

	res.NewlyUnlocked, err = s.evaluate(t.store, t.window.Today(t.now()))
	if err != nil {
		return res, err
	}

	for day := range s.unsynced {
		if !s.days[day] && remote.CheckedDays[day] {
			update := models.ProgressUpdate{UserID: s.user.ID, Day: day, Checked: false}
			if err := t.gateway.SaveProgress(ctx, update); err != nil {
				return res, syncErr(err)
			}
		}
		delete(s.unsynced, day)
		if err := s.saveUnsynced(t.store); err != nil {
			return res, err
		}
	}

	for day := range s.days {
		if !s.days[day] {
			continue
		}
		_, remoteChecked := remote.CheckedDays[day]
		text, hasText := s.journal[day]
		remoteText := remote.JournalEntries[day]
		if remoteChecked && (!hasText || text == remoteText) {
			continue
		}
		update := models.ProgressUpdate{UserID: s.user.ID, Day: day, Checked: true}
		if hasText {
			update.Journal = &text
		}
		if err := t.gateway.SaveProgress(ctx, update); err != nil {
			return res, syncErr(err)
		}
	}
	return res, nil
}

// ToggleResult is the outcome of a toggle.
type ToggleResult struct {
	Day     int
	Checked bool
	// Relapse is true when a past success was unchecked and the cooldown started.
	Relapse       bool
	NewlyUnlocked []models.Achievement
	// Quote is set when the day was newly checked.
	Quote   string
	SyncErr error
}

// Toggle flips day at now.
func (t *Tracker) Toggle(ctx context.Context, day int, now time.Time) (ToggleResult, error) {
	if err := validation.Day(day); err != nil {
		return ToggleResult{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := loadState(t.store)
	if err != nil {
		return ToggleResult{}, err
	}
	if s.gate.Sweep(now) {
		if err := s.saveCooldown(t.store); err != nil {
			return ToggleResult{}, err
		}
	}
	if err := s.gate.Check(now); err != nil {
		return ToggleResult{}, err
	}

	today := t.window.Today(now)
	if today == 0 {
		return ToggleResult{}, apperrors.Validation("The challenge has not started yet")
	}
	if day > today {
		return ToggleResult{}, apperrors.Validationf("Day %d has not happened yet", day)
	}

	wasChecked := s.days[day]
	res := ToggleResult{Day: day, Checked: !wasChecked}
	if res.Checked {
		s.days[day] = true
	} else {
		delete(s.days, day)
	}

	if cooldown.IsRelapse(day, wasChecked, today) {
		s.gate.Trigger(now)
		res.Relapse = true
		logger.Info("Relapse recorded, cooldown started", "day", day, "until", s.gate.Deadline)
	}

	if res.Checked {
		res.Quote = t.tr.RandomQuote(t.rng)
		delete(s.unsynced, day)
	} else {
		s.unsynced[day] = true
	}

	if err := s.saveDays(t.store); err != nil {
		return ToggleResult{}, err
	}
	if err := s.saveCooldown(t.store); err != nil {
		return ToggleResult{}, err
	}
	if err := s.saveUnsynced(t.store); err != nil {
		return ToggleResult{}, err
	}
	res.NewlyUnlocked, err = s.evaluate(t.store, today)
	if err != nil {
		return ToggleResult{}, err
	}

	if s.registered() {
		err := t.gateway.SaveProgress(ctx, models.ProgressUpdate{
			UserID:  s.user.ID,
			Day:     day,
			Checked: res.Checked,
		})
		res.SyncErr = syncErr(err)
		if err == nil && !res.Checked {
			delete(s.unsynced, day)
			if err := s.saveUnsynced(t.store); err != nil {
				return ToggleResult{}, err
			}
		}
	}
	return res, nil
}

// Journal returns the stored text for day.
func (t *Tracker) Journal(day int) (string, error) {
	if err := validation.Day(day); err != nil {
		return "", err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := loadState(t.store)
	if err != nil {
		return "", err
	}
	return s.journal[day], nil
}

// SaveJournal stores text for day regardless of its checked state. The
// returned error is the sync error, if any; local failures are returned
// through err.
func (t *Tracker) SaveJournal(ctx context.Context, day int, text string) (syncError error, err error) {
	if err := validation.Day(day); err != nil {
		return nil, err
	}
	if err := validation.Journal(text); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := loadState(t.store)
	if err != nil {
		return nil, err
	}
	if text == "" {
		delete(s.journal, day)
	} else {
		s.journal[day] = text
	}
	if err := s.saveJournal(t.store); err != nil {
		return nil, err
	}

	if !s.registered() {
		return nil, nil
	}
	return syncErr(t.gateway.SaveProgress(ctx, models.ProgressUpdate{
		UserID:  s.user.ID,
		Day:     day,
		Checked: s.days[day],
		Journal: &text,
	})), nil
}

// Snapshot is everything the tracker views render.
type Snapshot struct {
	User              models.User
	Registered        bool
	Today             int
	Running           bool
	Preview           bool
	Statuses          [constants.ChallengeDays]models.DayStatus
	Checked           map[int]bool
	Journal           map[int]string
	Stats             progress.Stats
	Series            []progress.SeriesPoint
	Achievements      []models.Achievement
	Cooldown          cooldown.Gate
	CooldownRemaining time.Duration
	UntilStart        time.Duration
	UntilEnd          time.Duration
}

// Snapshot reads local state as of now. An expired cooldown is cleared and
// achievements earned by the stored days are unlocked.
func (t *Tracker) Snapshot(now time.Time) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := loadState(t.store)
	if err != nil {
		return Snapshot{}, err
	}
	if s.gate.Sweep(now) {
		if err := s.saveCooldown(t.store); err != nil {
			return Snapshot{}, err
		}
	}

	today := t.window.Today(now)
	if _, err := s.evaluate(t.store, today); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		User:              s.user,
		Registered:        s.registered(),
		Today:             today,
		Running:           today > 0,
		Preview:           t.window.Preview,
		Statuses:          progress.Statuses(s.days, today),
		Checked:           s.days,
		Journal:           s.journal,
		Stats:             progress.Summarize(s.days, today),
		Series:            progress.Series(s.days, today),
		Achievements:      achievements.Catalog(s.unlocked),
		Cooldown:          s.gate,
		CooldownRemaining: cooldown.Remaining(now, s.gate.Deadline),
		UntilStart:        t.window.UntilStart(now),
		UntilEnd:          t.window.UntilEnd(now),
	}, nil
}

// BoardEntry is a leaderboard row prepared for display.
type BoardEntry struct {
	models.LeaderboardEntry
	Position int
	Label    string
	You      bool
}

// Leaderboard fetches the ranked board and marks the current user.
func (t *Tracker) Leaderboard(ctx context.Context) ([]BoardEntry, error) {
	user, _, err := t.User()
	if err != nil {
		return nil, err
	}

	entries, err := t.gateway.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	return rankForDisplay(entries, user.Name), nil
}

// Share publishes the user's longest streak and days succeeded.
func (t *Tracker) Share(ctx context.Context, now time.Time, extra json.RawMessage) (models.Share, error) {
	snap, err := t.Snapshot(now)
	if err != nil {
		return models.Share{}, err
	}
	if !snap.Registered {
		return models.Share{}, ErrNotRegistered
	}
	return t.gateway.CreateShare(ctx, models.ShareRequest{
		UserID:        snap.User.ID,
		UserName:      snap.User.Name,
		Streak:        snap.Stats.Longest,
		DaysSucceeded: snap.Stats.DaysSucceeded,
		Extra:         extra,
	})
}

// GetShare fetches a published snapshot.
func (t *Tracker) GetShare(ctx context.Context, id string) (models.Share, error) {
	return t.gateway.GetShare(ctx, id)
}

// SweepCooldown clears an expired cooldown and reports whether it was cleared.
func (t *Tracker) SweepCooldown(now time.Time) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := loadState(t.store)
	if err != nil {
		return false, err
	}
	if !s.gate.Sweep(now) {
		return false, nil
	}
	return true, s.saveCooldown(t.store)
}
