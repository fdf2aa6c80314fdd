package tracker

import (
	"github.com/julianstephens/thirtyday/internal/achievements"
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/cooldown"
	"github.com/julianstephens/thirtyday/internal/kv"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/progress"
)

// state is everything the tracker keeps in the local store.
type state struct {
	user     models.User
	days     map[int]bool
	journal  map[int]string
	unlocked []models.AchievementID
	gate     cooldown.Gate
	// unsynced holds days unchecked locally that the gateway may still
	// report as checked.
	unsynced map[int]bool
}

func (s *state) registered() bool {
	return s.user.ID > 0
}

func loadState(store kv.Store) (*state, error) {
	s := &state{}

	user, _, err := kv.Get[models.User](store, constants.KeyUser)
	if err != nil {
		return nil, err
	}
	s.user = user

	days, _, err := kv.Get[map[int]bool](store, constants.KeyDays)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = map[int]bool{}
	}
	s.days = days

	journal, _, err := kv.Get[map[int]string](store, constants.KeyJournal)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		journal = map[int]string{}
	}
	s.journal = journal

	s.unlocked, _, err = kv.Get[[]models.AchievementID](store, constants.KeyAchievements)
	if err != nil {
		return nil, err
	}

	ms, _, err := kv.Get[int64](store, constants.KeyCooldown)
	if err != nil {
		return nil, err
	}
	s.gate = cooldown.FromMillis(ms)

	unsynced, _, err := kv.Get[map[int]bool](store, constants.KeyUnsynced)
	if err != nil {
		return nil, err
	}
	if unsynced == nil {
		unsynced = map[int]bool{}
	}
	s.unsynced = unsynced

	return s, nil
}

// reset drops all progress, e.g. when the local identity changes.
func (s *state) reset(store kv.Store) error {
	s.days = map[int]bool{}
	s.journal = map[int]string{}
	s.unlocked = nil
	s.gate = cooldown.Gate{}
	s.unsynced = map[int]bool{}

	for _, save := range []func(kv.Store) error{
		s.saveDays, s.saveJournal, s.saveAchievements, s.saveCooldown, s.saveUnsynced,
	} {
		if err := save(store); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) saveUser(store kv.Store) error {
	return kv.Set(store, constants.KeyUser, s.user)
}

func (s *state) saveDays(store kv.Store) error {
	// Unchecked days are dropped so the map only holds successes.
	days := make(map[int]bool, len(s.days))
	for d, ok := range s.days {
		if ok {
			days[d] = true
		}
	}
	return kv.Set(store, constants.KeyDays, days)
}

func (s *state) saveJournal(store kv.Store) error {
	return kv.Set(store, constants.KeyJournal, s.journal)
}

func (s *state) saveAchievements(store kv.Store) error {
	return kv.Set(store, constants.KeyAchievements, s.unlocked)
}

func (s *state) saveCooldown(store kv.Store) error {
	return kv.Set(store, constants.KeyCooldown, s.gate.Millis())
}

func (s *state) saveUnsynced(store kv.Store) error {
	return kv.Set(store, constants.KeyUnsynced, s.unsynced)
}

// evaluate unlocks achievements earned as of today and stores them.
func (s *state) evaluate(store kv.Store, today int) ([]models.Achievement, error) {
	stats := progress.Summarize(s.days, today)
	newly := achievements.Evaluate(stats.DaysSucceeded, stats.Current, s.unlocked)
	if len(newly) == 0 {
		return nil, nil
	}
	s.unlocked = achievements.Merge(s.unlocked, newly)
	if err := s.saveAchievements(store); err != nil {
		return nil, err
	}

	out := make([]models.Achievement, 0, len(newly))
	for _, id := range newly {
		if a, ok := achievements.Lookup(id); ok {
			a.Unlocked = true
			out = append(out, a)
		}
	}
	return out, nil
}

// LoadPreferences reads the stored preferences with defaults applied.
func LoadPreferences(store kv.Store) (models.Preferences, error) {
	prefs, _, err := kv.Get[models.Preferences](store, constants.KeyPreferences)
	if err != nil {
		return models.Preferences{}, err
	}
	models.ApplyDefaultPreferences(&prefs)
	return prefs, nil
}

// SavePreferences stores prefs.
func SavePreferences(store kv.Store, prefs models.Preferences) error {
	return kv.Set(store, constants.KeyPreferences, prefs)
}
