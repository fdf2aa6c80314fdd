// Package achievements evaluates the fixed milestone catalog.
package achievements

import (
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/models"
)

type rule struct {
	meta models.Achievement
	met  func(daysSucceeded, currentStreak int) bool
}

// Table order is evaluation and display order.
var rules = []rule{
	{
		meta: models.Achievement{
			ID:          models.AchievementFirstWeek,
			Title:       "First Week",
			Description: "Succeed on 7 days",
			Icon:        "🚀",
		},
		met: func(succeeded, _ int) bool { return succeeded >= constants.WeekDays },
	},
	{
		meta: models.Achievement{
			ID:          models.AchievementStreak7,
			Title:       "On Fire",
			Description: "Reach a 7 day streak",
			Icon:        "🔥",
		},
		met: func(_, streak int) bool { return streak >= constants.WeekDays },
	},
	{
		meta: models.Achievement{
			ID:          models.AchievementHalfway,
			Title:       "Halfway There",
			Description: "Succeed on 15 days",
			Icon:        "🌗",
		},
		met: func(succeeded, _ int) bool { return succeeded >= constants.HalfwayDays },
	},
	{
		meta: models.Achievement{
			ID:          models.AchievementFinisher,
			Title:       "Finisher",
			Description: "Succeed on all 30 days",
			Icon:        "🏆",
		},
		met: func(succeeded, _ int) bool { return succeeded >= constants.ChallengeDays },
	},
}

// Evaluate returns the ids whose condition holds and that are not yet in
// unlocked, in catalog order.
func Evaluate(daysSucceeded, currentStreak int, unlocked []models.AchievementID) []models.AchievementID {
	have := toSet(unlocked)
	var out []models.AchievementID
	for _, r := range rules {
		if have[r.meta.ID] {
			continue
		}
		if r.met(daysSucceeded, currentStreak) {
			out = append(out, r.meta.ID)
		}
	}
	return out
}

// Merge appends newly unlocked ids to unlocked without duplicates. The result
// never loses an id from unlocked.
func Merge(unlocked, newly []models.AchievementID) []models.AchievementID {
	have := toSet(unlocked)
	out := append([]models.AchievementID(nil), unlocked...)
	for _, id := range newly {
		if !have[id] {
			have[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Catalog lists every achievement with its unlocked flag set.
func Catalog(unlocked []models.AchievementID) []models.Achievement {
	have := toSet(unlocked)
	out := make([]models.Achievement, 0, len(rules))
	for _, r := range rules {
		a := r.meta
		a.Unlocked = have[a.ID]
		out = append(out, a)
	}
	return out
}

// Lookup returns the metadata for id.
func Lookup(id models.AchievementID) (models.Achievement, bool) {
	for _, r := range rules {
		if r.meta.ID == id {
			return r.meta, true
		}
	}
	return models.Achievement{}, false
}

func toSet(ids []models.AchievementID) map[models.AchievementID]bool {
	set := make(map[models.AchievementID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
