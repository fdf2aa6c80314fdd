// Package scheduler runs the background reminder daemon: a daily check-in
// notification and a periodic sweep that clears an expired relapse cooldown.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/notifier"
	"github.com/julianstephens/thirtyday/internal/tracker"
)

const (
	ReminderJobName = "daily-reminder"
	SweepJobName    = "cooldown-sweep"

	sweepInterval = time.Minute
)

type Scheduler struct {
	cron    gocron.Scheduler
	tracker *tracker.Tracker
	sender  notifier.Sender
	tr      *i18n.Translator
	now     func() time.Time
}

type Option func(*Scheduler)

func WithTranslator(tr *i18n.Translator) Option {
	return func(s *Scheduler) { s.tr = tr }
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New builds a scheduler whose jobs fire in loc. Jobs are added by Start.
func New(t *tracker.Tracker, sender notifier.Sender, loc *time.Location, opts ...Option) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	cron, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	s := &Scheduler{
		cron:    cron,
		tracker: t,
		sender:  sender,
		tr:      i18n.New(constants.DefaultLanguage),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ParseReminderTime parses an "HH:MM" reminder time.
func ParseReminderTime(at string) (hour, minute uint, err error) {
	t, err := time.Parse(constants.TimeFormat, at)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reminder time %q, expected HH:MM", at)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}

// Start registers the reminder at the given "HH:MM" time and the cooldown
// sweep, then starts the scheduler.
func (s *Scheduler) Start(ctx context.Context, at string) error {
	hour, minute, err := ParseReminderTime(at)
	if err != nil {
		return err
	}

	_, err = s.cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			if _, err := s.Remind(ctx); err != nil {
				logger.Warn("Reminder failed", "error", err)
			}
		}),
		gocron.WithName(ReminderJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}

	_, err = s.cron.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(func() {
			if _, err := s.Sweep(); err != nil {
				logger.Warn("Cooldown sweep failed", "error", err)
			}
		}),
		gocron.WithName(SweepJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cooldown sweep: %w", err)
	}

	s.cron.Start()
	logger.Info("Reminder daemon started", "at", at)
	return nil
}

// NextReminder reports when the daily reminder fires next.
func (s *Scheduler) NextReminder() (time.Time, error) {
	for _, j := range s.cron.Jobs() {
		if j.Name() == ReminderJobName {
			return j.NextRun()
		}
	}
	return time.Time{}, fmt.Errorf("reminder is not scheduled")
}

// Shutdown stops all jobs and waits for running ones to finish.
func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

// Remind sends the check-in notification for today. Nothing is sent outside
// the challenge or when today is already checked. It reports whether a
// notification went out.
func (s *Scheduler) Remind(ctx context.Context) (bool, error) {
	snap, err := s.tracker.Snapshot(s.now())
	if err != nil {
		return false, err
	}
	if !snap.Running || snap.Checked[snap.Today] {
		logger.Debug("Skipping reminder", "today", snap.Today, "running", snap.Running)
		return false, nil
	}

	body := s.tr.T(i18n.MsgReminderBody, snap.Today, constants.ChallengeDays)
	if err := s.sender.Notify(ctx, s.tr.T(i18n.MsgReminderTitle), body); err != nil {
		return false, fmt.Errorf("failed to send reminder: %w", err)
	}
	logger.Info("Reminder sent", "day", snap.Today)
	return true, nil
}

// Sweep clears an expired cooldown and reports whether it did.
func (s *Scheduler) Sweep() (bool, error) {
	cleared, err := s.tracker.SweepCooldown(s.now())
	if cleared {
		logger.Info("Relapse cooldown ended")
	}
	return cleared, err
}
