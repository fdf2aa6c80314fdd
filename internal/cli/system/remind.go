package system

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/notifier"
	"github.com/julianstephens/thirtyday/internal/scheduler"
	"github.com/julianstephens/thirtyday/internal/utils"
)

type RemindCmd struct {
	At     string `help:"Reminder time (HH:MM). Defaults to the reminder_time setting."`
	Once   bool   `help:"Send one reminder now and exit."`
	DryRun bool   `help:"Print reminders to stdout instead of sending them to the tray app."`
}

// newSender picks the notification target. Tests replace it.
var newSender = func(dryRun bool, w io.Writer) notifier.Sender {
	if dryRun {
		return notifier.Writer{W: w}
	}
	return notifier.New()
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if !prefs.NotificationsEnabled && !c.Once {
		ctx.Println("Notifications are disabled in settings. Enable them with 'thirtyday settings --notifications-enabled'.")
		return nil
	}

	loc, err := utils.LoadLocation(prefs.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", prefs.Timezone, err)
	}

	s, err := scheduler.New(t, newSender(c.DryRun, ctx.Writer()), loc,
		scheduler.WithTranslator(i18n.New(prefs.Language)),
		scheduler.WithClock(ctx.NowTime),
	)
	if err != nil {
		return err
	}

	if c.Once {
		defer s.Shutdown()
		reqCtx, cancel := ctx.RequestContext()
		defer cancel()
		sent, err := s.Remind(reqCtx)
		if err != nil {
			return fmt.Errorf("failed to send reminder: %w", err)
		}
		if !sent {
			ctx.Println("Nothing to remind: today is already checked or the challenge is not running.")
		}
		return nil
	}

	at := c.At
	if at == "" {
		at = prefs.ReminderTime
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Start(runCtx, at); err != nil {
		return err
	}
	if next, err := s.NextReminder(); err == nil {
		ctx.Printf("Reminder daemon running. Next reminder at %s\n", next.In(loc).Format("2006-01-02 15:04"))
	}
	logger.Info("Reminder daemon started", "at", at, "timezone", loc.String())

	<-runCtx.Done()
	logger.Info("Reminder daemon stopping")
	return s.Shutdown()
}
