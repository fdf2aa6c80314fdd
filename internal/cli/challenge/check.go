package challenge

import (
	"fmt"

	"github.com/julianstephens/thirtyday/internal/cli"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/tui/components/countdown"
)

type CheckCmd struct {
	Day int `arg:"" optional:"" help:"Day to toggle (1-30). Defaults to today."`
}

func (c *CheckCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}
	tr := i18n.New(prefs.Language)
	now := ctx.NowTime()

	snap, err := t.Snapshot(now)
	if err != nil {
		return err
	}
	if !snap.Running {
		return fmt.Errorf("%s", countdown.Days(tr, i18n.MsgStartsIn, snap.UntilStart))
	}

	day := c.Day
	if day == 0 {
		day = snap.Today
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	res, err := t.Toggle(reqCtx, day, now)
	if err != nil {
		return err
	}

	if res.Checked {
		ctx.Printf("✓ Day %d checked\n", res.Day)
	} else {
		ctx.Printf("Day %d unchecked\n", res.Day)
	}
	if res.Relapse {
		ctx.Println(tr.T(i18n.MsgCooldownTitle) + ": " + tr.T(i18n.MsgCooldownBody))
	}
	for _, a := range res.NewlyUnlocked {
		ctx.Println(tr.T(i18n.MsgAchievementToast, a.Icon, tr.T(a.Title)))
	}
	if res.Quote != "" {
		ctx.Printf("\n  %q\n", res.Quote)
	}
	if res.SyncErr != nil {
		ctx.Println(tr.T(i18n.MsgSyncFailed, apperrors.PublicMessage(res.SyncErr)))
	}
	return nil
}
