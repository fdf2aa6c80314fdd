// Package challenge holds the day-to-day commands: registering, checking
// days, journaling and reading progress back.
package challenge

import (
	"github.com/julianstephens/thirtyday/internal/cli"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/i18n"
)

type RegisterCmd struct {
	Name string `arg:"" help:"Your display name. Registering an existing name logs you in."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}
	tr := i18n.New(prefs.Language)

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	res, err := t.Register(reqCtx, c.Name)
	if err != nil {
		return err
	}

	switch {
	case res.SyncErr != nil:
		ctx.Printf("Saved %q locally.\n", res.Name)
		ctx.Println(tr.T(i18n.MsgSyncFailed, apperrors.PublicMessage(res.SyncErr)))
	case res.Existing:
		ctx.Printf("✓ Welcome back, %s (id %d)\n", res.Name, res.UserID)
	default:
		ctx.Printf("✓ Registered %s (id %d)\n", res.Name, res.UserID)
	}
	if res.Pulled > 0 {
		ctx.Printf("  Restored %d checked day(s) from the server\n", res.Pulled)
	}
	for _, a := range res.NewlyUnlocked {
		ctx.Println(tr.T(i18n.MsgAchievementToast, a.Icon, tr.T(a.Title)))
	}
	return nil
}
