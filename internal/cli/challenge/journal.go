package challenge

import (
	"github.com/julianstephens/thirtyday/internal/cli"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/i18n"
)

type JournalCmd struct {
	Day  int    `arg:"" help:"Day of the entry (1-30)."`
	Text string `arg:"" optional:"" help:"New entry text. Omit to print the current entry."`
}

func (c *JournalCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}
	tr := i18n.New(prefs.Language)

	if c.Text == "" {
		text, err := t.Journal(c.Day)
		if err != nil {
			return err
		}
		ctx.Println(tr.T(i18n.MsgJournalFor, c.Day))
		if text == "" {
			ctx.Println("  (empty)")
			return nil
		}
		ctx.Println(text)
		return nil
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	syncErr, err := t.SaveJournal(reqCtx, c.Day, c.Text)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Saved journal for day %d\n", c.Day)
	if syncErr != nil {
		ctx.Println(tr.T(i18n.MsgSyncFailed, apperrors.PublicMessage(syncErr)))
	}
	return nil
}
