package challenge

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/i18n"
)

type ShareCmd struct {
	Note string `help:"Short note published with the snapshot."`
}

func (c *ShareCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}

	var extra json.RawMessage
	if c.Note != "" {
		extra, err = json.Marshal(map[string]string{"note": c.Note})
		if err != nil {
			return fmt.Errorf("failed to encode note: %w", err)
		}
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	share, err := t.Share(reqCtx, ctx.NowTime(), extra)
	if err != nil {
		return err
	}
	ctx.Println(i18n.New(prefs.Language).T(i18n.MsgShareCreated, share.URL))
	return nil
}

type ShowShareCmd struct {
	ID string `arg:"" help:"Share id."`
}

func (c *ShowShareCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}
	tr := i18n.New(prefs.Language)

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	share, err := t.GetShare(reqCtx, c.ID)
	if err != nil {
		return err
	}

	ctx.Printf("%s\n", share.UserName)
	ctx.Printf("  %s: %d\n", tr.T(i18n.MsgLongestStreak), share.Streak)
	ctx.Printf("  %s: %d\n", tr.T(i18n.MsgDaysSucceeded), share.DaysSucceeded)
	ctx.Printf("  Shared %s\n", share.CreatedAt.Local().Format(constants.DateFormat+" "+constants.TimeFormat))

	var extra struct {
		Note string `json:"note"`
	}
	if len(share.Extra) > 0 && json.Unmarshal(share.Extra, &extra) == nil && extra.Note != "" {
		ctx.Printf("  %q\n", extra.Note)
	}
	return nil
}
