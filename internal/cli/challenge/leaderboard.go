package challenge

import (
	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/tui/components/board"
)

type LeaderboardCmd struct{}

func (c *LeaderboardCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	entries, err := t.Leaderboard(reqCtx)
	if err != nil {
		return err
	}
	ctx.Println(board.Leaderboard(i18n.New(prefs.Language), entries, nil))
	return nil
}
