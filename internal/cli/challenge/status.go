package challenge

import (
	"fmt"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/tui/components/board"
	"github.com/julianstephens/thirtyday/internal/tui/components/countdown"
	"github.com/julianstephens/thirtyday/internal/tui/components/grid"
)

const (
	barWidth    = 30
	chartHeight = 8
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
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

	name := snap.User.Name
	if name == "" {
		name = "-"
	}
	ctx.Println(tr.T(i18n.MsgTagline, name))

	if !snap.Running {
		ctx.Println(countdown.Days(tr, i18n.MsgStartsIn, snap.UntilStart))
		return nil
	}
	if snap.Preview {
		ctx.Println(tr.T(i18n.MsgPreviewNotice))
	}

	g := grid.New("")
	g.SetDays(snap.Statuses, snap.Journal, snap.Today, snap.Cooldown.Active(now))
	g.Select(snap.Today)
	ctx.Println()
	ctx.Println(g.View())
	ctx.Println()

	ctx.Println(board.ProgressBar(snap.Stats.DaysSucceeded, barWidth))
	ctx.Printf("%s: %d   %s: %d   %s\n",
		tr.T(i18n.MsgCurrentStreak), snap.Stats.Current,
		tr.T(i18n.MsgLongestStreak), snap.Stats.Longest,
		tr.T(i18n.MsgDaysRemaining, snap.Stats.DaysRemaining),
	)
	if snap.CooldownRemaining > 0 {
		ctx.Println(countdown.Clock(tr, i18n.MsgCooldownRemaining, snap.CooldownRemaining))
	}
	ctx.Println(countdown.Days(tr, i18n.MsgEndsIn, snap.UntilEnd))
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}
	tr := i18n.New(prefs.Language)

	snap, err := t.Snapshot(ctx.NowTime())
	if err != nil {
		return err
	}
	s := snap.Stats
	ctx.Printf("%-16s %d/%d\n", tr.T(i18n.MsgDaysSucceeded)+":", s.DaysSucceeded, s.PastDays)
	ctx.Printf("%-16s %d\n", tr.T(i18n.MsgDaysFailed)+":", s.DaysFailed)
	ctx.Printf("%-16s %d\n", tr.T(i18n.MsgCurrentStreak)+":", s.Current)
	ctx.Printf("%-16s %d\n", tr.T(i18n.MsgLongestStreak)+":", s.Longest)
	ctx.Printf("%-16s %s\n", tr.T(i18n.MsgSuccessRate)+":", fmt.Sprintf("%.0f%%", s.SuccessRate))
	ctx.Println()
	ctx.Println(board.Chart(snap.Series, chartHeight))
	return nil
}

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
	t, prefs, err := ctx.Tracker()
	if err != nil {
		return err
	}
	snap, err := t.Snapshot(ctx.NowTime())
	if err != nil {
		return err
	}
	ctx.Println(board.Achievements(i18n.New(prefs.Language), snap.Achievements))
	return nil
}
