package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/constants"
)

type DebugCmd struct {
	DBPath    *DebugDBPathCmd    `cmd:"" help:"Show database path."`
	DumpUser  *DebugDumpUserCmd  `cmd:"" help:"Dump a user and their day records as JSON."`
	DumpShare *DebugDumpShareCmd `cmd:"" help:"Dump a share as JSON."`
	DumpState *DebugDumpStateCmd `cmd:"" help:"Dump the local client state as JSON."`
}

func printJSON(ctx *cli.Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpUserCmd struct {
	ID int64 `arg:"" help:"User id."`
}

func (cmd *DebugDumpUserCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadStore(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	user, err := ctx.Store.GetUser(reqCtx, cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get user %d: %w", cmd.ID, err)
	}
	days, err := ctx.Store.GetProgress(reqCtx, cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}

	return printJSON(ctx, map[string]interface{}{
		"user": user,
		"days": days,
	})
}

type DebugDumpShareCmd struct {
	ID string `arg:"" help:"Share id."`
}

func (cmd *DebugDumpShareCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadStore(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	share, err := ctx.Store.GetShare(reqCtx, cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get share %s: %w", cmd.ID, err)
	}
	return printJSON(ctx, share)
}

// stateKeys are the client state entries, in dump order.
var stateKeys = []string{
	constants.KeyUser,
	constants.KeyDays,
	constants.KeyJournal,
	constants.KeyAchievements,
	constants.KeyCooldown,
	constants.KeyUnsynced,
	constants.KeyPreferences,
}

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *cli.Context) error {
	out := make(map[string]json.RawMessage, len(stateKeys))
	for _, key := range stateKeys {
		raw, ok, err := ctx.KV.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !ok {
			out[key] = json.RawMessage("null")
			continue
		}
		out[key] = json.RawMessage(raw)
	}
	return printJSON(ctx, out)
}
