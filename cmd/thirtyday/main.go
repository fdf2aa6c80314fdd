package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/cli/backups"
	"github.com/julianstephens/thirtyday/internal/cli/challenge"
	"github.com/julianstephens/thirtyday/internal/cli/settings"
	"github.com/julianstephens/thirtyday/internal/cli/system"
	"github.com/julianstephens/thirtyday/internal/constants"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path, PostgreSQL connection string, or 'keyring'. PostgreSQL credentials must NOT be embedded in the connection string." type:"string" env:"THIRTYDAY_CONFIG" default:"${defaultConfig}"`
	Server  string `help:"Sync through a thirtyday server at this URL instead of the local database." env:"THIRTYDAY_SERVER"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
	Preview bool   `help:"Preview the challenge as if it were running (day 15)."`

	Tui          system.TuiCmd             `cmd:"" help:"Launch the interactive tracker." default:"1"`
	Register     challenge.RegisterCmd     `cmd:"" help:"Register (or sign back in) by name."`
	Check        challenge.CheckCmd        `cmd:"" help:"Toggle a day as a success."`
	Journal      challenge.JournalCmd      `cmd:"" help:"Show or write the journal entry for a day."`
	Status       challenge.StatusCmd       `cmd:"" help:"Show the challenge grid and streaks."`
	Stats        challenge.StatsCmd        `cmd:"" help:"Show progress statistics."`
	Achievements challenge.AchievementsCmd `cmd:"" help:"List achievements."`
	Leaderboard  challenge.LeaderboardCmd  `cmd:"" help:"Show the longest-streak leaderboard."`
	Share        challenge.ShareCmd        `cmd:"" help:"Create a share link for your progress."`
	ShowShare    challenge.ShowShareCmd    `cmd:"" name:"show-share" help:"Show a shared progress snapshot."`
	Settings     settings.SettingsCmd      `cmd:"" help:"Manage client preferences."`
	Remind       system.RemindCmd          `cmd:"" help:"Run the daily reminder daemon."`
	Serve        system.ServeCmd           `cmd:"" help:"Run the HTTP gateway."`

	Init    system.InitCmd    `cmd:"" help:"Initialize thirtyday storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Debug   system.DebugCmd   `cmd:"" help:"Debug commands for troubleshooting."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Show keyring availability."`
	} `cmd:"" help:"Manage the database connection string in the OS keyring."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A 30-day abstinence challenge tracker."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":       constants.Version,
			"defaultConfig": constants.DefaultConfigPath,
		},
	)

	stateDir, err := cli.StateDir(CLI.Config, constants.DefaultConfigPath)
	if err != nil {
		apperrors.Fatal(err)
	}

	command := kctx.Command()
	server := command == "serve" || command == "remind"
	if err := logger.Init(logger.Config{Debug: CLI.Verbose, ConfigDir: stateDir, Server: server}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	state, err := cli.OpenKV(stateDir)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:     store,
		KV:        state,
		ServerURL: CLI.Server,
		Preview:   CLI.Preview,
		Out:       os.Stdout,
	}
	logger.Debug("Starting", "command", command, "config", CLI.Config, "state", filepath.Join(stateDir, cli.ClientStateFile))

	err = kctx.Run(appCtx)
	appCtx.Close()
	apperrors.Fatal(err)
}
