package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/storage"
	"github.com/julianstephens/thirtyday/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.MarkLoaded()
	ctx.Printf("Initialized thirtyday storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}
	return nil
}

// reset deletes an existing SQLite database. PostgreSQL databases are never
// dropped.
func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return fmt.Errorf("--force is only supported for SQLite storage")
	}
	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		source, err := cli.ExpandPath(c.Source)
		if err == nil {
			if abs, err := filepath.Abs(source); err == nil && abs == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func (c *InitCmd) copyData(ctx *cli.Context) error {
	source, err := cli.OpenStore(c.Source)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	return CopyStore(context.Background(), source, ctx.Store, ctx.Printf)
}

// CopyStore copies users, their day records and shares from src to dst,
// keeping ids.
func CopyStore(ctx context.Context, src, dst storage.Provider, logf func(string, ...interface{})) error {
	logf("  Copying users...\n")
	users, err := src.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get users from source: %w", err)
	}
	for _, u := range users {
		if err := dst.AddUser(ctx, u); err != nil {
			return fmt.Errorf("failed to add user %s: %w", u.Name, err)
		}
	}
	logf("    Copied %d users\n", len(users))

	logf("  Copying progress...\n")
	records := 0
	for _, u := range users {
		days, err := src.GetProgress(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("failed to get progress for %s: %w", u.Name, err)
		}
		for _, d := range days {
			journal := d.Journal
			update := models.ProgressUpdate{UserID: u.ID, Day: d.Day, Checked: d.Checked, Journal: &journal}
			if err := dst.SaveProgress(ctx, update); err != nil {
				return fmt.Errorf("failed to save day %d for %s: %w", d.Day, u.Name, err)
			}
			records++
		}
	}
	logf("    Copied %d day records\n", records)

	logf("  Copying shares...\n")
	shares, err := src.GetAllShares(ctx)
	if err != nil {
		return fmt.Errorf("failed to get shares from source: %w", err)
	}
	for _, s := range shares {
		if err := dst.CreateShare(ctx, s); err != nil {
			return fmt.Errorf("failed to add share %s: %w", s.ID, err)
		}
	}
	logf("    Copied %d shares\n", len(shares))
	return nil
}
