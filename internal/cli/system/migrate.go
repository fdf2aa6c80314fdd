package system

import (
	"fmt"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/migration"
)

// migratable is implemented by every storage backend.
type migratable interface {
	Migrator() (*migration.Runner, error)
}

func runner(ctx *cli.Context) (*migration.Runner, error) {
	m, ok := ctx.Store.(migratable)
	if !ok {
		return nil, fmt.Errorf("storage backend does not support migrations")
	}
	return m.Migrator()
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadStore(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	r, err := runner(ctx)
	if err != nil {
		return err
	}

	count, err := r.ApplyMigrations(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
