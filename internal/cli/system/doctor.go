package system

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/thirtyday/internal/backup"
	"github.com/julianstephens/thirtyday/internal/calendar"
	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/storage/sqlite"
	"github.com/julianstephens/thirtyday/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when the database is unreachable.
	needsDB bool
	// warnOnly failures do not fail the run.
	warnOnly bool
	run      func(*cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Client state", run: checkClientState},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.LoadStore(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ctx.Store.Ping(pingCtx); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	r, err := runner(ctx)
	if err != nil {
		return err
	}
	return r.ValidateVersion()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	r, err := runner(ctx)
	if err != nil {
		return err
	}
	pending, err := r.PendingCount()
	if err != nil {
		return fmt.Errorf("failed to count pending migrations: %w", err)
	}
	if pending > 0 {
		return fmt.Errorf("migrations incomplete: %d pending (run 'thirtyday migrate')", pending)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'thirtyday backup create'")
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	v := validation.New()
	users, err := ctx.Store.GetAllUsers(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}
	results := []validation.ValidationResult{v.ValidateUsers(users)}

	for _, u := range users {
		records, err := ctx.Store.GetProgress(reqCtx, u.ID)
		if err != nil {
			return fmt.Errorf("failed to get progress for user %d: %w", u.ID, err)
		}
		results = append(results, v.ValidateProgress(u.ID, records))
	}

	shares, err := ctx.Store.GetAllShares(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to get shares: %w", err)
	}
	results = append(results, v.ValidateShares(shares))

	var merged validation.ValidationResult
	for _, r := range results {
		merged.Conflicts = append(merged.Conflicts, r.Conflicts...)
	}
	if merged.HasConflicts() {
		return fmt.Errorf("%s", merged.FormatReport())
	}
	return nil
}

func checkClientState(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	return validation.Preferences(prefs)
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.NowTime()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}
	if _, err := calendar.FromPreferences(prefs); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", prefs.Timezone, err)
	}
	return nil
}
