package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	fsys := migrationFS(map[string]string{
		"001_users.sql":    "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE);",
		"002_progress.sql": "CREATE TABLE user_progress (user_id INTEGER, day INTEGER, PRIMARY KEY (user_id, day));",
		"README.md":        "ignored",
	})
	runner := NewRunner(db, fsys, DriverSQLite)

	pending, err := runner.PendingCount()
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if pending != 2 {
		t.Errorf("pending = %d, want 2", pending)
	}

	var logs []string
	count, err := runner.ApplyMigrations(func(s string) { logs = append(logs, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 2 {
		t.Errorf("applied %d migrations, want 2", count)
	}
	if len(logs) == 0 {
		t.Error("expected progress messages")
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Second run is a no-op
	count, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if count != 0 {
		t.Errorf("second run applied %d migrations, want 0", count)
	}
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db := openTestDB(t)
	fsys := migrationFS(map[string]string{
		"001_ok.sql":     "CREATE TABLE a (id INTEGER);",
		"002_broken.sql": "CREATE TABLE oops (",
	})
	runner := NewRunner(db, fsys, DriverSQLite)

	count, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected an error from the broken migration")
	}
	if count != 1 {
		t.Errorf("applied %d migrations before failure, want 1", count)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestReadMigrationFilesErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"missing underscore", map[string]string{"001.sql": ""}, "invalid migration filename"},
		{"not a number", map[string]string{"abc_init.sql": ""}, "invalid version number"},
		{"zero version", map[string]string{"000_init.sql": ""}, "must be at least 1"},
		{"duplicate", map[string]string{"001_a.sql": "", "1_b.sql": ""}, "duplicate migration version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(openTestDB(t), migrationFS(tt.files), DriverSQLite)
			_, err := runner.ReadMigrationFiles()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ReadMigrationFiles() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestValidateVersionRejectsNewerDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{"001_init.sql": "SELECT 1;"}), DriverSQLite)

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected an error for a database newer than the application")
	}
}
