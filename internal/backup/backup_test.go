package backup

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/thirtyday/internal/config"
	"github.com/julianstephens/thirtyday/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "thirtyday.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT UNIQUE NOT NULL)`,
		`INSERT INTO users (id, name) VALUES (1, 'An'), (2, 'Binh')`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("failed to seed test database: %v", err)
		}
	}
	return dbPath
}

func countUsers(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		t.Fatalf("failed to count users in %s: %v", path, err)
	}
	return n
}

// steppingClock returns a clock that advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want dir %s", backupPath, mgr.GetBackupDir())
	}
	if got := countUsers(t, backupPath); got != 2 {
		t.Errorf("backup has %d users, want 2", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestCreateBackupNameCollisions(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2024, time.November, 3, 10, 15, 30, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	want := []string{
		"thirtyday-20241103-1015.db",
		"thirtyday-20241103-101530.db",
		"thirtyday-20241103-101530-1.db",
	}
	for _, w := range want {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
		if filepath.Base(path) != w {
			t.Errorf("backup name = %s, want %s", filepath.Base(path), w)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Errorf("ListBackups() returned %d, want 3", len(backups))
	}
}

func TestListBackupsOrderAndFilter(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("ListBackups() before any backup = %v, %v", backups, err)
	}

	mgr.now = steppingClock(time.Date(2024, time.November, 1, 8, 0, 0, 0, time.Local), time.Hour)
	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatal(err)
		}
	}
	for _, junk := range []string{"notes.txt", "thirtyday-garbage.db", "other-20241101-0800.db"} {
		os.WriteFile(filepath.Join(mgr.GetBackupDir(), junk), []byte("x"), 0600)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("ListBackups() returned %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not newest first: %v then %v", backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}

	latest, ok, err := mgr.Latest()
	if err != nil || !ok || latest.Name() != "thirtyday-20241101-1000.db" {
		t.Errorf("Latest() = %v, %v, %v", latest.Name(), ok, err)
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2024, time.November, 1, 0, 0, 0, 0, time.Local), time.Hour)

	for i := 0; i < constants.MaxBackups+3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatal(err)
		}
	}
	backups, _ := mgr.ListBackups()
	if len(backups) != constants.MaxBackups {
		t.Errorf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if backups[len(backups)-1].Name() != "thirtyday-20241101-0300.db" {
		t.Errorf("oldest kept = %s", backups[len(backups)-1].Name())
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2024, time.November, 1, 0, 0, 0, 0, time.Local), time.Minute)

	snapshot, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	db, _ := sql.Open("sqlite", dbPath)
	if _, err := db.Exec("INSERT INTO users (id, name) VALUES (3, 'Chi')"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	previous, err := mgr.RestoreBackup(snapshot)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if got := countUsers(t, dbPath); got != 2 {
		t.Errorf("restored database has %d users, want 2", got)
	}
	if got := countUsers(t, previous); got != 3 {
		t.Errorf("pre-restore backup has %d users, want 3", got)
	}
	if exists(dbPath + ".restore.tmp") {
		t.Error("temporary restore file left behind")
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	os.WriteFile(bogus, []byte("this is not sqlite, just some text long enough to have a header"), 0600)
	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("expected error for corrupted backup")
	}
	if got := countUsers(t, dbPath); got != 2 {
		t.Errorf("database changed after failed restore: %d users", got)
	}
}

func TestResolve(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	if got, err := mgr.Resolve(path); err != nil || got != path {
		t.Errorf("Resolve(abs) = %q, %v", got, err)
	}
	if got, err := mgr.Resolve(filepath.Base(path)); err != nil || got != path {
		t.Errorf("Resolve(name) = %q, %v", got, err)
	}
	if _, err := mgr.Resolve("thirtyday-19990101-0000.db"); err == nil {
		t.Error("expected error for unknown backup")
	}
}

func TestParseStamp(t *testing.T) {
	tests := []struct {
		name string
		want time.Time
		ok   bool
	}{
		{"thirtyday-20241103-1015.db", time.Date(2024, 11, 3, 10, 15, 0, 0, time.Local), true},
		{"thirtyday-20241103-101530.db", time.Date(2024, 11, 3, 10, 15, 30, 0, time.Local), true},
		{"thirtyday-20241103-101530-7.db", time.Date(2024, 11, 3, 10, 15, 30, 0, time.Local), true},
		{"thirtyday-latest.db", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := parseStamp(tt.name)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("parseStamp(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Upload(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	putter := &fakePutter{}
	up := NewS3UploaderWithClient(putter, config.Backup{Bucket: "backups", Prefix: "devices/laptop"})
	key, err := up.Upload(context.Background(), path)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if want := "devices/laptop/" + filepath.Base(path); key != want {
		t.Errorf("key = %q, want %q", key, want)
	}
	if *putter.input.Bucket != "backups" || *putter.input.Key != key {
		t.Errorf("put input = %s/%s", *putter.input.Bucket, *putter.input.Key)
	}
	info, _ := os.Stat(path)
	if int64(len(putter.body)) != info.Size() || *putter.input.ContentLength != info.Size() {
		t.Errorf("uploaded %d bytes, want %d", len(putter.body), info.Size())
	}

	putter.err = errors.New("access denied")
	if _, err := up.Upload(context.Background(), path); err == nil {
		t.Error("expected upload error")
	}
	if _, err := up.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewS3UploaderRequiresBucket(t *testing.T) {
	if _, err := NewS3Uploader(context.Background(), config.Backup{}); err == nil {
		t.Error("expected error without bucket")
	}
}
