package backups

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/thirtyday/internal/backup"
	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/storage/sqlite"
)

type fakeUploader struct {
	paths []string
}

func (f *fakeUploader) Upload(_ context.Context, path string) (string, error) {
	f.paths = append(f.paths, path)
	return "thirtyday/" + filepath.Base(path), nil
}

func setupContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "thirtyday.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	ctx := &cli.Context{Store: store, Out: &out}
	ctx.MarkLoaded()
	return ctx, &out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := setupContext(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: ") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupCreate_Upload(t *testing.T) {
	ctx, out := setupContext(t)
	up := &fakeUploader{}
	prev := newUploader
	newUploader = func(context.Context) (Uploader, error) { return up, nil }
	t.Cleanup(func() { newUploader = prev })

	if err := (&BackupCreateCmd{Upload: true}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(up.paths) != 1 {
		t.Fatalf("uploaded %v, want one file", up.paths)
	}
	if !strings.Contains(out.String(), "✓ Uploaded to: thirtyday/"+filepath.Base(up.paths[0])) {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, out := setupContext(t)
	bg := context.Background()

	if _, err := ctx.Store.RegisterUser(bg, "Hoa"); err != nil {
		t.Fatal(err)
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	saved, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Store.RegisterUser(bg, "Binh"); err != nil {
		t.Fatal(err)
	}

	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(saved), Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Database restored successfully!") {
		t.Errorf("output = %q", out.String())
	}

	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	users, err := ctx.Store.GetAllUsers(bg)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].Name != "Hoa" {
		t.Errorf("users after restore = %+v", users)
	}
}

func TestBackupRestore_Cancelled(t *testing.T) {
	ctx, out := setupContext(t)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	saved, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	prev := stdin
	stdin = strings.NewReader("n\n")
	t.Cleanup(func() { stdin = prev })

	if err := (&BackupRestoreCmd{BackupFile: saved}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupRestore_Missing(t *testing.T) {
	ctx, _ := setupContext(t)
	if err := (&BackupRestoreCmd{BackupFile: "nope.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected an error for a missing backup")
	}
}
