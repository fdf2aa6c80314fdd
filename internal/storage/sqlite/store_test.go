package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "thirtyday.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func strPtr(s string) *string { return &s }

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail before Init")
	}
}

func TestInitAppliesMigrations(t *testing.T) {
	store := setupTestStore(t)

	runner, err := store.Migrator()
	if err != nil {
		t.Fatalf("Migrator failed: %v", err)
	}
	pending, err := runner.PendingCount()
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if pending != 0 {
		t.Errorf("pending migrations after Init = %d", pending)
	}

	// Reopen through Load
	path := store.GetConfigPath()
	store.Close()
	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()
	if err := reopened.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestRegisterUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	first, err := store.RegisterUser(ctx, "Lan")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if first.Existing || first.UserID == 0 {
		t.Errorf("first registration = %+v", first)
	}

	second, err := store.RegisterUser(ctx, "Lan")
	if err != nil {
		t.Fatalf("second RegisterUser failed: %v", err)
	}
	if !second.Existing || second.UserID != first.UserID {
		t.Errorf("second registration = %+v, want existing id %d", second, first.UserID)
	}

	other, err := store.RegisterUser(ctx, "lan")
	if err != nil {
		t.Fatalf("RegisterUser(lan) failed: %v", err)
	}
	if other.UserID == first.UserID {
		t.Error("names should be case sensitive")
	}
}

func TestGetUserNotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.GetUser(context.Background(), 999)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetUser() error = %v, want not found", err)
	}
}

func TestSaveProgressUpsert(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	reg, _ := store.RegisterUser(ctx, "Minh")

	steps := []models.ProgressUpdate{
		{UserID: reg.UserID, Day: 5, Checked: true, Journal: strPtr("felt good")},
		{UserID: reg.UserID, Day: 5, Checked: false},
		{UserID: reg.UserID, Day: 2, Checked: true},
	}
	for _, u := range steps {
		if err := store.SaveProgress(ctx, u); err != nil {
			t.Fatalf("SaveProgress(%+v) failed: %v", u, err)
		}
	}

	got, err := store.GetProgress(ctx, reg.UserID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	want := []models.DayRecord{
		{Day: 2, Checked: true},
		{Day: 5, Checked: false, Journal: "felt good"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetProgress() = %+v, want %+v", got, want)
	}

	// An explicit empty journal clears the text
	if err := store.SaveProgress(ctx, models.ProgressUpdate{UserID: reg.UserID, Day: 5, Journal: strPtr("")}); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}
	got, _ = store.GetProgress(ctx, reg.UserID)
	if got[1].Journal != "" {
		t.Errorf("journal = %q, want empty", got[1].Journal)
	}
}

func TestSaveProgressRejectsUnknownUserAndBadDay(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	if err := store.SaveProgress(ctx, models.ProgressUpdate{UserID: 42, Day: 1, Checked: true}); err == nil {
		t.Error("expected a foreign key error for an unknown user")
	}

	reg, _ := store.RegisterUser(ctx, "An")
	if err := store.SaveProgress(ctx, models.ProgressUpdate{UserID: reg.UserID, Day: 31, Checked: true}); err == nil {
		t.Error("expected a check constraint error for day 31")
	}
}

func TestListCheckedDays(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	a, _ := store.RegisterUser(ctx, "A")
	b, _ := store.RegisterUser(ctx, "B")
	_, _ = store.RegisterUser(ctx, "C")

	for _, d := range []int{1, 2, 4} {
		store.SaveProgress(ctx, models.ProgressUpdate{UserID: a.UserID, Day: d, Checked: true})
	}
	store.SaveProgress(ctx, models.ProgressUpdate{UserID: a.UserID, Day: 3, Checked: false})
	store.SaveProgress(ctx, models.ProgressUpdate{UserID: b.UserID, Day: 9, Checked: true})

	got, err := store.ListCheckedDays(ctx)
	if err != nil {
		t.Fatalf("ListCheckedDays failed: %v", err)
	}
	want := []storage.UserDays{
		{UserID: a.UserID, Name: "A", Days: []int{1, 2, 4}},
		{UserID: b.UserID, Name: "B", Days: []int{9}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListCheckedDays() = %+v, want %+v", got, want)
	}
}

func TestShares(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	reg, _ := store.RegisterUser(ctx, "Hoa")

	share := models.Share{
		ID:            "hoa-123",
		UserID:        reg.UserID,
		UserName:      "Hoa",
		Streak:        6,
		DaysSucceeded: 12,
		Extra:         json.RawMessage(`{"note":"going strong"}`),
		CreatedAt:     time.Date(2024, 11, 12, 8, 0, 0, 0, time.UTC),
	}
	if err := store.CreateShare(ctx, share); err != nil {
		t.Fatalf("CreateShare failed: %v", err)
	}
	if err := store.CreateShare(ctx, share); err == nil {
		t.Error("expected duplicate share id to fail")
	}

	got, err := store.GetShare(ctx, "hoa-123")
	if err != nil {
		t.Fatalf("GetShare failed: %v", err)
	}
	if got.Streak != 6 || got.DaysSucceeded != 12 || string(got.Extra) != `{"note":"going strong"}` {
		t.Errorf("GetShare() = %+v", got)
	}
	if !got.CreatedAt.Equal(share.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, share.CreatedAt)
	}

	if _, err := store.GetShare(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetShare(missing) error = %v, want not found", err)
	}

	all, err := store.GetAllShares(ctx)
	if err != nil || len(all) != 1 {
		t.Errorf("GetAllShares() = %d shares, err %v", len(all), err)
	}
}

func TestAddUserKeepsID(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	created := time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC)
	if err := store.AddUser(ctx, models.User{ID: 17, Name: "Tuan", CreatedAt: created}); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	u, err := store.GetUser(ctx, 17)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.Name != "Tuan" || !u.CreatedAt.Equal(created) {
		t.Errorf("GetUser() = %+v", u)
	}

	reg, err := store.RegisterUser(ctx, "Tuan")
	if err != nil || !reg.Existing || reg.UserID != 17 {
		t.Errorf("RegisterUser after AddUser = %+v, %v", reg, err)
	}
}
