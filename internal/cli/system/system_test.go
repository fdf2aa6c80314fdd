package system

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/kv"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/storage/sqlite"
	"github.com/julianstephens/thirtyday/internal/tracker"
)

// setupTestContext returns a context over an initialized SQLite store, with
// preferences for a November challenge in UTC.
func setupTestContext(t *testing.T, now time.Time) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	state := kv.NewMemoryStore()
	prefs := models.DefaultPreferences()
	prefs.ChallengeMonth = int(time.November)
	prefs.Timezone = "UTC"
	if err := tracker.SavePreferences(state, prefs); err != nil {
		t.Fatalf("failed to save preferences: %v", err)
	}

	var out bytes.Buffer
	ctx := &cli.Context{
		Store: store,
		KV:    state,
		Out:   &out,
		Now:   func() time.Time { return now },
	}
	ctx.MarkLoaded()
	return ctx, &out
}

func november(day int) time.Time {
	return time.Date(2024, time.November, day, 12, 0, 0, 0, time.UTC)
}
