package system

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/models"
)

func TestDebugDBPathCmd(t *testing.T) {
	ctx, out := setupTestContext(t, november(3))

	if err := (&DebugDBPathCmd{}).Run(ctx); err != nil {
		t.Fatalf("db-path failed: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if got["path"] != ctx.Store.GetConfigPath() {
		t.Errorf("path = %q, want %q", got["path"], ctx.Store.GetConfigPath())
	}
}

func TestDebugDumpUserCmd(t *testing.T) {
	ctx, out := setupTestContext(t, november(3))
	bg := context.Background()

	reg, err := ctx.Store.RegisterUser(bg, "Mai")
	if err != nil {
		t.Fatal(err)
	}
	note := "ok"
	if err := ctx.Store.SaveProgress(bg, models.ProgressUpdate{UserID: reg.UserID, Day: 2, Checked: true, Journal: &note}); err != nil {
		t.Fatal(err)
	}

	if err := (&DebugDumpUserCmd{ID: reg.UserID}).Run(ctx); err != nil {
		t.Fatalf("dump-user failed: %v", err)
	}
	var got struct {
		User models.User       `json:"user"`
		Days []models.DayRecord `json:"days"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if got.User.Name != "Mai" || len(got.Days) != 1 || got.Days[0].Day != 2 {
		t.Errorf("dump = %+v", got)
	}
}

func TestDebugDumpUserCmd_NotFound(t *testing.T) {
	ctx, _ := setupTestContext(t, november(3))
	if err := (&DebugDumpUserCmd{ID: 404}).Run(ctx); err == nil {
		t.Error("expected an error for an unknown user")
	}
}

func TestDebugDumpShareCmd(t *testing.T) {
	ctx, out := setupTestContext(t, november(3))
	bg := context.Background()

	reg, err := ctx.Store.RegisterUser(bg, "Mai")
	if err != nil {
		t.Fatal(err)
	}
	share := models.Share{ID: "mai-abc", UserID: reg.UserID, UserName: "Mai", Streak: 4, DaysSucceeded: 5}
	if err := ctx.Store.CreateShare(bg, share); err != nil {
		t.Fatal(err)
	}

	if err := (&DebugDumpShareCmd{ID: "mai-abc"}).Run(ctx); err != nil {
		t.Fatalf("dump-share failed: %v", err)
	}
	if !strings.Contains(out.String(), `"shareId": "mai-abc"`) || !strings.Contains(out.String(), `"streak": 4`) {
		t.Errorf("output = %s", out.String())
	}
}

func TestDebugDumpStateCmd(t *testing.T) {
	ctx, out := setupTestContext(t, november(3))

	if err := (&DebugDumpStateCmd{}).Run(ctx); err != nil {
		t.Fatalf("dump-state failed: %v", err)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if string(got[constants.KeyUser]) != "null" {
		t.Errorf("user = %s, want null", got[constants.KeyUser])
	}
	var prefs models.Preferences
	if err := json.Unmarshal(got[constants.KeyPreferences], &prefs); err != nil {
		t.Fatalf("preferences: %v", err)
	}
	if prefs.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", prefs.Timezone)
	}
}
