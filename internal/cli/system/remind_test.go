package system

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/julianstephens/thirtyday/internal/notifier"
	"github.com/julianstephens/thirtyday/internal/tracker"
)

type sentNotification struct {
	title string
	body  string
}

type recordingSender struct {
	sent []sentNotification
}

func (r *recordingSender) Notify(_ context.Context, title, body string) error {
	r.sent = append(r.sent, sentNotification{title: title, body: body})
	return nil
}

func withSender(t *testing.T, s notifier.Sender) {
	t.Helper()
	prev := newSender
	newSender = func(bool, io.Writer) notifier.Sender { return s }
	t.Cleanup(func() { newSender = prev })
}

func TestRemindCmd_OnceSendsReminder(t *testing.T) {
	ctx, _ := setupTestContext(t, november(3))
	rec := &recordingSender{}
	withSender(t, rec)

	if err := (&RemindCmd{Once: true}).Run(ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if len(rec.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(rec.sent))
	}
	if got := rec.sent[0]; got.title != "Daily check-in" || got.body != "Day 3 of 30. Did you make it through today?" {
		t.Errorf("notification = %+v", got)
	}
}

func TestRemindCmd_OnceSkipsCheckedDay(t *testing.T) {
	ctx, out := setupTestContext(t, november(3))
	rec := &recordingSender{}
	withSender(t, rec)

	tr, _, err := ctx.Tracker()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Toggle(context.Background(), 3, november(3)); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if err := (&RemindCmd{Once: true}).Run(ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if len(rec.sent) != 0 {
		t.Errorf("sent %+v, want nothing", rec.sent)
	}
	if !strings.Contains(out.String(), "Nothing to remind") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRemindCmd_NotificationsDisabled(t *testing.T) {
	ctx, out := setupTestContext(t, november(3))
	rec := &recordingSender{}
	withSender(t, rec)

	if err := (&RemindCmd{}).Run(ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if !strings.Contains(out.String(), "Notifications are disabled") {
		t.Errorf("output = %q", out.String())
	}
	if len(rec.sent) != 0 {
		t.Errorf("sent %+v, want nothing", rec.sent)
	}
}

func TestRemindCmd_DryRunWritesToOutput(t *testing.T) {
	ctx, out := setupTestContext(t, november(3))

	prefs, _ := ctx.Preferences()
	prefs.Language = "vi"
	if err := tracker.SavePreferences(ctx.KV, prefs); err != nil {
		t.Fatal(err)
	}

	if err := (&RemindCmd{Once: true, DryRun: true}).Run(ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if !strings.Contains(out.String(), "[Điểm danh hằng ngày]") {
		t.Errorf("output = %q", out.String())
	}
}
