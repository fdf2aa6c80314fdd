package i18n

import (
	"math/rand"
	"testing"
)

func TestNewMatchesLanguage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "en"},
		{"vi", "vi"},
		{"vi-VN", "vi"},
		{"en-GB", "en"},
		{"fr", "en"},
		{"", "en"},
		{"not a tag!", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := New(tt.code).Language(); got != tt.want {
				t.Errorf("New(%q).Language() = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	en := New("en")
	vi := New("vi")

	if got := en.T(MsgDaysRemaining, 12); got != "12 days remaining" {
		t.Errorf("en = %q", got)
	}
	if got := vi.T(MsgDaysRemaining, 12); got != "Còn 12 ngày" {
		t.Errorf("vi = %q", got)
	}
	if got := vi.T("First Week"); got != "Tuần đầu tiên" {
		t.Errorf("vi achievement = %q", got)
	}
	if got := vi.T("untranslated text"); got != "untranslated text" {
		t.Errorf("fallback = %q", got)
	}
}

func TestEveryMessageHasVietnamese(t *testing.T) {
	keys := []string{
		MsgAppName, MsgTagline, MsgDaysSucceeded, MsgCurrentStreak, MsgLongestStreak,
		MsgSuccessRate, MsgDaysFailed, MsgDaysRemaining, MsgCooldownTitle, MsgCooldownBody,
		MsgCooldownRemaining, MsgAchievementToast, MsgTracker, MsgDashboard, MsgAchievements,
		MsgSettings, MsgLeaderboard, MsgJournalFor, MsgJournalPrompt, MsgStartsIn, MsgEndsIn,
		MsgPreviewHint, MsgPreviewNotice, MsgWelcome, MsgReminderTitle, MsgReminderBody,
		MsgSyncFailed, MsgFutureDay, MsgNoEntries, MsgYou, MsgShareCreated, MsgChallengeOver,
		MsgCelebration, MsgDismiss,
	}
	keys = append(keys, quotes...)
	for _, k := range keys {
		if _, ok := vietnamese[k]; !ok {
			t.Errorf("missing Vietnamese text for %q", k)
		}
	}
}

func TestQuotes(t *testing.T) {
	if QuoteCount() != 30 {
		t.Fatalf("QuoteCount() = %d, want 30", QuoteCount())
	}
	en := New("en")
	if en.Quote(0) != quotes[0] || en.Quote(30) != quotes[0] || en.Quote(-1) != quotes[1] {
		t.Error("Quote does not wrap around the list")
	}

	r := rand.New(rand.NewSource(1))
	q := en.RandomQuote(r)
	found := false
	for _, s := range quotes {
		if s == q {
			found = true
		}
	}
	if !found {
		t.Errorf("RandomQuote() = %q, not in the list", q)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("vi") || !Supported("en") || Supported("fr") {
		t.Error("Supported() returned the wrong answer")
	}
}
