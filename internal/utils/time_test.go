package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Asia/Ho_Chi_Minh", timezone: "Asia/Ho_Chi_Minh", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation(%q) returned nil location", tt.timezone)
			}
		})
	}
}

func TestNowInTimezone(t *testing.T) {
	now, err := NowInTimezone("UTC")
	if err != nil {
		t.Fatalf("NowInTimezone(UTC) failed: %v", err)
	}
	if now.Location().String() != "UTC" {
		t.Errorf("location = %s, want UTC", now.Location())
	}
	if _, err := NowInTimezone("Nowhere/Special"); err == nil {
		t.Error("expected an error for an invalid timezone")
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"23:59", 1439, false},
		{"8am", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeToMinutes(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNextOccurrence(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		at   string
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2024, 11, 3, 6, 30, 0, 0, loc),
			at:   "08:00",
			want: time.Date(2024, 11, 3, 8, 0, 0, 0, loc),
		},
		{
			name: "already passed rolls to tomorrow",
			now:  time.Date(2024, 11, 3, 9, 0, 0, 0, loc),
			at:   "08:00",
			want: time.Date(2024, 11, 4, 8, 0, 0, 0, loc),
		},
		{
			name: "exact minute is now",
			now:  time.Date(2024, 11, 30, 8, 0, 0, 0, loc),
			at:   "08:00",
			want: time.Date(2024, 11, 30, 8, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(tt.at, tt.now)
			if err != nil {
				t.Fatalf("NextOccurrence failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NextOccurrence("25:99", time.Now()); err == nil {
		t.Error("expected an error for an invalid time")
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := map[string]bool{"": true, "Local": true, "UTC": true, "Europe/London": true, "Mars/Base": false}
	for tz, want := range tests {
		if got := ValidateTimezone(tz); got != want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tz, got, want)
		}
	}
}
