package progress

import (
	"testing"

	"github.com/julianstephens/thirtyday/internal/models"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		checked bool
		today   int
		want    models.DayStatus
	}{
		{"not started unchecked", 3, false, 0, models.StatusPending},
		{"not started checked", 3, true, 0, models.StatusPending},
		{"past checked", 2, true, 5, models.StatusSuccess},
		{"past unchecked", 2, false, 5, models.StatusFailure},
		{"today unchecked", 5, false, 5, models.StatusPending},
		{"today checked", 5, true, 5, models.StatusSuccess},
		{"future unchecked", 9, false, 5, models.StatusPending},
		{"future checked in preview", 20, true, 15, models.StatusSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.day, tt.checked, tt.today); got != tt.want {
				t.Errorf("Status(%d, %v, %d) = %v, want %v", tt.day, tt.checked, tt.today, got, tt.want)
			}
		})
	}
}

func TestStatusesIsTotal(t *testing.T) {
	checked := map[int]bool{1: true, 3: true, 30: true}
	for today := -1; today <= 31; today++ {
		grid := Statuses(checked, today)
		for i, s := range grid {
			if s != models.StatusPending && s != models.StatusSuccess && s != models.StatusFailure {
				t.Fatalf("today %d day %d: invalid status %d", today, i+1, s)
			}
		}
	}
}

func TestClampToday(t *testing.T) {
	tests := map[int]int{-4: 0, 0: 0, 12: 12, 30: 30, 31: 30}
	for in, want := range tests {
		if got := ClampToday(in); got != want {
			t.Errorf("ClampToday(%d) = %d, want %d", in, got, want)
		}
	}
}
