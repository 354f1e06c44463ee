package habits

import (
	"testing"

	"github.com/julianstephens/lifelog/internal/models"
)

func TestProjectElapsedSecondsIdle(t *testing.T) {
	h := models.Habit{IsActive: false, TotalSeconds: 1234, LastUpdated: 0}

	for _, now := range []int64{0, 1000, 999_999_999} {
		if got := ProjectElapsedSeconds(h, now); got != 1234 {
			t.Errorf("idle projection at now=%d: expected 1234, got %d", now, got)
		}
	}
}

func TestProjectElapsedSecondsActive(t *testing.T) {
	h := models.Habit{IsActive: true, TotalSeconds: 100, LastUpdated: 50_000}

	if got := ProjectElapsedSeconds(h, 55_000); got != 105 {
		t.Errorf("expected 105, got %d", got)
	}
	// Sub-second remainder floors away.
	if got := ProjectElapsedSeconds(h, 55_999); got != 105 {
		t.Errorf("expected 105 with floor division, got %d", got)
	}
}

func TestProjectElapsedSecondsNeverBelowTotal(t *testing.T) {
	h := models.Habit{IsActive: true, TotalSeconds: 100, LastUpdated: 50_000}

	if got := ProjectElapsedSeconds(h, 40_000); got != 100 {
		t.Errorf("projection must never drop below stored total, got %d", got)
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		total                         int64
		days, hours, minutes, seconds int64
	}{
		{0, 0, 0, 0, 0},
		{59, 0, 0, 0, 59},
		{60, 0, 0, 1, 0},
		{3661, 0, 1, 1, 1},
		{86400, 1, 0, 0, 0},
		{90061, 1, 1, 1, 1},
		{172_805, 2, 0, 0, 5},
	}

	for _, tt := range tests {
		e := Decompose(tt.total)
		if e.Days != tt.days || e.Hours != tt.hours || e.Minutes != tt.minutes || e.Seconds != tt.seconds {
			t.Errorf("Decompose(%d) = %+v, want %dd %dh %dm %ds", tt.total, e, tt.days, tt.hours, tt.minutes, tt.seconds)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		total int64
		want  string
	}{
		{0, "0s"},
		{5, "5s"},
		{65, "1m 5s"},
		{3600, "1h 0s"},
		{3661, "1h 1m 1s"},
		{86400, "1d 0s"},
		{86700, "1d 5m 0s"}, // zero hours unit is skipped
		{90061, "1d 1h 1m 1s"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.total); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}
