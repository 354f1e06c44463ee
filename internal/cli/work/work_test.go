package work

import (
	"testing"
	"time"

	"github.com/julianstephens/lifelog/internal/models"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ms := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	sessions := []models.FocusSession{
		{ID: "a", EndTime: ms(2 * time.Hour)},
		{ID: "b", EndTime: ms(3 * 24 * time.Hour)},
		{ID: "c", EndTime: ms(20 * 24 * time.Hour)},
		{ID: "d", EndTime: ms(45 * 24 * time.Hour)},
	}

	stats := ComputeStats(sessions, now)
	if stats.Daily != 1 {
		t.Errorf("daily: got %d, want 1", stats.Daily)
	}
	if stats.Weekly != 2 {
		t.Errorf("weekly: got %d, want 2", stats.Weekly)
	}
	if stats.Monthly != 3 {
		t.Errorf("monthly: got %d, want 3", stats.Monthly)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	if stats.Daily != 0 || stats.Weekly != 0 || stats.Monthly != 0 {
		t.Errorf("empty sessions should yield zero stats, got %+v", stats)
	}
}
