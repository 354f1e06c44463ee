package utils

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	loc := time.UTC
	noon := time.Date(2026, 3, 14, 12, 30, 45, 0, loc)

	start, end := DayBounds(noon)

	wantStart := time.Date(2026, 3, 14, 0, 0, 0, 0, loc).UnixMilli()
	if start != wantStart {
		t.Errorf("start = %d, want %d", start, wantStart)
	}
	wantEnd := time.Date(2026, 3, 15, 0, 0, 0, 0, loc).UnixMilli() - 1
	if end != wantEnd {
		t.Errorf("end = %d, want %d", end, wantEnd)
	}
	if end-start != 24*60*60*1000-1 {
		t.Errorf("day span = %d ms", end-start)
	}
}

func TestDayBoundsContainTime(t *testing.T) {
	now := time.Date(2026, 1, 1, 23, 59, 59, 999_000_000, time.UTC)
	start, end := DayBounds(now)
	ms := now.UnixMilli()
	if ms < start || ms > end {
		t.Errorf("timestamp %d outside its own day [%d, %d]", ms, start, end)
	}
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	weekAgo := TrailingWindow(now, 7)
	want := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC).UnixMilli()
	if weekAgo != want {
		t.Errorf("TrailingWindow(7) = %d, want %d", weekAgo, want)
	}
}
