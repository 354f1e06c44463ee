// Package utils holds small helpers shared across commands.
package utils

import "time"

// StartOfDay returns the epoch-millisecond timestamp of local midnight for
// the day containing t.
func StartOfDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli()
}

// EndOfDay returns the last millisecond of the day containing t.
func EndOfDay(t time.Time) int64 {
	y, m, d := t.Date()
	next := time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
	return next.UnixMilli() - 1
}

// DayBounds returns the [start, end] millisecond range of the day containing t.
func DayBounds(t time.Time) (int64, int64) {
	return StartOfDay(t), EndOfDay(t)
}

// TrailingWindow returns the epoch-millisecond timestamp n days before t.
func TrailingWindow(t time.Time, days int) int64 {
	return t.AddDate(0, 0, -days).UnixMilli()
}
