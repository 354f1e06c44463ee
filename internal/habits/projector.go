package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifelog/internal/models"
)

// ProjectElapsedSeconds derives the live "time tracked" value for display.
// Idle habits project their stored total; active habits add the open
// interval. Pure: never writes, never returns less than TotalSeconds.
func ProjectElapsedSeconds(h models.Habit, now int64) int64 {
	if !h.IsActive {
		return h.TotalSeconds
	}
	return h.TotalSeconds + elapsedSeconds(h.LastUpdated, now)
}

// Elapsed is a total-seconds value decomposed into display units.
type Elapsed struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Total   int64
}

// Decompose splits total seconds into days/hours/minutes/seconds.
func Decompose(total int64) Elapsed {
	if total < 0 {
		total = 0
	}
	return Elapsed{
		Days:    total / 86400,
		Hours:   total / 3600 % 24,
		Minutes: total / 60 % 60,
		Seconds: total % 60,
		Total:   total,
	}
}

// String renders the non-zero units plus always the seconds unit,
// e.g. "1d 5m 2s", "3h 10s", "0s".
func (e Elapsed) String() string {
	var parts []string
	if e.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", e.Days))
	}
	if e.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", e.Hours))
	}
	if e.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", e.Minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", e.Seconds))
	return strings.Join(parts, " ")
}

// FormatElapsed is shorthand for Decompose(total).String().
func FormatElapsed(total int64) string {
	return Decompose(total).String()
}
