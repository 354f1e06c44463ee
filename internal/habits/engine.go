// Package habits implements the habit time-tracking engine: the start/stop/
// reset state machine, streak continuity decisions, and the read-only
// elapsed-time projection used for live display.
package habits

import (
	"github.com/julianstephens/lifelog/internal/constants"
	"github.com/julianstephens/lifelog/internal/models"
)

// Outcome names the transition branch that was taken, so the degenerate
// cases are visible to callers and tests instead of being silent.
type Outcome string

const (
	// OutcomeStarted opens a new tracking interval.
	OutcomeStarted Outcome = "started"
	// OutcomeStopped closes the interval with continuity preserved; the
	// streak counter is extended.
	OutcomeStopped Outcome = "stopped"
	// OutcomeStreakBroken closes the interval after a gap of more than one
	// day; the old streak is archived and a new one starts at 1.
	OutcomeStreakBroken Outcome = "streak-broken"
	// OutcomeReset archives all accumulated time and re-enters tracking
	// from zero.
	OutcomeReset Outcome = "reset"
	// OutcomeUnchanged means the record was left exactly as it was: the
	// transition did not apply in the habit's current state, or the stop
	// hit the broken-continuity branch with no streak to archive.
	OutcomeUnchanged Outcome = "unchanged"
)

// elapsedSeconds is whole seconds between two epoch-ms instants, clamped to
// zero so a skewed clock can never produce negative accumulation.
func elapsedSeconds(from, to int64) int64 {
	if to <= from {
		return 0
	}
	return (to - from) / 1000
}

// New builds the initial record for a freshly created habit. A new habit
// deliberately starts in the tracking state.
func New(id, owner, name, description string, now int64) models.Habit {
	return models.Habit{
		ID:            id,
		OwnerID:       owner,
		Name:          name,
		Description:   description,
		IsActive:      true,
		CurrentStreak: 0,
		StreakHistory: []models.Streak{},
		TotalSeconds:  0,
		LastUpdated:   now,
		CreatedAt:     now,
	}
}

// Start opens a tracking interval on an idle habit. Accumulated seconds and
// the streak counter carry over untouched: starting resumes accumulation, it
// never restarts it. Starting an already-active habit is a no-op.
func Start(h models.Habit, now int64) (models.Habit, Outcome) {
	if h.IsActive {
		return h, OutcomeUnchanged
	}
	h.IsActive = true
	h.LastActive = now
	h.LastUpdated = now
	return h, OutcomeStarted
}

// Stop closes the open tracking interval and decides whether the current
// streak continues or breaks.
//
// The continuity gap is measured from LastActive, which Start set when the
// now-closing interval began. That means the check is really "did this
// session itself span more than a day", not "how long was the habit idle
// before it". This matches the shipped behavior and is kept on purpose;
// tests pin it down.
func Stop(h models.Habit, now int64) (models.Habit, Outcome) {
	if !h.IsActive {
		return h, OutcomeUnchanged
	}

	additional := elapsedSeconds(h.LastUpdated, now)
	var gapDays int64
	if h.LastActive != 0 {
		gapDays = (now - h.LastActive) / constants.DayMillis
	}

	switch {
	case gapDays <= 1:
		h.CurrentStreak++

	case h.CurrentStreak > 0:
		h.StreakHistory = appendStreak(h.StreakHistory, models.Streak{
			StartDate: h.LastActive - int64(h.CurrentStreak)*constants.DayMillis,
			EndDate:   h.LastActive,
			Kind:      models.StreakCount,
			Value:     int64(h.CurrentStreak),
		})
		h.CurrentStreak = 1

	default:
		// Broken continuity with nothing to archive: the record stays
		// active and untouched. Surprising, but defined; callers must
		// tolerate it.
		return h, OutcomeUnchanged
	}

	h.TotalSeconds += additional
	h.LastActive = now
	h.LastUpdated = now
	h.IsActive = false

	if gapDays <= 1 {
		return h, OutcomeStopped
	}
	return h, OutcomeStreakBroken
}

// Reset archives whatever time has accumulated, including the open interval
// of an active habit, and re-enters tracking from zero. The archived entry
// carries elapsed seconds, not a stop count.
func Reset(h models.Habit, now int64) (models.Habit, Outcome) {
	total := h.TotalSeconds
	if h.IsActive {
		total += elapsedSeconds(h.LastUpdated, now)
	}

	if total > 0 {
		h.StreakHistory = appendStreak(h.StreakHistory, models.Streak{
			StartDate: now - total*1000,
			EndDate:   now,
			Kind:      models.StreakSeconds,
			Value:     total,
		})
	}

	h.IsActive = true
	h.CurrentStreak = 0
	h.LastActive = now
	h.TotalSeconds = 0
	h.LastUpdated = now
	return h, OutcomeReset
}

// appendStreak copies before appending so the caller's slice is never
// mutated through a shared backing array.
func appendStreak(history []models.Streak, s models.Streak) []models.Streak {
	out := make([]models.Streak, len(history), len(history)+1)
	copy(out, history)
	return append(out, s)
}
