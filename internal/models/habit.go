package models

// StreakKind distinguishes the two archival paths that append to a habit's
// streak history. A streak archived because a stop broke continuity carries a
// consecutive-stop count; a streak archived by a reset carries an
// elapsed-seconds total. The two are different units and must not be mixed.
type StreakKind string

const (
	StreakCount   StreakKind = "count"
	StreakSeconds StreakKind = "seconds"
)

// Streak is an immutable history entry. Once appended to a habit's
// StreakHistory it is never modified or removed.
type Streak struct {
	StartDate int64      `json:"start_date"` // epoch ms
	EndDate   int64      `json:"end_date"`   // epoch ms
	Kind      StreakKind `json:"kind"`
	Value     int64      `json:"value"`
}

// Habit is a trackable activity with an accumulating active-time counter.
// All timestamps are Unix epoch milliseconds. LastActive == 0 means the
// habit has never recorded a session boundary.
type Habit struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"owner_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	IsActive      bool     `json:"is_active"`
	CurrentStreak int      `json:"current_streak"`
	LastActive    int64    `json:"last_active,omitempty"`
	StreakHistory []Streak `json:"streak_history"`
	TotalSeconds  int64    `json:"total_seconds"`
	LastUpdated   int64    `json:"last_updated"`
	CreatedAt     int64    `json:"created_at"`
}
