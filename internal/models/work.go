package models

// TaskLabel ranks a work task by leverage.
type TaskLabel string

const (
	LabelHighLeverage         TaskLabel = "high-leverage"
	LabelLowLeverageImportant TaskLabel = "low-leverage-important"
	LabelNiceToHave           TaskLabel = "nice-to-have"
)

// Task is a work item with a completion toggle. CompletedAt is 0 while the
// task is open.
type Task struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Label       TaskLabel `json:"label"`
	Completed   bool      `json:"completed"`
	CreatedAt   int64     `json:"created_at"`             // epoch ms
	CompletedAt int64     `json:"completed_at,omitempty"` // epoch ms
}

// FocusSession is a completed block of focused work.
type FocusSession struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	StartTime   int64  `json:"start_time"` // epoch ms
	EndTime     int64  `json:"end_time"`   // epoch ms
	DurationMin int    `json:"duration_min"`
	Notes       string `json:"notes,omitempty"`
}

// FocusStats counts sessions finished in the trailing day, week, and month.
type FocusStats struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

// Reminder is a short free-text nudge.
type Reminder struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"` // epoch ms
}
