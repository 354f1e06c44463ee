package models

// Note is a free-form text note with optional tags.
type Note struct {
	ID        string   `json:"id"`
	OwnerID   string   `json:"owner_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags,omitempty"`
	Timestamp int64    `json:"timestamp"` // epoch ms, updated on every edit
}
