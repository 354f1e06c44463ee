package models

// Bookmark is a saved link with tags for later retrieval.
type Bookmark struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes,omitempty"`
	Timestamp   int64    `json:"timestamp"` // epoch ms
}
