package notes

import (
	"testing"

	"github.com/julianstephens/lifelog/internal/models"
)

func TestFilterNotes(t *testing.T) {
	list := []models.Note{
		{ID: "1", Title: "Grocery list", Content: "milk, eggs"},
		{ID: "2", Title: "Meeting", Content: "discuss roadmap", Tags: []string{"Work"}},
		{ID: "3", Title: "Ideas", Content: "side project"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"title match", "grocery", []string{"1"}},
		{"content match", "roadmap", []string{"2"}},
		{"tag match case insensitive", "work", []string{"2"}},
		{"substring across fields", "e", []string{"1", "2", "3"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterNotes(list, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d notes, want %d", len(got), len(tt.want))
			}
			for i, n := range got {
				if n.ID != tt.want[i] {
					t.Errorf("result %d: got id %s, want %s", i, n.ID, tt.want[i])
				}
			}
		})
	}
}
