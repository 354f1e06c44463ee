package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackupEligible(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lifelog.db")
	if err := os.WriteFile(dbPath, []byte("data"), 0o644); err != nil {
		t.Fatalf("write db file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing database file", dbPath, true},
		{"missing file", filepath.Join(dir, "absent.db"), false},
		{"directory", dir, false},
		{"postgres backend marker", "postgresql", false},
		{"postgres connection string", "postgres://db.example.com/lifelog", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackupEligible(tt.path); got != tt.want {
				t.Errorf("BackupEligible(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
