package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifelog.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE habits (id TEXT PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits (id, name) VALUES ('h1', 'reading')`); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	return path
}

func TestCreateAndList(t *testing.T) {
	dbPath := createTestDB(t)
	manager := NewManager(dbPath)

	backupPath, err := manager.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := manager.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := manager.Create(); err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestListEmptyDir(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "lifelog.db"))
	backups, err := manager.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestore(t *testing.T) {
	dbPath := createTestDB(t)
	manager := NewManager(dbPath)

	backupPath, err := manager.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// mutate the live database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM habits`); err != nil {
		t.Fatalf("failed to delete rows: %v", err)
	}
	db.Close()

	if err := manager.Restore(backupPath); err != nil {
		t.Fatalf("failed to restore backup: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after restore, got %d", count)
	}
}

func TestJSONStoreBackupAndRestore(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "lifelog.json")
	original := []byte(`{"habits":{"h1":{"id":"h1","name":"reading"}}}`)
	if err := os.WriteFile(jsonPath, original, 0600); err != nil {
		t.Fatalf("failed to write json store: %v", err)
	}

	manager := NewManager(jsonPath)
	backupPath, err := manager.Create()
	if err != nil {
		t.Fatalf("failed to back up json store: %v", err)
	}

	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(got) != string(original) {
		t.Error("json backup should be a byte-for-byte copy")
	}

	if err := os.WriteFile(jsonPath, []byte(`{"habits":{}}`), 0600); err != nil {
		t.Fatalf("failed to overwrite json store: %v", err)
	}
	if err := manager.Restore(backupPath); err != nil {
		t.Fatalf("failed to restore json store: %v", err)
	}
	restored, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to read restored store: %v", err)
	}
	if string(restored) != string(original) {
		t.Error("restore should bring back the original json document")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	dbPath := createTestDB(t)
	manager := NewManager(dbPath)

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database at all, just text"), 0600); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	if err := manager.Restore(garbage); err == nil {
		t.Fatal("expected error restoring invalid backup")
	}
}
