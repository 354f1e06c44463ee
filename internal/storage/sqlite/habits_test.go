package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "lifelog.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHabitRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{
		ID:            uuid.New().String(),
		OwnerID:       "local",
		Name:          "Morning meditation",
		Description:   "10 minutes before coffee",
		IsActive:      true,
		CurrentStreak: 2,
		LastActive:    1_000_000,
		StreakHistory: []models.Streak{
			{StartDate: 0, EndDate: 500_000, Kind: models.StreakCount, Value: 3},
			{StartDate: 500_000, EndDate: 900_000, Kind: models.StreakSeconds, Value: 420},
		},
		TotalSeconds: 600,
		LastUpdated:  1_000_000,
		CreatedAt:    1,
	}

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	got, err := store.GetHabit("local", habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Name != habit.Name || got.Description != habit.Description {
		t.Errorf("text fields mismatch: %+v", got)
	}
	if !got.IsActive || got.CurrentStreak != 2 || got.TotalSeconds != 600 {
		t.Errorf("state fields mismatch: %+v", got)
	}
	if len(got.StreakHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(got.StreakHistory))
	}
	if got.StreakHistory[0].Kind != models.StreakCount || got.StreakHistory[0].Value != 3 {
		t.Errorf("first history entry mismatch: %+v", got.StreakHistory[0])
	}
	if got.StreakHistory[1].Kind != models.StreakSeconds || got.StreakHistory[1].Value != 420 {
		t.Errorf("second history entry mismatch: %+v", got.StreakHistory[1])
	}
}

func TestHabitPutUpdates(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{ID: uuid.New().String(), OwnerID: "local", Name: "reading", LastUpdated: 10, CreatedAt: 10}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	habit.IsActive = true
	habit.TotalSeconds = 90
	habit.LastUpdated = 5000
	if err := store.PutHabit(habit); err != nil {
		t.Fatalf("failed to put habit: %v", err)
	}

	got, err := store.GetHabit("local", habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if !got.IsActive || got.TotalSeconds != 90 || got.LastUpdated != 5000 {
		t.Errorf("update not applied: %+v", got)
	}
	if got.CreatedAt != 10 {
		t.Errorf("created_at must be immutable, got %d", got.CreatedAt)
	}
}

func TestHabitNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetHabit("local", "nope")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.DeleteHabit("local", "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestHabitOwnerScoping(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{ID: uuid.New().String(), OwnerID: "alice", Name: "yoga", LastUpdated: 1, CreatedAt: 1}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if _, err := store.GetHabit("bob", habit.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("cross-owner read should be not-found, got %v", err)
	}

	habits, err := store.GetHabits("bob")
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("expected no habits for other owner, got %d", len(habits))
	}
}

func TestHabitDeleteIsHard(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{ID: uuid.New().String(), OwnerID: "local", Name: "stretching", LastUpdated: 1, CreatedAt: 1}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := store.DeleteHabit("local", habit.ID); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}
	if _, err := store.GetHabit("local", habit.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("deleted habit should be gone, got %v", err)
	}
}

func TestHabitListOrdering(t *testing.T) {
	store := setupTestStore(t)

	for i, name := range []string{"first", "second", "third"} {
		h := models.Habit{ID: uuid.New().String(), OwnerID: "local", Name: name, LastUpdated: int64(i), CreatedAt: int64(i)}
		if err := store.AddHabit(h); err != nil {
			t.Fatalf("failed to add habit %q: %v", name, err)
		}
	}

	habits, err := store.GetHabits("local")
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(habits) != 3 {
		t.Fatalf("expected 3 habits, got %d", len(habits))
	}
	for i, want := range []string{"first", "second", "third"} {
		if habits[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, habits[i].Name)
		}
	}
}
