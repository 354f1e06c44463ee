package jsonfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "lifelog.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func TestInitRefusesExisting(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Init(); err == nil || !strings.Contains(err.Error(), "already initialized") {
		t.Fatalf("expected already-initialized error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "lifelog.json"))
	if err := store.Load(); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("expected not-initialized error, got %v", err)
	}
}

func TestHabitPersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelog.json")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	habit := models.Habit{
		ID:            "h1",
		OwnerID:       "local",
		Name:          "journaling",
		CurrentStreak: 4,
		StreakHistory: []models.Streak{{Kind: models.StreakSeconds, Value: 900, EndDate: 10}},
		TotalSeconds:  1200,
		LastUpdated:   10,
		CreatedAt:     1,
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	got, err := reopened.GetHabit("local", "h1")
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.CurrentStreak != 4 || got.TotalSeconds != 1200 {
		t.Errorf("habit state lost across reload: %+v", got)
	}
	if len(got.StreakHistory) != 1 || got.StreakHistory[0].Kind != models.StreakSeconds {
		t.Errorf("history lost across reload: %+v", got.StreakHistory)
	}
}

func TestNotFoundMapping(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetHabit("local", "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("habit: expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetNote("local", "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("note: expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteWorkout("local", "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("workout: expected ErrNotFound, got %v", err)
	}
}

func TestOwnerScoping(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddNote(models.Note{ID: "n1", OwnerID: "alice", Title: "hers", Timestamp: 1}); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	if _, err := store.GetNote("bob", "n1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("cross-owner read should be not-found, got %v", err)
	}
	notes, err := store.GetNotes("bob")
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes for other owner, got %d", len(notes))
	}
}

func TestMealRangeFilter(t *testing.T) {
	store := setupTestStore(t)

	for id, ts := range map[string]int64{"m1": 100, "m2": 500, "m3": 2000} {
		meal := models.Meal{ID: id, OwnerID: "local", MealType: models.MealSnack, Timestamp: ts}
		if err := store.AddMeal(meal); err != nil {
			t.Fatalf("failed to add meal: %v", err)
		}
	}

	meals, err := store.GetMeals("local", 100, 1000)
	if err != nil {
		t.Fatalf("failed to query meals: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals in range, got %d", len(meals))
	}
	if meals[0].Timestamp != 100 || meals[1].Timestamp != 500 {
		t.Errorf("meals not ordered by timestamp: %+v", meals)
	}
}

func TestListOrdering(t *testing.T) {
	store := setupTestStore(t)

	for i, id := range []string{"a", "b", "c"} {
		note := models.Note{ID: id, OwnerID: "local", Title: id, Timestamp: int64(i)}
		if err := store.AddNote(note); err != nil {
			t.Fatalf("failed to add note: %v", err)
		}
	}

	notes, err := store.GetNotes("local")
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	// newest first
	if notes[0].ID != "c" || notes[2].ID != "a" {
		t.Errorf("notes not ordered newest first: %+v", notes)
	}
}
