package habits

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/storage"
)

// fakeStore implements just the habit portion of storage.Provider. The
// embedded interface panics on anything else, which is what we want: the
// habit service must never touch another collection.
type fakeStore struct {
	storage.Provider
	habits map[string]models.Habit
	puts   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{habits: make(map[string]models.Habit)}
}

func (f *fakeStore) AddHabit(h models.Habit) error {
	f.habits[h.ID] = h
	return nil
}

func (f *fakeStore) GetHabit(owner, id string) (models.Habit, error) {
	h, ok := f.habits[id]
	if !ok || h.OwnerID != owner {
		return models.Habit{}, apperrors.NotFound("habit", id)
	}
	return h, nil
}

func (f *fakeStore) GetHabits(owner string) ([]models.Habit, error) {
	var out []models.Habit
	for _, h := range f.habits {
		if h.OwnerID == owner {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeStore) PutHabit(h models.Habit) error {
	f.habits[h.ID] = h
	f.puts++
	return nil
}

func (f *fakeStore) DeleteHabit(owner, id string) error {
	if _, ok := f.habits[id]; !ok {
		return apperrors.NotFound("habit", id)
	}
	delete(f.habits, id)
	return nil
}

func atMillis(ms int64) FixedClock {
	return FixedClock{Time: time.UnixMilli(ms)}
}

func TestServiceCreateRejectsBlankName(t *testing.T) {
	svc := NewService(newFakeStore(), atMillis(0))

	_, err := svc.Create("local", "   ", "")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceCreateStartsTracking(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, atMillis(42_000))

	h, err := svc.Create("local", "journaling", "evening pages")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !h.IsActive || h.LastUpdated != 42_000 {
		t.Errorf("expected active habit anchored at 42000, got %+v", h)
	}
	if _, ok := store.habits[h.ID]; !ok {
		t.Error("habit was not persisted")
	}
}

func TestServiceStopRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, atMillis(0))

	h, err := svc.Create("local", "reading", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	svc.clock = atMillis(3_600_000)
	stopped, err := svc.Stop("local", h.ID)
	if err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if stopped.TotalSeconds != 3600 || stopped.CurrentStreak != 1 {
		t.Errorf("after stop: %+v", stopped)
	}

	svc.clock = atMillis(3_700_000)
	started, err := svc.Start("local", h.ID)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if started.TotalSeconds != 3600 {
		t.Errorf("start must not lose accumulated seconds, got %d", started.TotalSeconds)
	}
	if started.CurrentStreak != 1 {
		t.Errorf("start must not change the streak, got %d", started.CurrentStreak)
	}
}

func TestServiceDegenerateStopSkipsWrite(t *testing.T) {
	store := newFakeStore()
	anchor := int64(1_000_000)
	store.habits["h1"] = models.Habit{
		ID: "h1", OwnerID: "local", IsActive: true, CurrentStreak: 0,
		LastActive: anchor, LastUpdated: anchor,
	}
	svc := NewService(store, atMillis(anchor+3*24*60*60*1000))

	got, err := svc.Stop("local", "h1")
	if err != nil {
		t.Fatalf("degenerate stop must not error: %v", err)
	}
	if !got.IsActive {
		t.Error("record must remain active")
	}
	if store.puts != 0 {
		t.Errorf("no-op transition must not write, saw %d puts", store.puts)
	}
}

func TestServiceNotFoundPropagates(t *testing.T) {
	svc := NewService(newFakeStore(), atMillis(0))

	for name, fn := range map[string]func() error{
		"start": func() error { _, err := svc.Start("local", "missing"); return err },
		"stop":  func() error { _, err := svc.Stop("local", "missing"); return err },
		"reset": func() error { _, err := svc.Reset("local", "missing"); return err },
	} {
		if err := fn(); !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestServiceResetArchivesInFlightTime(t *testing.T) {
	store := newFakeStore()
	store.habits["h1"] = models.Habit{
		ID: "h1", OwnerID: "local", IsActive: true, TotalSeconds: 500,
		LastActive: 100_000, LastUpdated: 100_000,
	}
	svc := NewService(store, atMillis(160_000))

	got, err := svc.Reset("local", "h1")
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(got.StreakHistory) != 1 || got.StreakHistory[0].Value != 560 {
		t.Fatalf("expected archived 560 seconds, got %+v", got.StreakHistory)
	}
	if got.TotalSeconds != 0 || !got.IsActive {
		t.Errorf("reset must restart tracking at zero, got %+v", got)
	}
}

func TestServiceOwnerScoping(t *testing.T) {
	store := newFakeStore()
	store.habits["h1"] = models.Habit{ID: "h1", OwnerID: "alice", IsActive: false}
	svc := NewService(store, atMillis(0))

	if _, err := svc.Start("bob", "h1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("cross-owner access should be not-found, got %v", err)
	}
}
