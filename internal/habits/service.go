package habits

import (
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/logger"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/storage"
)

// Service executes habit lifecycle transitions as read-modify-write cycles
// against the store. The engine functions themselves are pure; this layer
// owns the single write per transition. Store failures propagate verbatim —
// no retries, no silent recovery.
//
// Callers are expected to serialize transitions on a single habit id; the
// store only guarantees atomicity of each individual write.
type Service struct {
	store storage.Provider
	clock Clock
}

// NewService builds a service over the given store. A nil clock defaults to
// the system clock.
func NewService(store storage.Provider, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock
	}
	return &Service{store: store, clock: clock}
}

// Create validates the name, writes the initial tracking-state record, and
// returns it.
func (s *Service) Create(owner, name, description string) (models.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return models.Habit{}, errors.InvalidInput("habit name must not be empty")
	}

	h := New(uuid.New().String(), owner, name, description, Millis(s.clock.Now()))
	if err := s.store.AddHabit(h); err != nil {
		return models.Habit{}, err
	}
	logger.Info("Created habit", "id", h.ID, "name", h.Name)
	return h, nil
}

// Get reads a single habit.
func (s *Service) Get(owner, id string) (models.Habit, error) {
	return s.store.GetHabit(owner, id)
}

// List returns all of the owner's habits.
func (s *Service) List(owner string) ([]models.Habit, error) {
	return s.store.GetHabits(owner)
}

// Start opens a tracking interval on an idle habit.
func (s *Service) Start(owner, id string) (models.Habit, error) {
	return s.transition(owner, id, Start)
}

// Stop closes the open interval, applying the streak continuity decision.
func (s *Service) Stop(owner, id string) (models.Habit, error) {
	return s.transition(owner, id, Stop)
}

// Reset archives all accumulated time and restarts tracking from zero.
func (s *Service) Reset(owner, id string) (models.Habit, error) {
	return s.transition(owner, id, Reset)
}

// Delete removes the habit record entirely. No soft delete, no cascade.
func (s *Service) Delete(owner, id string) error {
	return s.store.DeleteHabit(owner, id)
}

func (s *Service) transition(owner, id string, fn func(models.Habit, int64) (models.Habit, Outcome)) (models.Habit, error) {
	h, err := s.store.GetHabit(owner, id)
	if err != nil {
		return models.Habit{}, err
	}

	next, outcome := fn(h, Millis(s.clock.Now()))
	if outcome == OutcomeUnchanged {
		// Defined no-op branch: nothing to persist.
		logger.Debug("Habit transition left record unchanged", "id", id)
		return h, nil
	}

	if err := s.store.PutHabit(next); err != nil {
		return models.Habit{}, err
	}
	logger.Debug("Habit transition applied", "id", id, "outcome", string(outcome))
	return next, nil
}
