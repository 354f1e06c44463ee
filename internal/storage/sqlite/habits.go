package sqlite

import (
	"database/sql"

	"github.com/julianstephens/lifelog/internal/models"
)

const habitColumns = `id, owner_id, name, description, is_active, current_streak,
	last_active, streak_history, total_seconds, last_updated, created_at`

func (s *Store) AddHabit(habit models.Habit) error {
	return s.PutHabit(habit)
}

func (s *Store) GetHabit(owner, id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE owner_id = ? AND id = ?`, owner, id)

	h, err := scanHabit(row)
	if err != nil {
		return models.Habit{}, notFound(err, "habit", id)
	}
	return h, nil
}

func (s *Store) GetHabits(owner string) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT `+habitColumns+`
		FROM habits WHERE owner_id = ? ORDER BY created_at`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) PutHabit(habit models.Habit) error {
	if habit.StreakHistory == nil {
		habit.StreakHistory = []models.Streak{}
	}
	history, err := encodeJSON(habit.StreakHistory)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			is_active = excluded.is_active,
			current_streak = excluded.current_streak,
			last_active = excluded.last_active,
			streak_history = excluded.streak_history,
			total_seconds = excluded.total_seconds,
			last_updated = excluded.last_updated`,
		habit.ID, habit.OwnerID, habit.Name, habit.Description, habit.IsActive,
		habit.CurrentStreak, habit.LastActive, history, habit.TotalSeconds,
		habit.LastUpdated, habit.CreatedAt)
	return err
}

func (s *Store) DeleteHabit(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "habit", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var history string
	var isActive sql.NullBool

	err := row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Description, &isActive,
		&h.CurrentStreak, &h.LastActive, &history, &h.TotalSeconds,
		&h.LastUpdated, &h.CreatedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.IsActive = isActive.Valid && isActive.Bool
	h.StreakHistory = []models.Streak{}
	if err := decodeJSON(history, &h.StreakHistory); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}
