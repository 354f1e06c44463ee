package sqlite

import "github.com/julianstephens/lifelog/internal/models"

func (s *Store) AddWorkout(workout models.Workout) error {
	return s.PutWorkout(workout)
}

func (s *Store) GetWorkout(owner, id string) (models.Workout, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, name, category, notes, timestamp
		FROM workouts WHERE owner_id = ? AND id = ?`, owner, id)

	var w models.Workout
	if err := row.Scan(&w.ID, &w.OwnerID, &w.Name, &w.Category, &w.Notes, &w.Timestamp); err != nil {
		return models.Workout{}, notFound(err, "workout", id)
	}

	exercises, err := s.getExercises(w.ID)
	if err != nil {
		return models.Workout{}, err
	}
	w.Exercises = exercises
	return w, nil
}

func (s *Store) GetWorkouts(owner string) ([]models.Workout, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, name, category, notes, timestamp
		FROM workouts WHERE owner_id = ? ORDER BY timestamp DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.OwnerID, &w.Name, &w.Category, &w.Notes, &w.Timestamp); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		exercises, err := s.getExercises(workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Exercises = exercises
	}
	return workouts, nil
}

// PutWorkout replaces the workout row and its full exercise set.
func (s *Store) PutWorkout(workout models.Workout) error {
	_, err := s.db.Exec(`
		INSERT INTO workouts (id, owner_id, name, category, notes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			notes = excluded.notes,
			timestamp = excluded.timestamp`,
		workout.ID, workout.OwnerID, workout.Name, workout.Category, workout.Notes, workout.Timestamp)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM exercises WHERE workout_id = ?`, workout.ID); err != nil {
		return err
	}
	for _, ex := range workout.Exercises {
		if ex.Sets == nil {
			ex.Sets = []models.Set{}
		}
		sets, err := encodeJSON(ex.Sets)
		if err != nil {
			return err
		}
		_, err = s.db.Exec(`
			INSERT INTO exercises (id, owner_id, workout_id, name, type, sets, duration, distance, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ex.ID, ex.OwnerID, workout.ID, ex.Name, ex.Type, sets, ex.Duration, ex.Distance, ex.Notes)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteWorkout removes the workout and cascades to its exercises.
func (s *Store) DeleteWorkout(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM workouts WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	if err := requireRows(result, "workout", id); err != nil {
		return err
	}

	_, err = s.db.Exec(`DELETE FROM exercises WHERE workout_id = ?`, id)
	return err
}

func (s *Store) getExercises(workoutID string) ([]models.Exercise, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, workout_id, name, type, sets, duration, distance, notes
		FROM exercises WHERE workout_id = ?`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		var sets string
		err := rows.Scan(&e.ID, &e.OwnerID, &e.WorkoutID, &e.Name, &e.Type, &sets, &e.Duration, &e.Distance, &e.Notes)
		if err != nil {
			return nil, err
		}
		if err := decodeJSON(sets, &e.Sets); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
