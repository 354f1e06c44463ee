package sqlite

import "github.com/julianstephens/lifelog/internal/models"

func (s *Store) AddTask(task models.Task) error {
	return s.PutTask(task)
}

func (s *Store) GetTask(owner, id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, title, description, label, completed, created_at, completed_at
		FROM tasks WHERE owner_id = ? AND id = ?`, owner, id)

	var t models.Task
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Label, &t.Completed, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		return models.Task{}, notFound(err, "task", id)
	}
	return t, nil
}

func (s *Store) GetTasks(owner string) ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, title, description, label, completed, created_at, completed_at
		FROM tasks WHERE owner_id = ? ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Label, &t.Completed, &t.CreatedAt, &t.CompletedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) PutTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, owner_id, title, description, label, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			label = excluded.label,
			completed = excluded.completed,
			completed_at = excluded.completed_at`,
		task.ID, task.OwnerID, task.Title, task.Description, task.Label,
		task.Completed, task.CreatedAt, task.CompletedAt)
	return err
}

func (s *Store) DeleteTask(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM tasks WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "task", id)
}

func (s *Store) AddFocusSession(session models.FocusSession) error {
	_, err := s.db.Exec(`
		INSERT INTO focus_sessions (id, owner_id, start_time, end_time, duration_min, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID, session.OwnerID, session.StartTime, session.EndTime, session.DurationMin, session.Notes)
	return err
}

func (s *Store) GetFocusSessions(owner string) ([]models.FocusSession, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, start_time, end_time, duration_min, notes
		FROM focus_sessions WHERE owner_id = ? ORDER BY end_time DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		var fs models.FocusSession
		if err := rows.Scan(&fs.ID, &fs.OwnerID, &fs.StartTime, &fs.EndTime, &fs.DurationMin, &fs.Notes); err != nil {
			return nil, err
		}
		sessions = append(sessions, fs)
	}
	return sessions, rows.Err()
}

func (s *Store) AddReminder(reminder models.Reminder) error {
	_, err := s.db.Exec(`
		INSERT INTO reminders (id, owner_id, text, created_at)
		VALUES (?, ?, ?, ?)`,
		reminder.ID, reminder.OwnerID, reminder.Text, reminder.CreatedAt)
	return err
}

func (s *Store) GetReminders(owner string) ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, text, created_at
		FROM reminders WHERE owner_id = ? ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.Text, &r.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *Store) DeleteReminder(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM reminders WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "reminder", id)
}
