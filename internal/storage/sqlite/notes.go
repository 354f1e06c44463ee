package sqlite

import "github.com/julianstephens/lifelog/internal/models"

func (s *Store) AddNote(note models.Note) error {
	return s.PutNote(note)
}

func (s *Store) GetNote(owner, id string) (models.Note, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, title, content, tags, timestamp
		FROM notes WHERE owner_id = ? AND id = ?`, owner, id)

	var n models.Note
	var tags string
	if err := row.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &tags, &n.Timestamp); err != nil {
		return models.Note{}, notFound(err, "note", id)
	}
	if err := decodeJSON(tags, &n.Tags); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

func (s *Store) GetNotes(owner string) ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, title, content, tags, timestamp
		FROM notes WHERE owner_id = ? ORDER BY timestamp DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var tags string
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &tags, &n.Timestamp); err != nil {
			return nil, err
		}
		if err := decodeJSON(tags, &n.Tags); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *Store) PutNote(note models.Note) error {
	if note.Tags == nil {
		note.Tags = []string{}
	}
	tags, err := encodeJSON(note.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO notes (id, owner_id, title, content, tags, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			tags = excluded.tags,
			timestamp = excluded.timestamp`,
		note.ID, note.OwnerID, note.Title, note.Content, tags, note.Timestamp)
	return err
}

func (s *Store) DeleteNote(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM notes WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "note", id)
}
