package sqlite

import "github.com/julianstephens/lifelog/internal/models"

func (s *Store) AddBookmark(bookmark models.Bookmark) error {
	return s.PutBookmark(bookmark)
}

func (s *Store) GetBookmark(owner, id string) (models.Bookmark, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, url, title, description, tags, notes, timestamp
		FROM bookmarks WHERE owner_id = ? AND id = ?`, owner, id)

	var b models.Bookmark
	var tags string
	if err := row.Scan(&b.ID, &b.OwnerID, &b.URL, &b.Title, &b.Description, &tags, &b.Notes, &b.Timestamp); err != nil {
		return models.Bookmark{}, notFound(err, "bookmark", id)
	}
	if err := decodeJSON(tags, &b.Tags); err != nil {
		return models.Bookmark{}, err
	}
	return b, nil
}

func (s *Store) GetBookmarks(owner string) ([]models.Bookmark, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, url, title, description, tags, notes, timestamp
		FROM bookmarks WHERE owner_id = ? ORDER BY timestamp DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		var tags string
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.URL, &b.Title, &b.Description, &tags, &b.Notes, &b.Timestamp); err != nil {
			return nil, err
		}
		if err := decodeJSON(tags, &b.Tags); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

func (s *Store) PutBookmark(bookmark models.Bookmark) error {
	if bookmark.Tags == nil {
		bookmark.Tags = []string{}
	}
	tags, err := encodeJSON(bookmark.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO bookmarks (id, owner_id, url, title, description, tags, notes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			description = excluded.description,
			tags = excluded.tags,
			notes = excluded.notes,
			timestamp = excluded.timestamp`,
		bookmark.ID, bookmark.OwnerID, bookmark.URL, bookmark.Title,
		bookmark.Description, tags, bookmark.Notes, bookmark.Timestamp)
	return err
}

func (s *Store) DeleteBookmark(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM bookmarks WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "bookmark", id)
}
