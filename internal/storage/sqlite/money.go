package sqlite

import "github.com/julianstephens/lifelog/internal/models"

func (s *Store) AddSubscription(sub models.Subscription) error {
	_, err := s.db.Exec(`
		INSERT INTO subscriptions (id, owner_id, name, amount, frequency, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.OwnerID, sub.Name, sub.Amount, sub.Frequency, sub.CreatedAt)
	return err
}

func (s *Store) GetSubscriptions(owner string) ([]models.Subscription, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, name, amount, frequency, created_at
		FROM subscriptions WHERE owner_id = ? ORDER BY created_at`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.OwnerID, &sub.Name, &sub.Amount, &sub.Frequency, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *Store) DeleteSubscription(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM subscriptions WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "subscription", id)
}
