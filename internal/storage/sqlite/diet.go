package sqlite

import "github.com/julianstephens/lifelog/internal/models"

func (s *Store) AddMeal(meal models.Meal) error {
	if meal.FoodItems == nil {
		meal.FoodItems = []string{}
	}
	items, err := encodeJSON(meal.FoodItems)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO meals (id, owner_id, meal_type, food_items, calories, protein, carbs, fat, notes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meal.ID, meal.OwnerID, meal.MealType, items, meal.Calories,
		meal.Macros.Protein, meal.Macros.Carbs, meal.Macros.Fat, meal.Notes, meal.Timestamp)
	return err
}

func (s *Store) GetMeals(owner string, startMillis, endMillis int64) ([]models.Meal, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, meal_type, food_items, calories, protein, carbs, fat, notes, timestamp
		FROM meals WHERE owner_id = ? AND timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp`, owner, startMillis, endMillis)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var m models.Meal
		var items string
		err := rows.Scan(&m.ID, &m.OwnerID, &m.MealType, &items, &m.Calories,
			&m.Macros.Protein, &m.Macros.Carbs, &m.Macros.Fat, &m.Notes, &m.Timestamp)
		if err != nil {
			return nil, err
		}
		if err := decodeJSON(items, &m.FoodItems); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (s *Store) DeleteMeal(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM meals WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "meal", id)
}

func (s *Store) AddSavedMeal(meal models.SavedMeal) error {
	if meal.FoodItems == nil {
		meal.FoodItems = []string{}
	}
	items, err := encodeJSON(meal.FoodItems)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO saved_meals (id, owner_id, name, food_items, calories, protein, carbs, fat, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			food_items = excluded.food_items,
			calories = excluded.calories,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat,
			notes = excluded.notes`,
		meal.ID, meal.OwnerID, meal.Name, items, meal.Calories,
		meal.Macros.Protein, meal.Macros.Carbs, meal.Macros.Fat, meal.Notes)
	return err
}

func (s *Store) GetSavedMeals(owner string) ([]models.SavedMeal, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, name, food_items, calories, protein, carbs, fat, notes
		FROM saved_meals WHERE owner_id = ? ORDER BY name`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []models.SavedMeal
	for rows.Next() {
		var m models.SavedMeal
		var items string
		err := rows.Scan(&m.ID, &m.OwnerID, &m.Name, &items, &m.Calories,
			&m.Macros.Protein, &m.Macros.Carbs, &m.Macros.Fat, &m.Notes)
		if err != nil {
			return nil, err
		}
		if err := decodeJSON(items, &m.FoodItems); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (s *Store) DeleteSavedMeal(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM saved_meals WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "saved meal", id)
}

func (s *Store) AddWeightEntry(entry models.WeightEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO weight_entries (id, owner_id, weight, notes, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.OwnerID, entry.Weight, entry.Notes, entry.Timestamp)
	return err
}

func (s *Store) GetWeightEntries(owner string) ([]models.WeightEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, weight, notes, timestamp
		FROM weight_entries WHERE owner_id = ? ORDER BY timestamp DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var e models.WeightEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Weight, &e.Notes, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteWeightEntry(owner, id string) error {
	result, err := s.db.Exec(`DELETE FROM weight_entries WHERE owner_id = ? AND id = ?`, owner, id)
	if err != nil {
		return err
	}
	return requireRows(result, "weight entry", id)
}
