package sqlite

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
)

func TestNoteRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	note := models.Note{
		ID:        uuid.New().String(),
		OwnerID:   "local",
		Title:     "Grocery list",
		Content:   "eggs, oats, spinach",
		Tags:      []string{"errands", "food"},
		Timestamp: 100,
	}
	if err := store.AddNote(note); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	got, err := store.GetNote("local", note.ID)
	if err != nil {
		t.Fatalf("failed to get note: %v", err)
	}
	if got.Title != note.Title || got.Content != note.Content {
		t.Errorf("note mismatch: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "errands" {
		t.Errorf("tags mismatch: %v", got.Tags)
	}

	note.Content = "eggs, oats, spinach, coffee"
	note.Timestamp = 200
	if err := store.PutNote(note); err != nil {
		t.Fatalf("failed to put note: %v", err)
	}
	got, err = store.GetNote("local", note.ID)
	if err != nil {
		t.Fatalf("failed to re-get note: %v", err)
	}
	if got.Content != note.Content || got.Timestamp != 200 {
		t.Errorf("update not applied: %+v", got)
	}

	if err := store.DeleteNote("local", note.ID); err != nil {
		t.Fatalf("failed to delete note: %v", err)
	}
	if _, err := store.GetNote("local", note.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestBookmarkRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	bookmark := models.Bookmark{
		ID:        uuid.New().String(),
		OwnerID:   "local",
		URL:       "https://go.dev/blog",
		Title:     "The Go Blog",
		Tags:      []string{"go", "reading"},
		Timestamp: 50,
	}
	if err := store.AddBookmark(bookmark); err != nil {
		t.Fatalf("failed to add bookmark: %v", err)
	}

	got, err := store.GetBookmark("local", bookmark.ID)
	if err != nil {
		t.Fatalf("failed to get bookmark: %v", err)
	}
	if got.URL != bookmark.URL || got.Title != bookmark.Title {
		t.Errorf("bookmark mismatch: %+v", got)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags mismatch: %v", got.Tags)
	}
}

func TestMealRangeQuery(t *testing.T) {
	store := setupTestStore(t)

	for _, ts := range []int64{1000, 2000, 9000} {
		meal := models.Meal{
			ID:        uuid.New().String(),
			OwnerID:   "local",
			MealType:  models.MealLunch,
			FoodItems: []string{"rice", "beans"},
			Calories:  550,
			Macros:    models.Macros{Protein: 20, Carbs: 80, Fat: 10},
			Timestamp: ts,
		}
		if err := store.AddMeal(meal); err != nil {
			t.Fatalf("failed to add meal at %d: %v", ts, err)
		}
	}

	meals, err := store.GetMeals("local", 500, 5000)
	if err != nil {
		t.Fatalf("failed to query meals: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals in range, got %d", len(meals))
	}
	if meals[0].Calories != 550 || meals[0].Macros.Protein != 20 {
		t.Errorf("meal fields mismatch: %+v", meals[0])
	}
	if len(meals[0].FoodItems) != 2 {
		t.Errorf("food items mismatch: %v", meals[0].FoodItems)
	}
}

func TestSavedMealRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	saved := models.SavedMeal{
		ID:        uuid.New().String(),
		OwnerID:   "local",
		Name:      "Overnight oats",
		FoodItems: []string{"oats", "milk", "berries"},
		Calories:  400,
		Macros:    models.Macros{Protein: 15, Carbs: 60, Fat: 8},
	}
	if err := store.AddSavedMeal(saved); err != nil {
		t.Fatalf("failed to add saved meal: %v", err)
	}

	meals, err := store.GetSavedMeals("local")
	if err != nil {
		t.Fatalf("failed to list saved meals: %v", err)
	}
	if len(meals) != 1 || meals[0].Name != "Overnight oats" {
		t.Fatalf("saved meal mismatch: %+v", meals)
	}

	if err := store.DeleteSavedMeal("local", saved.ID); err != nil {
		t.Fatalf("failed to delete saved meal: %v", err)
	}
	if err := store.DeleteSavedMeal("local", saved.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWeightEntries(t *testing.T) {
	store := setupTestStore(t)

	entry := models.WeightEntry{ID: uuid.New().String(), OwnerID: "local", Weight: 74.5, Timestamp: 100}
	if err := store.AddWeightEntry(entry); err != nil {
		t.Fatalf("failed to add weight entry: %v", err)
	}

	entries, err := store.GetWeightEntries("local")
	if err != nil {
		t.Fatalf("failed to list weight entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Weight != 74.5 {
		t.Fatalf("weight entry mismatch: %+v", entries)
	}
}

func TestWorkoutCascade(t *testing.T) {
	store := setupTestStore(t)

	workout := models.Workout{
		ID:        uuid.New().String(),
		OwnerID:   "local",
		Name:      "Push day",
		Category:  models.WorkoutUpperBody,
		Timestamp: 100,
	}
	workout.Exercises = []models.Exercise{
		{
			ID:        uuid.New().String(),
			OwnerID:   "local",
			WorkoutID: workout.ID,
			Name:      "Bench press",
			Type:      models.ExerciseStrength,
			Sets:      []models.Set{{Reps: 8, Weight: 60}, {Reps: 6, Weight: 65}},
		},
		{
			ID:        uuid.New().String(),
			OwnerID:   "local",
			WorkoutID: workout.ID,
			Name:      "Rowing",
			Type:      models.ExerciseCardio,
			Duration:  15,
			Distance:  3.2,
		},
	}

	if err := store.AddWorkout(workout); err != nil {
		t.Fatalf("failed to add workout: %v", err)
	}

	got, err := store.GetWorkout("local", workout.ID)
	if err != nil {
		t.Fatalf("failed to get workout: %v", err)
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(got.Exercises))
	}
	if len(got.Exercises[0].Sets) != 2 || got.Exercises[0].Sets[1].Weight != 65 {
		t.Errorf("sets mismatch: %+v", got.Exercises[0].Sets)
	}

	// replacing the exercise list on update
	workout.Exercises = workout.Exercises[:1]
	if err := store.PutWorkout(workout); err != nil {
		t.Fatalf("failed to put workout: %v", err)
	}
	got, err = store.GetWorkout("local", workout.ID)
	if err != nil {
		t.Fatalf("failed to re-get workout: %v", err)
	}
	if len(got.Exercises) != 1 {
		t.Fatalf("expected 1 exercise after update, got %d", len(got.Exercises))
	}

	if err := store.DeleteWorkout("local", workout.ID); err != nil {
		t.Fatalf("failed to delete workout: %v", err)
	}
	if _, err := store.GetWorkout("local", workout.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSubscriptions(t *testing.T) {
	store := setupTestStore(t)

	sub := models.Subscription{
		ID:        uuid.New().String(),
		OwnerID:   "local",
		Name:      "Streaming",
		Amount:    120,
		Frequency: models.FrequencyYearly,
		CreatedAt: 1,
	}
	if err := store.AddSubscription(sub); err != nil {
		t.Fatalf("failed to add subscription: %v", err)
	}

	subs, err := store.GetSubscriptions("local")
	if err != nil {
		t.Fatalf("failed to list subscriptions: %v", err)
	}
	if len(subs) != 1 || subs[0].Name != "Streaming" {
		t.Fatalf("subscription mismatch: %+v", subs)
	}
	if cost := subs[0].MonthlyCost(); cost != 10 {
		t.Errorf("expected monthly cost 10, got %v", cost)
	}

	if err := store.DeleteSubscription("local", sub.ID); err != nil {
		t.Fatalf("failed to delete subscription: %v", err)
	}
}

func TestTasksAndFocus(t *testing.T) {
	store := setupTestStore(t)

	task := models.Task{
		ID:        uuid.New().String(),
		OwnerID:   "local",
		Title:     "Write quarterly review",
		Label:     models.LabelHighLeverage,
		CreatedAt: 1,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	task.Completed = true
	task.CompletedAt = 500
	if err := store.PutTask(task); err != nil {
		t.Fatalf("failed to put task: %v", err)
	}

	got, err := store.GetTask("local", task.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if !got.Completed || got.CompletedAt != 500 {
		t.Errorf("completion not persisted: %+v", got)
	}

	session := models.FocusSession{
		ID:          uuid.New().String(),
		OwnerID:     "local",
		StartTime:   0,
		EndTime:     25 * 60 * 1000,
		DurationMin: 25,
	}
	if err := store.AddFocusSession(session); err != nil {
		t.Fatalf("failed to add focus session: %v", err)
	}
	sessions, err := store.GetFocusSessions("local")
	if err != nil {
		t.Fatalf("failed to list focus sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].DurationMin != 25 {
		t.Fatalf("focus session mismatch: %+v", sessions)
	}

	reminder := models.Reminder{ID: uuid.New().String(), OwnerID: "local", Text: "stand up", CreatedAt: 1}
	if err := store.AddReminder(reminder); err != nil {
		t.Fatalf("failed to add reminder: %v", err)
	}
	reminders, err := store.GetReminders("local")
	if err != nil {
		t.Fatalf("failed to list reminders: %v", err)
	}
	if len(reminders) != 1 || reminders[0].Text != "stand up" {
		t.Fatalf("reminder mismatch: %+v", reminders)
	}
	if err := store.DeleteReminder("local", reminder.ID); err != nil {
		t.Fatalf("failed to delete reminder: %v", err)
	}
}
