// Package jsonfile persists everything in a single human-readable JSON
// document. It exists for quick inspection and portability; the sqlite
// backend is the default.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/lifelog/internal/constants"
	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
)

type document struct {
	Version       int                            `json:"version"`
	Habits        map[string]models.Habit        `json:"habits"`
	Notes         map[string]models.Note         `json:"notes"`
	Bookmarks     map[string]models.Bookmark     `json:"bookmarks"`
	Meals         map[string]models.Meal         `json:"meals"`
	SavedMeals    map[string]models.SavedMeal    `json:"saved_meals"`
	WeightEntries map[string]models.WeightEntry  `json:"weight_entries"`
	Workouts      map[string]models.Workout      `json:"workouts"`
	Subscriptions map[string]models.Subscription `json:"subscriptions"`
	Tasks         map[string]models.Task         `json:"tasks"`
	FocusSessions map[string]models.FocusSession `json:"focus_sessions"`
	Reminders     map[string]models.Reminder     `json:"reminders"`
}

func newDocument() *document {
	return &document{
		Version:       1,
		Habits:        make(map[string]models.Habit),
		Notes:         make(map[string]models.Note),
		Bookmarks:     make(map[string]models.Bookmark),
		Meals:         make(map[string]models.Meal),
		SavedMeals:    make(map[string]models.SavedMeal),
		WeightEntries: make(map[string]models.WeightEntry),
		Workouts:      make(map[string]models.Workout),
		Subscriptions: make(map[string]models.Subscription),
		Tasks:         make(map[string]models.Task),
		FocusSessions: make(map[string]models.FocusSession),
		Reminders:     make(map[string]models.Reminder),
	}
}

func (d *document) ensureMaps() {
	if d.Habits == nil {
		d.Habits = make(map[string]models.Habit)
	}
	if d.Notes == nil {
		d.Notes = make(map[string]models.Note)
	}
	if d.Bookmarks == nil {
		d.Bookmarks = make(map[string]models.Bookmark)
	}
	if d.Meals == nil {
		d.Meals = make(map[string]models.Meal)
	}
	if d.SavedMeals == nil {
		d.SavedMeals = make(map[string]models.SavedMeal)
	}
	if d.WeightEntries == nil {
		d.WeightEntries = make(map[string]models.WeightEntry)
	}
	if d.Workouts == nil {
		d.Workouts = make(map[string]models.Workout)
	}
	if d.Subscriptions == nil {
		d.Subscriptions = make(map[string]models.Subscription)
	}
	if d.Tasks == nil {
		d.Tasks = make(map[string]models.Task)
	}
	if d.FocusSessions == nil {
		d.FocusSessions = make(map[string]models.FocusSession)
	}
	if d.Reminders == nil {
		d.Reminders = make(map[string]models.Reminder)
	}
}

// Store implements storage.Provider over a single JSON file.
type Store struct {
	path string
	doc  *document
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = newDocument()
	return s.save()
}

func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	s.doc.ensureMaps()

	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// save writes to a sibling temp file and renames it into place so a crash
// mid-write never leaves a truncated document behind.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *Store) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// Habits

func (s *Store) AddHabit(habit models.Habit) error {
	return s.PutHabit(habit)
}

func (s *Store) GetHabit(owner, id string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}
	habit, ok := s.doc.Habits[id]
	if !ok || habit.OwnerID != owner {
		return models.Habit{}, apperrors.NotFound("habit", id)
	}
	return habit, nil
}

func (s *Store) GetHabits(owner string) ([]models.Habit, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	habits := make([]models.Habit, 0, len(s.doc.Habits))
	for _, habit := range s.doc.Habits {
		if habit.OwnerID == owner {
			habits = append(habits, habit)
		}
	}
	sort.Slice(habits, func(i, j int) bool { return habits[i].CreatedAt < habits[j].CreatedAt })
	return habits, nil
}

func (s *Store) PutHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if habit.StreakHistory == nil {
		habit.StreakHistory = []models.Streak{}
	}
	s.doc.Habits[habit.ID] = habit
	return s.save()
}

func (s *Store) DeleteHabit(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	habit, ok := s.doc.Habits[id]
	if !ok || habit.OwnerID != owner {
		return apperrors.NotFound("habit", id)
	}
	delete(s.doc.Habits, id)
	return s.save()
}

// Notes

func (s *Store) AddNote(note models.Note) error {
	return s.PutNote(note)
}

func (s *Store) GetNote(owner, id string) (models.Note, error) {
	if err := s.loaded(); err != nil {
		return models.Note{}, err
	}
	note, ok := s.doc.Notes[id]
	if !ok || note.OwnerID != owner {
		return models.Note{}, apperrors.NotFound("note", id)
	}
	return note, nil
}

func (s *Store) GetNotes(owner string) ([]models.Note, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	notes := make([]models.Note, 0, len(s.doc.Notes))
	for _, note := range s.doc.Notes {
		if note.OwnerID == owner {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Timestamp > notes[j].Timestamp })
	return notes, nil
}

func (s *Store) PutNote(note models.Note) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Notes[note.ID] = note
	return s.save()
}

func (s *Store) DeleteNote(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	note, ok := s.doc.Notes[id]
	if !ok || note.OwnerID != owner {
		return apperrors.NotFound("note", id)
	}
	delete(s.doc.Notes, id)
	return s.save()
}

// Bookmarks

func (s *Store) AddBookmark(bookmark models.Bookmark) error {
	return s.PutBookmark(bookmark)
}

func (s *Store) GetBookmark(owner, id string) (models.Bookmark, error) {
	if err := s.loaded(); err != nil {
		return models.Bookmark{}, err
	}
	bookmark, ok := s.doc.Bookmarks[id]
	if !ok || bookmark.OwnerID != owner {
		return models.Bookmark{}, apperrors.NotFound("bookmark", id)
	}
	return bookmark, nil
}

func (s *Store) GetBookmarks(owner string) ([]models.Bookmark, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	bookmarks := make([]models.Bookmark, 0, len(s.doc.Bookmarks))
	for _, bookmark := range s.doc.Bookmarks {
		if bookmark.OwnerID == owner {
			bookmarks = append(bookmarks, bookmark)
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool { return bookmarks[i].Timestamp > bookmarks[j].Timestamp })
	return bookmarks, nil
}

func (s *Store) PutBookmark(bookmark models.Bookmark) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if bookmark.Tags == nil {
		bookmark.Tags = []string{}
	}
	s.doc.Bookmarks[bookmark.ID] = bookmark
	return s.save()
}

func (s *Store) DeleteBookmark(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	bookmark, ok := s.doc.Bookmarks[id]
	if !ok || bookmark.OwnerID != owner {
		return apperrors.NotFound("bookmark", id)
	}
	delete(s.doc.Bookmarks, id)
	return s.save()
}

// Diet

func (s *Store) AddMeal(meal models.Meal) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if meal.FoodItems == nil {
		meal.FoodItems = []string{}
	}
	s.doc.Meals[meal.ID] = meal
	return s.save()
}

func (s *Store) GetMeals(owner string, startMillis, endMillis int64) ([]models.Meal, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	meals := make([]models.Meal, 0)
	for _, meal := range s.doc.Meals {
		if meal.OwnerID == owner && meal.Timestamp >= startMillis && meal.Timestamp <= endMillis {
			meals = append(meals, meal)
		}
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].Timestamp < meals[j].Timestamp })
	return meals, nil
}

func (s *Store) DeleteMeal(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	meal, ok := s.doc.Meals[id]
	if !ok || meal.OwnerID != owner {
		return apperrors.NotFound("meal", id)
	}
	delete(s.doc.Meals, id)
	return s.save()
}

func (s *Store) AddSavedMeal(meal models.SavedMeal) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if meal.FoodItems == nil {
		meal.FoodItems = []string{}
	}
	s.doc.SavedMeals[meal.ID] = meal
	return s.save()
}

func (s *Store) GetSavedMeals(owner string) ([]models.SavedMeal, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	meals := make([]models.SavedMeal, 0, len(s.doc.SavedMeals))
	for _, meal := range s.doc.SavedMeals {
		if meal.OwnerID == owner {
			meals = append(meals, meal)
		}
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].Name < meals[j].Name })
	return meals, nil
}

func (s *Store) DeleteSavedMeal(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	meal, ok := s.doc.SavedMeals[id]
	if !ok || meal.OwnerID != owner {
		return apperrors.NotFound("saved meal", id)
	}
	delete(s.doc.SavedMeals, id)
	return s.save()
}

func (s *Store) AddWeightEntry(entry models.WeightEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.WeightEntries[entry.ID] = entry
	return s.save()
}

func (s *Store) GetWeightEntries(owner string) ([]models.WeightEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	entries := make([]models.WeightEntry, 0, len(s.doc.WeightEntries))
	for _, entry := range s.doc.WeightEntries {
		if entry.OwnerID == owner {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp > entries[j].Timestamp })
	return entries, nil
}

func (s *Store) DeleteWeightEntry(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	entry, ok := s.doc.WeightEntries[id]
	if !ok || entry.OwnerID != owner {
		return apperrors.NotFound("weight entry", id)
	}
	delete(s.doc.WeightEntries, id)
	return s.save()
}

// Workouts

func (s *Store) AddWorkout(workout models.Workout) error {
	return s.PutWorkout(workout)
}

func (s *Store) GetWorkout(owner, id string) (models.Workout, error) {
	if err := s.loaded(); err != nil {
		return models.Workout{}, err
	}
	workout, ok := s.doc.Workouts[id]
	if !ok || workout.OwnerID != owner {
		return models.Workout{}, apperrors.NotFound("workout", id)
	}
	return workout, nil
}

func (s *Store) GetWorkouts(owner string) ([]models.Workout, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	workouts := make([]models.Workout, 0, len(s.doc.Workouts))
	for _, workout := range s.doc.Workouts {
		if workout.OwnerID == owner {
			workouts = append(workouts, workout)
		}
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].Timestamp > workouts[j].Timestamp })
	return workouts, nil
}

func (s *Store) PutWorkout(workout models.Workout) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if workout.Exercises == nil {
		workout.Exercises = []models.Exercise{}
	}
	s.doc.Workouts[workout.ID] = workout
	return s.save()
}

func (s *Store) DeleteWorkout(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	workout, ok := s.doc.Workouts[id]
	if !ok || workout.OwnerID != owner {
		return apperrors.NotFound("workout", id)
	}
	delete(s.doc.Workouts, id)
	return s.save()
}

// Subscriptions

func (s *Store) AddSubscription(sub models.Subscription) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Subscriptions[sub.ID] = sub
	return s.save()
}

func (s *Store) GetSubscriptions(owner string) ([]models.Subscription, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	subs := make([]models.Subscription, 0, len(s.doc.Subscriptions))
	for _, sub := range s.doc.Subscriptions {
		if sub.OwnerID == owner {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].CreatedAt < subs[j].CreatedAt })
	return subs, nil
}

func (s *Store) DeleteSubscription(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	sub, ok := s.doc.Subscriptions[id]
	if !ok || sub.OwnerID != owner {
		return apperrors.NotFound("subscription", id)
	}
	delete(s.doc.Subscriptions, id)
	return s.save()
}

// Work

func (s *Store) AddTask(task models.Task) error {
	return s.PutTask(task)
}

func (s *Store) GetTask(owner, id string) (models.Task, error) {
	if err := s.loaded(); err != nil {
		return models.Task{}, err
	}
	task, ok := s.doc.Tasks[id]
	if !ok || task.OwnerID != owner {
		return models.Task{}, apperrors.NotFound("task", id)
	}
	return task, nil
}

func (s *Store) GetTasks(owner string) ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(s.doc.Tasks))
	for _, task := range s.doc.Tasks {
		if task.OwnerID == owner {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt > tasks[j].CreatedAt })
	return tasks, nil
}

func (s *Store) PutTask(task models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Tasks[task.ID] = task
	return s.save()
}

func (s *Store) DeleteTask(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	task, ok := s.doc.Tasks[id]
	if !ok || task.OwnerID != owner {
		return apperrors.NotFound("task", id)
	}
	delete(s.doc.Tasks, id)
	return s.save()
}

func (s *Store) AddFocusSession(session models.FocusSession) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.FocusSessions[session.ID] = session
	return s.save()
}

func (s *Store) GetFocusSessions(owner string) ([]models.FocusSession, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	sessions := make([]models.FocusSession, 0, len(s.doc.FocusSessions))
	for _, session := range s.doc.FocusSessions {
		if session.OwnerID == owner {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].EndTime > sessions[j].EndTime })
	return sessions, nil
}

func (s *Store) AddReminder(reminder models.Reminder) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Reminders[reminder.ID] = reminder
	return s.save()
}

func (s *Store) GetReminders(owner string) ([]models.Reminder, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	reminders := make([]models.Reminder, 0, len(s.doc.Reminders))
	for _, reminder := range s.doc.Reminders {
		if reminder.OwnerID == owner {
			reminders = append(reminders, reminder)
		}
	}
	sort.Slice(reminders, func(i, j int) bool { return reminders[i].CreatedAt > reminders[j].CreatedAt })
	return reminders, nil
}

func (s *Store) DeleteReminder(owner, id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	reminder, ok := s.doc.Reminders[id]
	if !ok || reminder.OwnerID != owner {
		return apperrors.NotFound("reminder", id)
	}
	delete(s.doc.Reminders, id)
	return s.save()
}
