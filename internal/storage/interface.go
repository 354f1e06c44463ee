package storage

import "github.com/julianstephens/lifelog/internal/models"

// Provider is the persistent store behind every lifelog feature. All reads
// and writes are scoped by an explicit owner id; nothing in the store layer
// assumes a particular user. Each method is a single atomic operation from
// the caller's perspective; no multi-call transactions are offered.
//
// Missing records surface as errors wrapping errors.ErrNotFound regardless
// of backend.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(owner, id string) (models.Habit, error)
	GetHabits(owner string) ([]models.Habit, error)
	PutHabit(models.Habit) error
	DeleteHabit(owner, id string) error

	// Notes
	AddNote(models.Note) error
	GetNote(owner, id string) (models.Note, error)
	GetNotes(owner string) ([]models.Note, error)
	PutNote(models.Note) error
	DeleteNote(owner, id string) error

	// Bookmarks
	AddBookmark(models.Bookmark) error
	GetBookmark(owner, id string) (models.Bookmark, error)
	GetBookmarks(owner string) ([]models.Bookmark, error)
	PutBookmark(models.Bookmark) error
	DeleteBookmark(owner, id string) error

	// Diet
	AddMeal(models.Meal) error
	GetMeals(owner string, startMillis, endMillis int64) ([]models.Meal, error)
	DeleteMeal(owner, id string) error
	AddSavedMeal(models.SavedMeal) error
	GetSavedMeals(owner string) ([]models.SavedMeal, error)
	DeleteSavedMeal(owner, id string) error
	AddWeightEntry(models.WeightEntry) error
	GetWeightEntries(owner string) ([]models.WeightEntry, error)
	DeleteWeightEntry(owner, id string) error

	// Workouts
	AddWorkout(models.Workout) error
	GetWorkout(owner, id string) (models.Workout, error)
	GetWorkouts(owner string) ([]models.Workout, error)
	PutWorkout(models.Workout) error
	// DeleteWorkout removes the workout and its exercises.
	DeleteWorkout(owner, id string) error

	// Subscriptions
	AddSubscription(models.Subscription) error
	GetSubscriptions(owner string) ([]models.Subscription, error)
	DeleteSubscription(owner, id string) error

	// Work
	AddTask(models.Task) error
	GetTask(owner, id string) (models.Task, error)
	GetTasks(owner string) ([]models.Task, error)
	PutTask(models.Task) error
	DeleteTask(owner, id string) error
	AddFocusSession(models.FocusSession) error
	GetFocusSessions(owner string) ([]models.FocusSession, error)
	AddReminder(models.Reminder) error
	GetReminders(owner string) ([]models.Reminder, error)
	DeleteReminder(owner, id string) error

	// Utils
	GetConfigPath() string
}
