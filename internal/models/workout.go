package models

// ExerciseType categorizes an exercise within a workout.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
	ExerciseOther       ExerciseType = "other"
)

// WorkoutCategory groups workouts for listing.
type WorkoutCategory string

const (
	WorkoutUpperBody WorkoutCategory = "upper body"
	WorkoutLowerBody WorkoutCategory = "lower body"
	WorkoutFullBody  WorkoutCategory = "full body"
	WorkoutCardio    WorkoutCategory = "cardio"
	WorkoutOtherCat  WorkoutCategory = "other"
)

// Set is one set of a strength exercise.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes,omitempty"`
}

// Exercise belongs to exactly one workout. Sets apply to strength work;
// Duration (minutes) and Distance apply to cardio.
type Exercise struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"owner_id"`
	WorkoutID string       `json:"workout_id"`
	Name      string       `json:"name"`
	Type      ExerciseType `json:"type"`
	Sets      []Set        `json:"sets"`
	Duration  int          `json:"duration,omitempty"`
	Distance  float64      `json:"distance,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}

// Workout is a logged training session. Deleting a workout removes its
// exercises with it.
type Workout struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Name      string          `json:"name"`
	Category  WorkoutCategory `json:"category"`
	Timestamp int64           `json:"timestamp"` // epoch ms
	Exercises []Exercise      `json:"exercises"`
	Notes     string          `json:"notes,omitempty"`
}
