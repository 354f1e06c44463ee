// Package workouts implements the workout logging commands.
package workouts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/cli"
	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/validation"
)

type WorkoutCmd struct {
	Add      WorkoutAddCmd      `cmd:"" help:"Log a workout."`
	List     WorkoutListCmd     `cmd:"" help:"List workouts."`
	Show     WorkoutShowCmd     `cmd:"" help:"Show a workout with its exercises."`
	Exercise ExerciseAddCmd     `cmd:"" help:"Add an exercise to a workout."`
	Delete   WorkoutDeleteCmd   `cmd:"" help:"Delete a workout and its exercises."`
}

type WorkoutAddCmd struct {
	Name     string `arg:"" help:"Workout name."`
	Category string `short:"c" help:"Category (upper body|lower body|full body|cardio|other)." default:"other"`
	Notes    string `short:"n" help:"Notes."`
}

func (c *WorkoutAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireName("name", c.Name); err != nil {
		return err
	}
	category := models.WorkoutCategory(strings.ToLower(c.Category))
	if err := validation.ValidateWorkoutCategory(category); err != nil {
		return err
	}

	workout := models.Workout{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		Name:      c.Name,
		Category:  category,
		Notes:     c.Notes,
		Timestamp: cli.NowMillis(),
	}
	if err := ctx.Store.AddWorkout(workout); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Logged workout: %s (ID: %s)\n", workout.Name, workout.ID)
	return nil
}

type ExerciseAddCmd struct {
	WorkoutID string   `arg:"" help:"Workout ID."`
	Name      string   `arg:"" help:"Exercise name."`
	Type      string   `short:"t" help:"Type (strength|cardio|flexibility|other)." default:"strength"`
	Sets      []string `short:"s" help:"Sets as reps@weight, e.g. 8@60."`
	Duration  int      `short:"d" help:"Duration in minutes (cardio)." default:"0"`
	Distance  float64  `help:"Distance covered (cardio)." default:"0"`
	Notes     string   `short:"n" help:"Notes."`
}

func (c *ExerciseAddCmd) Run(ctx *cli.Context) error {
	exType := models.ExerciseType(strings.ToLower(c.Type))
	if err := validation.ValidateExerciseType(exType); err != nil {
		return err
	}

	sets, err := parseSets(c.Sets)
	if err != nil {
		return err
	}

	workout, err := ctx.Store.GetWorkout(ctx.Owner, c.WorkoutID)
	if err != nil {
		return err
	}

	workout.Exercises = append(workout.Exercises, models.Exercise{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		WorkoutID: workout.ID,
		Name:      c.Name,
		Type:      exType,
		Sets:      sets,
		Duration:  c.Duration,
		Distance:  c.Distance,
		Notes:     c.Notes,
	})
	if err := ctx.Store.PutWorkout(workout); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Added %s to %s.\n", c.Name, workout.Name)
	return nil
}

// parseSets reads "reps@weight" entries, weight optional.
func parseSets(raw []string) ([]models.Set, error) {
	var sets []models.Set
	for _, r := range raw {
		parts := strings.SplitN(r, "@", 2)
		reps, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || reps <= 0 {
			return nil, apperrors.InvalidInput(fmt.Sprintf("invalid set %q, expected reps@weight", r))
		}
		set := models.Set{Reps: reps}
		if len(parts) == 2 {
			weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err != nil || weight < 0 {
				return nil, apperrors.InvalidInput(fmt.Sprintf("invalid weight in set %q", r))
			}
			set.Weight = weight
		}
		sets = append(sets, set)
	}
	return sets, nil
}

type WorkoutListCmd struct{}

func (c *WorkoutListCmd) Run(ctx *cli.Context) error {
	workouts, err := ctx.Store.GetWorkouts(ctx.Owner)
	if err != nil {
		return err
	}
	if len(workouts) == 0 {
		fmt.Println("No workouts found.")
		return nil
	}
	for _, w := range workouts {
		fmt.Printf("%-36s  %s  %-20s  %-10s  %d exercises\n",
			w.ID, cli.FormatMillis(w.Timestamp), w.Name, w.Category, len(w.Exercises))
	}
	return nil
}

type WorkoutShowCmd struct {
	ID string `arg:"" help:"Workout ID."`
}

func (c *WorkoutShowCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorkout(ctx.Owner, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)  %s\n", w.Name, w.Category, cli.FormatMillis(w.Timestamp))
	if w.Notes != "" {
		fmt.Printf("Notes: %s\n", w.Notes)
	}
	for _, ex := range w.Exercises {
		fmt.Printf("  %s (%s)\n", ex.Name, ex.Type)
		for i, set := range ex.Sets {
			fmt.Printf("    set %d: %d reps @ %.1f\n", i+1, set.Reps, set.Weight)
		}
		if ex.Duration > 0 {
			fmt.Printf("    %d min", ex.Duration)
			if ex.Distance > 0 {
				fmt.Printf(", %.1f distance", ex.Distance)
			}
			fmt.Println()
		}
	}
	return nil
}

type WorkoutDeleteCmd struct {
	ID string `arg:"" help:"Workout ID."`
}

func (c *WorkoutDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteWorkout(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted workout and its exercises.")
	return nil
}
