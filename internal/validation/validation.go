// Package validation checks user-supplied input before it reaches storage.
package validation

import (
	"net/url"
	"strings"

	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
)

// RequireName rejects empty or whitespace-only names.
func RequireName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.InvalidInput(field + " cannot be empty")
	}
	return nil
}

// RequireURL rejects strings that do not parse as absolute http(s) URLs.
func RequireURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperrors.InvalidInput("url must be a valid http(s) address")
	}
	return nil
}

// RequireNonNegative rejects negative numeric input.
func RequireNonNegative(field string, value float64) error {
	if value < 0 {
		return apperrors.InvalidInput(field + " cannot be negative")
	}
	return nil
}

func ValidateMealType(t models.MealType) error {
	switch t {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
		return nil
	}
	return apperrors.InvalidInput("meal type must be one of breakfast, lunch, dinner, snack")
}

func ValidateExerciseType(t models.ExerciseType) error {
	switch t {
	case models.ExerciseStrength, models.ExerciseCardio, models.ExerciseFlexibility, models.ExerciseOther:
		return nil
	}
	return apperrors.InvalidInput("exercise type must be one of strength, cardio, flexibility, other")
}

func ValidateWorkoutCategory(c models.WorkoutCategory) error {
	switch c {
	case models.WorkoutUpperBody, models.WorkoutLowerBody, models.WorkoutFullBody, models.WorkoutCardio, models.WorkoutOtherCat:
		return nil
	}
	return apperrors.InvalidInput("workout category must be one of upper body, lower body, full body, cardio, other")
}

func ValidateFrequency(f models.SubscriptionFrequency) error {
	switch f {
	case models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
		return nil
	}
	return apperrors.InvalidInput("frequency must be one of weekly, monthly, yearly")
}

func ValidateTaskLabel(l models.TaskLabel) error {
	switch l {
	case models.LabelHighLeverage, models.LabelLowLeverageImportant, models.LabelNiceToHave:
		return nil
	}
	return apperrors.InvalidInput("label must be one of high-leverage, low-leverage-important, nice-to-have")
}
