// Package diet implements meal, saved-meal, and weight commands.
package diet

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/cli"
	apperrors "github.com/julianstephens/lifelog/internal/errors"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/utils"
	"github.com/julianstephens/lifelog/internal/validation"
)

type DietCmd struct {
	Log     MealLogCmd      `cmd:"" help:"Log a meal."`
	Today   MealTodayCmd    `cmd:"" help:"Show today's meals and totals."`
	Delete  MealDeleteCmd   `cmd:"" help:"Delete a logged meal."`
	Save    SavedAddCmd     `cmd:"" name:"save" help:"Save a reusable meal template."`
	Saved   SavedListCmd    `cmd:"" help:"List saved meals."`
	Unsave  SavedDeleteCmd  `cmd:"" help:"Delete a saved meal."`
	Use     SavedUseCmd     `cmd:"" help:"Log a meal from a saved template."`
	Weight  WeightAddCmd    `cmd:"" help:"Record a body-weight entry."`
	Weights WeightListCmd   `cmd:"" help:"List weight entries."`
	Unweigh WeightDeleteCmd `cmd:"" help:"Delete a weight entry."`
}

type MealLogCmd struct {
	Type     string   `arg:"" help:"Meal type (breakfast|lunch|dinner|snack)."`
	Items    []string `short:"i" help:"Food items."`
	Calories int      `short:"c" help:"Total calories." default:"0"`
	Protein  float64  `help:"Protein grams." default:"0"`
	Carbs    float64  `help:"Carb grams." default:"0"`
	Fat      float64  `help:"Fat grams." default:"0"`
	Notes    string   `short:"n" help:"Notes."`
}

func (c *MealLogCmd) Run(ctx *cli.Context) error {
	mealType := models.MealType(strings.ToLower(c.Type))
	if err := validation.ValidateMealType(mealType); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("calories", float64(c.Calories)); err != nil {
		return err
	}

	meal := models.Meal{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		MealType:  mealType,
		FoodItems: c.Items,
		Calories:  c.Calories,
		Macros:    models.Macros{Protein: c.Protein, Carbs: c.Carbs, Fat: c.Fat},
		Notes:     c.Notes,
		Timestamp: cli.NowMillis(),
	}
	if err := ctx.Store.AddMeal(meal); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Logged %s (%d kcal).\n", meal.MealType, meal.Calories)
	return nil
}

type MealTodayCmd struct{}

func (c *MealTodayCmd) Run(ctx *cli.Context) error {
	start, end := utils.DayBounds(time.Now())
	meals, err := ctx.Store.GetMeals(ctx.Owner, start, end)
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		fmt.Println("No meals logged today.")
		return nil
	}

	summary := Summarize(meals)
	for _, m := range meals {
		fmt.Printf("%-36s  %-9s  %4d kcal  %s\n",
			m.ID, m.MealType, m.Calories, strings.Join(m.FoodItems, ", "))
	}
	fmt.Printf("\nTotal: %d kcal (P %.0fg / C %.0fg / F %.0fg)\n",
		summary.Calories, summary.Macros.Protein, summary.Macros.Carbs, summary.Macros.Fat)
	return nil
}

// Summarize totals calories and macros across meals.
func Summarize(meals []models.Meal) models.DietSummary {
	var s models.DietSummary
	for _, m := range meals {
		s.Calories += m.Calories
		s.Macros.Protein += m.Macros.Protein
		s.Macros.Carbs += m.Macros.Carbs
		s.Macros.Fat += m.Macros.Fat
	}
	return s
}

type MealDeleteCmd struct {
	ID string `arg:"" help:"Meal ID."`
}

func (c *MealDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteMeal(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted meal.")
	return nil
}

type SavedAddCmd struct {
	Name     string   `arg:"" help:"Template name."`
	Items    []string `short:"i" help:"Food items."`
	Calories int      `short:"c" help:"Total calories." default:"0"`
	Protein  float64  `help:"Protein grams." default:"0"`
	Carbs    float64  `help:"Carb grams." default:"0"`
	Fat      float64  `help:"Fat grams." default:"0"`
	Notes    string   `short:"n" help:"Notes."`
}

func (c *SavedAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireName("name", c.Name); err != nil {
		return err
	}

	meal := models.SavedMeal{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		Name:      c.Name,
		FoodItems: c.Items,
		Calories:  c.Calories,
		Macros:    models.Macros{Protein: c.Protein, Carbs: c.Carbs, Fat: c.Fat},
		Notes:     c.Notes,
	}
	if err := ctx.Store.AddSavedMeal(meal); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Saved meal template: %s (ID: %s)\n", meal.Name, meal.ID)
	return nil
}

type SavedListCmd struct{}

func (c *SavedListCmd) Run(ctx *cli.Context) error {
	meals, err := ctx.Store.GetSavedMeals(ctx.Owner)
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		fmt.Println("No saved meals.")
		return nil
	}
	for _, m := range meals {
		fmt.Printf("%-36s  %-20s  %4d kcal  %s\n",
			m.ID, m.Name, m.Calories, strings.Join(m.FoodItems, ", "))
	}
	return nil
}

type SavedDeleteCmd struct {
	ID string `arg:"" help:"Saved meal ID."`
}

func (c *SavedDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteSavedMeal(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted saved meal.")
	return nil
}

type SavedUseCmd struct {
	Name string `arg:"" help:"Saved meal name."`
	Type string `arg:"" help:"Meal type (breakfast|lunch|dinner|snack)."`
}

func (c *SavedUseCmd) Run(ctx *cli.Context) error {
	mealType := models.MealType(strings.ToLower(c.Type))
	if err := validation.ValidateMealType(mealType); err != nil {
		return err
	}

	saved, err := ctx.Store.GetSavedMeals(ctx.Owner)
	if err != nil {
		return err
	}
	var template *models.SavedMeal
	for i := range saved {
		if strings.EqualFold(saved[i].Name, c.Name) {
			template = &saved[i]
			break
		}
	}
	if template == nil {
		return apperrors.NotFound("saved meal", c.Name)
	}

	meal := models.Meal{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		MealType:  mealType,
		FoodItems: template.FoodItems,
		Calories:  template.Calories,
		Macros:    template.Macros,
		Notes:     template.Notes,
		Timestamp: cli.NowMillis(),
	}
	if err := ctx.Store.AddMeal(meal); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Logged %s from template %s (%d kcal).\n", meal.MealType, template.Name, meal.Calories)
	return nil
}

type WeightAddCmd struct {
	Weight float64 `arg:"" help:"Body weight."`
	Notes  string  `short:"n" help:"Notes."`
}

func (c *WeightAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireNonNegative("weight", c.Weight); err != nil {
		return err
	}

	entry := models.WeightEntry{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		Weight:    c.Weight,
		Notes:     c.Notes,
		Timestamp: cli.NowMillis(),
	}
	if err := ctx.Store.AddWeightEntry(entry); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Recorded weight: %.1f\n", entry.Weight)
	return nil
}

type WeightListCmd struct{}

func (c *WeightListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetWeightEntries(ctx.Owner)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No weight entries.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%-36s  %s  %.1f\n", e.ID, cli.FormatMillis(e.Timestamp), e.Weight)
	}
	return nil
}

type WeightDeleteCmd struct {
	ID string `arg:"" help:"Weight entry ID."`
}

func (c *WeightDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteWeightEntry(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted weight entry.")
	return nil
}
