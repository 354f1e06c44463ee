package diet

import (
	"testing"

	"github.com/julianstephens/lifelog/internal/models"
)

func TestSummarize(t *testing.T) {
	meals := []models.Meal{
		{Calories: 400, Macros: models.Macros{Protein: 30, Carbs: 40, Fat: 10}},
		{Calories: 650, Macros: models.Macros{Protein: 45, Carbs: 60, Fat: 22}},
	}

	s := Summarize(meals)
	if s.Calories != 1050 {
		t.Errorf("calories: got %d, want 1050", s.Calories)
	}
	if s.Macros.Protein != 75 || s.Macros.Carbs != 100 || s.Macros.Fat != 32 {
		t.Errorf("macros: got %+v", s.Macros)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Calories != 0 || s.Macros.Protein != 0 {
		t.Errorf("empty day should total zero, got %+v", s)
	}
}
