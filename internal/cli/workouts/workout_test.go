package workouts

import (
	"errors"
	"testing"

	apperrors "github.com/julianstephens/lifelog/internal/errors"
)

func TestParseSets(t *testing.T) {
	sets, err := parseSets([]string{"10@135", "8@145.5", "12"})
	if err != nil {
		t.Fatalf("parseSets: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(sets))
	}
	if sets[0].Reps != 10 || sets[0].Weight != 135 {
		t.Errorf("set 0: got %d reps at %.1f", sets[0].Reps, sets[0].Weight)
	}
	if sets[1].Weight != 145.5 {
		t.Errorf("set 1: got weight %.1f, want 145.5", sets[1].Weight)
	}
	if sets[2].Reps != 12 || sets[2].Weight != 0 {
		t.Errorf("bodyweight set: got %d reps at %.1f", sets[2].Reps, sets[2].Weight)
	}
}

func TestParseSetsRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "abc", "0@100", "-3@50", "10@abc", "10@-5"} {
		if _, err := parseSets([]string{raw}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("parseSets(%q): got %v, want invalid input", raw, err)
		}
	}
}
