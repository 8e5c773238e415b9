package quiz

import (
	"math"
	"testing"

	"github.com/dhkim/kwiz/internal/progress"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func repeat(value bool, n int) progress.History {
	h := make(progress.History, n)
	for i := range h {
		h[i] = value
	}
	return h
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name    string
		history progress.History
		mode    Mode
		want    float64
	}{
		// Empty history: fill=10, wrong_ratio=1.0.
		{"never seen fresh", nil, ModeFresh, 18.0 + 80.0 + 4.0},
		{"never seen review", nil, ModeReview, 10.0 + 50.0 + 8.0},

		// Partial window: fill=7, wrong_ratio=1/3.
		{"partial fresh", progress.History{true, true, false}, ModeFresh, 18.0 + 7*8.0 + (1.0/3.0)*4.0},
		{"partial review", progress.History{true, true, false}, ModeReview, 10.0 + 7*5.0 + (1.0/3.0)*8.0},

		// Full window, mastered.
		{"mastered fresh", repeat(true, 10), ModeFresh, 0.25},
		{"mastered review", repeat(true, 10), ModeReview, 0.1},

		// Full window, all wrong.
		{"all wrong fresh", repeat(false, 10), ModeFresh, 1.5 + 8.0},
		{"all wrong review", repeat(false, 10), ModeReview, 1.0 + 14.0},

		// Full window, half wrong.
		{"half wrong fresh", append(repeat(true, 5), repeat(false, 5)...), ModeFresh, 1.5 + 0.5*8.0},
		{"half wrong review", append(repeat(true, 5), repeat(false, 5)...), ModeReview, 1.0 + 0.5*14.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weight(tt.history, tt.mode)
			if !almostEqual(got, tt.want) {
				t.Errorf("Weight(%v, %s) = %v, want %v", tt.history, tt.mode, got, tt.want)
			}
		})
	}
}

func TestWeight_Floor(t *testing.T) {
	for _, mode := range []Mode{ModeFresh, ModeReview} {
		if got := Weight(repeat(true, 10), mode); got < 0.1 {
			t.Errorf("Weight(mastered, %s) = %v, below floor 0.1", mode, got)
		}
	}
}

func TestWeight_FreshExceedsReviewOnPartialWindow(t *testing.T) {
	// The fresh constants dominate at every partial fill with equal ratio.
	for attempts := 0; attempts < 10; attempts++ {
		h := repeat(false, attempts)
		fresh := Weight(h, ModeFresh)
		review := Weight(h, ModeReview)
		if fresh <= review {
			t.Errorf("attempts=%d: fresh %v <= review %v", attempts, fresh, review)
		}
	}
}
