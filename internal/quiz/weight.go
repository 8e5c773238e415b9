// Package quiz turns answer histories into sampling weights and builds
// weighted multiple-choice questions.
package quiz

import "github.com/dhkim/kwiz/internal/progress"

// Mode selects which words the sampler favors.
type Mode string

const (
	// ModeFresh favors new or rarely seen words.
	ModeFresh Mode = "fresh"
	// ModeReview favors words with a high recent error rate.
	ModeReview Mode = "review"
)

// Label returns the mode's display name.
func (m Mode) Label() string {
	if m == ModeFresh {
		return "New Focus"
	}
	return "Tough Review"
}

// minWeight keeps every word selectable.
const minWeight = 0.1

// Weight converts a term's answer history into a relative sampling weight.
//
// Words with a partially filled window are boosted by how empty it is, so
// under-seen words surface regardless of mode. Once the window is full,
// mastered words (no wrong answers) drop to a trickle and the rest scale
// with their error ratio, far more steeply in review mode.
func Weight(h progress.History, mode Mode) float64 {
	attempts := len(h)
	ratio := h.WrongRatio()

	var w float64
	if attempts < progress.WindowSize {
		fill := float64(progress.WindowSize - attempts)
		if mode == ModeFresh {
			w = 18.0 + fill*8.0 + ratio*4.0
		} else {
			w = 10.0 + fill*5.0 + ratio*8.0
		}
	} else if ratio == 0 {
		if mode == ModeFresh {
			w = 0.25
		} else {
			w = 0.1
		}
	} else {
		if mode == ModeFresh {
			w = 1.5 + ratio*8.0
		} else {
			w = 1.0 + ratio*14.0
		}
	}

	return max(w, minWeight)
}
