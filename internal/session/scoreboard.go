package session

import "fmt"

// CategoryScore summarizes a category's answers inside the history window.
type CategoryScore struct {
	Category string
	Correct  int
	Attempts int
}

// String renders the score the way the scoreboard displays it.
func (s CategoryScore) String() string {
	if s.Attempts == 0 {
		return fmt.Sprintf("%s: 0/0", s.Category)
	}
	accuracy := float64(s.Correct) / float64(s.Attempts) * 100
	return fmt.Sprintf("%s: %d/%d (%.0f%%)", s.Category, s.Correct, s.Attempts, accuracy)
}

// Scoreboard returns one score per catalog category, in catalog order,
// computed from the windowed histories in the progress store.
func (c *Coordinator) Scoreboard() []CategoryScore {
	var scores []CategoryScore
	for _, category := range c.catalog.Names() {
		score := CategoryScore{Category: category}
		for _, h := range c.store.Stats(category) {
			score.Attempts += len(h)
			for _, ok := range h {
				if ok {
					score.Correct++
				}
			}
		}
		scores = append(scores, score)
	}
	return scores
}
