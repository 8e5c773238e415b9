package quiz

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/dhkim/kwiz/internal/progress"
	"github.com/dhkim/kwiz/internal/vocab"
)

// OptionCount is the number of answer options per question.
const OptionCount = 4

// ErrInsufficientDistractors indicates fewer than three distinct wrong
// answer values exist for the selected word. Load-time validation should
// prevent this, but the check stays because flipping the direction flips
// which field must be unique.
var ErrInsufficientDistractors = errors.New("vocabulary must include at least four unique answer values")

// Direction controls which side of the pair is the prompt.
type Direction string

const (
	// TermToTranslation prompts with the Korean term.
	TermToTranslation Direction = "term-to-translation"
	// TranslationToTerm prompts with the English translation.
	TranslationToTerm Direction = "translation-to-term"
)

// Question is one rendered quiz item. Term keeps the source-language key for
// history bookkeeping regardless of direction.
type Question struct {
	Prompt  string
	Options []string
	Answer  string
	Term    string
}

// CorrectIndex returns the position of the correct answer in Options.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return -1
}

// Grade reports whether a typed response matches the answer, ignoring
// surrounding whitespace and letter case.
func (q Question) Grade(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), q.Answer)
}

// Build performs one weighted draw over the pool and assembles a question
// for the selected word. It does not mutate stats; terms absent from stats
// count as never seen.
func Build(rng *rand.Rand, pool vocab.Pool, stats progress.CategoryStats, mode Mode, dir Direction) (Question, error) {
	selected := pickWeighted(rng, pool, stats, mode)
	return makeQuestion(rng, pool, selected, dir)
}

// pickWeighted draws one pool item with probability proportional to its
// weight. Weights are strictly positive, so the total cannot be zero.
func pickWeighted(rng *rand.Rand, pool vocab.Pool, stats progress.CategoryStats, mode Mode) vocab.Item {
	weights := make([]float64, len(pool))
	total := 0.0
	for i, item := range pool {
		w := Weight(stats[item.Term], mode)
		weights[i] = w
		total += w
	}

	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return pool[i]
		}
	}
	// Float drift can leave target at a hair above zero.
	return pool[len(pool)-1]
}

// makeQuestion builds the four-option question for a pre-selected word.
// Distractors are drawn uniformly without replacement from the other
// distinct answer values; two words sharing a value contribute one
// candidate.
func makeQuestion(rng *rand.Rand, pool vocab.Pool, selected vocab.Item, dir Direction) (Question, error) {
	prompt, answer := promptAnswer(selected, dir)

	seen := map[string]struct{}{answer: {}}
	var candidates []string
	for _, item := range pool {
		_, value := promptAnswer(item, dir)
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}
	if len(candidates) < OptionCount-1 {
		return Question{}, ErrInsufficientDistractors
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	options := append(candidates[:OptionCount-1:OptionCount-1], answer)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		Prompt:  prompt,
		Options: options,
		Answer:  answer,
		Term:    selected.Term,
	}, nil
}

// promptAnswer splits an item into (prompt, answer) for a direction.
func promptAnswer(item vocab.Item, dir Direction) (prompt, answer string) {
	if dir == TranslationToTerm {
		return item.Translation, item.Term
	}
	return item.Term, item.Translation
}
