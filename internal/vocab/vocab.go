// Package vocab loads and validates category vocabulary pools.
package vocab

import (
	"errors"
	"fmt"
)

// MinPoolSize is the smallest pool that can produce a four-option question.
const MinPoolSize = 4

var (
	// ErrTooFewEntries indicates a vocabulary file with fewer than four items.
	ErrTooFewEntries = errors.New("vocabulary must contain at least four entries")

	// ErrUniqueTranslations indicates fewer than four distinct translations,
	// so a term prompt cannot be given three distinct distractors.
	ErrUniqueTranslations = errors.New("vocabulary must contain at least four unique translations")

	// ErrUniqueTerms indicates fewer than four distinct terms, so a
	// translation prompt cannot be given three distinct distractors.
	ErrUniqueTerms = errors.New("vocabulary must contain at least four unique terms")
)

// InvalidEntryError indicates an entry that is not an object with non-empty
// "korean" and "english" string fields.
type InvalidEntryError struct {
	Path string
	Err  error
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("%s contains an invalid entry: %v", e.Path, e.Err)
}

func (e *InvalidEntryError) Unwrap() error { return e.Err }

// Item is a single (term, translation) pair. Immutable once loaded.
type Item struct {
	Term        string `json:"korean"`
	Translation string `json:"english"`
}

// Pool is the ordered vocabulary of one category. Load preserves file order;
// consumers treat the pool as read-only.
type Pool []Item

// Validate checks the pool invariants required for question building.
func (p Pool) Validate() error {
	if len(p) < MinPoolSize {
		return ErrTooFewEntries
	}

	translations := make(map[string]struct{}, len(p))
	terms := make(map[string]struct{}, len(p))
	for _, item := range p {
		translations[item.Translation] = struct{}{}
		terms[item.Term] = struct{}{}
	}
	if len(translations) < MinPoolSize {
		return ErrUniqueTranslations
	}
	if len(terms) < MinPoolSize {
		return ErrUniqueTerms
	}
	return nil
}
