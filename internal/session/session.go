// Package session coordinates one play session: it hands questions to the
// UI panels and funnels every answer through the progress store, streak
// metadata, snapshot save, and answer log as one logical unit.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dhkim/kwiz/internal/eventlog"
	"github.com/dhkim/kwiz/internal/progress"
	"github.com/dhkim/kwiz/internal/quiz"
	"github.com/dhkim/kwiz/internal/vocab"
)

// ErrNoActiveCategories indicates an empty category selection.
var ErrNoActiveCategories = errors.New("at least one category must be active")

// Recorder appends answer events. Satisfied by *eventlog.Log.
type Recorder interface {
	Append(ctx context.Context, a eventlog.Answer) error
}

// Coordinator drives question generation and answer bookkeeping for every
// panel in a session. Safe for concurrent panel callers.
type Coordinator struct {
	ID        string
	Direction quiz.Direction

	catalog *vocab.Catalog
	store   *progress.Store
	log     Recorder
	now     func() time.Time

	mu       sync.Mutex
	rng      *rand.Rand
	active   []string
	saveDown bool // inside a persistence failure episode
}

// New creates a Coordinator over the full catalog. log may be nil.
func New(catalog *vocab.Catalog, store *progress.Store, log Recorder, dir quiz.Direction) *Coordinator {
	return &Coordinator{
		ID:        uuid.NewString(),
		Direction: dir,
		catalog:   catalog,
		store:     store,
		log:       log,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		active:    catalog.Names(),
	}
}

// Categories returns every catalog category name.
func (c *Coordinator) Categories() []string {
	return c.catalog.Names()
}

// Active returns the currently selected categories.
func (c *Coordinator) Active() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.active...)
}

// SetActive restricts question generation to the given categories.
func (c *Coordinator) SetActive(categories []string) error {
	if len(categories) == 0 {
		return ErrNoActiveCategories
	}
	for _, name := range categories {
		if _, ok := c.catalog.Pool(name); !ok {
			return fmt.Errorf("unknown category %q", name)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = append([]string(nil), categories...)
	return nil
}

// PickCategory returns a random active category, avoiding current when
// another choice exists. Panels rotate categories after each answer.
func (c *Coordinator) PickCategory(current string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var others []string
	for _, name := range c.active {
		if name != current {
			others = append(others, name)
		}
	}
	if len(others) == 0 {
		return current
	}
	return others[c.rng.Intn(len(others))]
}

// NextQuestion builds a weighted question for the category and mode.
func (c *Coordinator) NextQuestion(category string, mode quiz.Mode) (quiz.Question, error) {
	pool, ok := c.catalog.Pool(category)
	if !ok {
		return quiz.Question{}, fmt.Errorf("unknown category %q", category)
	}
	stats := c.store.Stats(category)

	c.mu.Lock()
	defer c.mu.Unlock()
	return quiz.Build(c.rng, pool, stats, mode, c.Direction)
}

// Outcome describes the state after one recorded answer.
type Outcome struct {
	History progress.History
	Streak  progress.StreakMeta

	// SaveErr is non-nil only when a snapshot write failed and the failure
	// should be surfaced: repeats within one failure episode are suppressed
	// until a write succeeds again.
	SaveErr error
}

// SubmitAnswer records one answered question: history append, streak
// update, snapshot save, and best-effort log append.
func (c *Coordinator) SubmitAnswer(ctx context.Context, category string, q quiz.Question, mode quiz.Mode, correct bool) Outcome {
	now := c.now()
	out := Outcome{
		History: c.store.RecordOutcome(category, q.Term, correct),
		Streak:  c.store.UpdateStreak(correct, now),
	}

	err := c.store.Save()
	c.mu.Lock()
	if err != nil {
		if !c.saveDown {
			c.saveDown = true
			out.SaveErr = err
		}
	} else {
		c.saveDown = false
	}
	c.mu.Unlock()

	if c.log != nil {
		// Log failures never interrupt the session.
		_ = c.log.Append(ctx, eventlog.Answer{
			SessionID: c.ID,
			Category:  category,
			Term:      q.Term,
			Mode:      string(mode),
			Direction: string(c.Direction),
			Correct:   correct,
			At:        now,
		})
	}
	return out
}

// Streak returns the current streak metadata.
func (c *Coordinator) Streak() progress.StreakMeta {
	return c.store.Streak()
}
