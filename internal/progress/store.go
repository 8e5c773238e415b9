package progress

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotObject indicates a progress file whose top level is not a JSON object.
var ErrNotObject = errors.New("progress file must contain a JSON object")

// FormatError indicates a malformed progress file. Fatal at startup.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid progress file %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// SaveError indicates a failed snapshot write. Recoverable: in-memory
// progress is intact and the next answer retries the write.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save progress to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// metaKey is the reserved top-level key holding streak metadata.
const metaKey = "__meta__"

// Store owns the per-category answer histories and streak metadata for the
// process lifetime. All mutation goes through RecordOutcome and UpdateStreak;
// a single mutex guards the shared mapping so concurrent panels can answer
// without interleaved corruption.
type Store struct {
	mu         sync.Mutex
	path       string
	categories []string
	progress   map[string]CategoryStats
	meta       StreakMeta
}

// Load reads a persisted snapshot for the given categories. A missing file
// yields an empty store; a malformed one fails with *FormatError. Term
// entries in any of the three legacy shapes are migrated; entries reducing
// to an empty history are dropped.
func Load(path string, categories []string) (*Store, error) {
	s := &Store{
		path:       path,
		categories: append([]string(nil), categories...),
		progress:   make(map[string]CategoryStats, len(categories)),
	}
	for _, category := range categories {
		s.progress[category] = CategoryStats{}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, &FormatError{Path: path, Err: err}
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, &FormatError{Path: path, Err: ErrNotObject}
	}

	if rawMeta, ok := top[metaKey]; ok {
		s.meta = decodeMeta(rawMeta)
	}

	for _, category := range categories {
		rawStats, ok := top[category]
		if !ok {
			continue
		}
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(rawStats, &entries); err != nil {
			// A non-object category section is skipped, not fatal.
			continue
		}
		stats := CategoryStats{}
		for term, record := range entries {
			if h := decodeRecord(record); len(h) > 0 {
				stats[term] = h
			}
		}
		s.progress[category] = stats
	}
	return s, nil
}

// decodeMeta reads streak metadata leniently: unreadable counters keep
// their zero defaults, negative values are clamped.
func decodeMeta(raw json.RawMessage) StreakMeta {
	var meta StreakMeta
	var fields struct {
		Streak    json.RawMessage `json:"streak"`
		StreakAt  string          `json:"streak_timestamp"`
		Longest   json.RawMessage `json:"longest_streak"`
		LongestAt string          `json:"longest_streak_timestamp"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return meta
	}
	if n, ok := intLike(fields.Streak); ok && n > 0 {
		meta.Current = n
	}
	if n, ok := intLike(fields.Longest); ok && n > 0 {
		meta.Longest = n
	}
	meta.CurrentAt = fields.StreakAt
	meta.LongestAt = fields.LongestAt
	return meta
}

// Categories returns the category names the store was loaded for.
func (s *Store) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Stats returns a copy of one category's term histories, safe to read while
// other callers record outcomes.
func (s *Store) Stats(category string) CategoryStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := make(CategoryStats, len(s.progress[category]))
	for term, h := range s.progress[category] {
		stats[term] = append(History(nil), h...)
	}
	return stats
}

// History returns a copy of one term's history.
func (s *Store) History(category, term string) History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(History(nil), s.progress[category][term]...)
}

// RecordOutcome appends one outcome to the term's history, creating the
// entry on first occurrence and trimming to the most recent WindowSize.
// It returns the updated history.
func (s *Store) RecordOutcome(category, term string, correct bool) History {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats, ok := s.progress[category]
	if !ok {
		stats = CategoryStats{}
		s.progress[category] = stats
	}
	h := stats[term].Append(correct)
	stats[term] = h
	return append(History(nil), h...)
}

// UpdateStreak applies one outcome to the streak metadata and returns the
// updated value.
func (s *Store) UpdateStreak(correct bool, now time.Time) StreakMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = s.meta.Update(correct, now)
	return s.meta
}

// Streak returns the current streak metadata.
func (s *Store) Streak() StreakMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

// Save writes a full snapshot: the metadata block plus, per category, every
// term with a non-empty history. The snapshot goes to a temp file in the
// same directory and is renamed over the target, so a failed write never
// truncates the previous snapshot. One best-effort attempt; on failure the
// existing file is left as-is for the caller to retry on the next answer.
func (s *Store) Save() error {
	type record struct {
		History History `json:"history"`
	}

	s.mu.Lock()
	payload := make(map[string]any, len(s.categories)+1)
	payload[metaKey] = s.meta
	for _, category := range s.categories {
		records := make(map[string]record, len(s.progress[category]))
		for term, h := range s.progress[category] {
			if len(h) > 0 {
				records[term] = record{History: append(History(nil), h...)}
			}
		}
		payload[category] = records
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".progress-*.json")
	if err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &SaveError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &SaveError{Path: s.path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return &SaveError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}
