// Package progress tracks per-word answer history and streak metadata and
// persists them as a JSON snapshot.
package progress

import (
	"bytes"
	"encoding/json"
)

// WindowSize is the number of most recent outcomes kept per term.
const WindowSize = 10

// History is the bounded ordered sequence of outcomes for one term,
// most recent last. True marks a correct answer.
type History []bool

// CategoryStats maps term to its answer history within one category.
type CategoryStats map[string]History

// Append returns the history with one outcome added, trimmed from the front
// to the most recent WindowSize entries.
func (h History) Append(correct bool) History {
	out := append(h, correct)
	if len(out) > WindowSize {
		out = out[len(out)-WindowSize:]
	}
	return out
}

// Wrong returns the number of incorrect outcomes.
func (h History) Wrong() int {
	wrong := 0
	for _, ok := range h {
		if !ok {
			wrong++
		}
	}
	return wrong
}

// WrongRatio returns wrong/attempts. A never-seen term is treated as
// maximally uncertain and yields 1.0.
func (h History) WrongRatio() float64 {
	if len(h) == 0 {
		return 1.0
	}
	return float64(h.Wrong()) / float64(len(h))
}

// MarshalJSON writes the history as an array of 0/1 for file compatibility.
func (h History) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, ok := range h {
		if i > 0 {
			b.WriteString(", ")
		}
		if ok {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

// UnmarshalJSON accepts an array of boolean-like values (0/1, true/false).
// Entries of any other type are skipped, matching the tolerant reader
// behavior for hand-edited files.
func (h *History) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(History, 0, len(raw))
	for _, v := range raw {
		if ok, valid := boolLike(v); valid {
			out = append(out, ok)
		}
	}
	*h = out
	return nil
}

// boolLike interprets a JSON value as an outcome: booleans directly,
// integer literals by truthiness. Fractional numbers, strings, and other
// types are not outcomes.
func boolLike(raw json.RawMessage) (value, valid bool) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			return v != 0, true
		}
	}
	return false, false
}
