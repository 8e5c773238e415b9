package progress

import (
	"encoding/json"
	"strconv"
)

// decodeRecord converts one persisted term entry into a canonical History.
// Three legacy shapes are accepted:
//
//	{"history": [0, 1, ...]}        current format
//	{"attempts": N, "correct": M}   aggregate format, pre-history
//	[0, 1, ...]                     bare array
//
// An object whose history value is not an array is read as the aggregate
// format.
//
// Anything else, or an entry reducing to an empty history, yields nil and
// the caller drops the term.
func decodeRecord(raw json.RawMessage) History {
	var record struct {
		History  json.RawMessage `json:"history"`
		Attempts json.RawMessage `json:"attempts"`
		Correct  json.RawMessage `json:"correct"`
	}
	if err := json.Unmarshal(raw, &record); err == nil && isObject(raw) {
		if record.History != nil {
			var h History
			if err := json.Unmarshal(record.History, &h); err == nil {
				return h.trim()
			}
			// A non-array history value falls through to the aggregate
			// counters, same as an entry without a history key.
		}
		return synthesize(record.Attempts, record.Correct)
	}

	var h History
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil
	}
	return h.trim()
}

// synthesize rebuilds a history from an {attempts, correct} aggregate:
// correct outcomes first, then wrong, clipped to the window.
func synthesize(attemptsRaw, correctRaw json.RawMessage) History {
	attempts, ok := intLike(attemptsRaw)
	if !ok {
		return nil
	}
	correct := 0
	if correctRaw != nil {
		// An unreadable counter invalidates the whole aggregate.
		if correct, ok = intLike(correctRaw); !ok {
			return nil
		}
	}
	if attempts <= 0 {
		return nil
	}
	if correct < 0 {
		correct = 0
	}
	if correct > attempts {
		correct = attempts
	}
	wrong := attempts - correct

	h := make(History, 0, WindowSize)
	for i := 0; i < correct && len(h) < WindowSize; i++ {
		h = append(h, true)
	}
	for i := 0; i < wrong && len(h) < WindowSize; i++ {
		h = append(h, false)
	}
	return h
}

func (h History) trim() History {
	if len(h) == 0 {
		return nil
	}
	if len(h) > WindowSize {
		h = h[len(h)-WindowSize:]
	}
	return h
}

func isObject(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// intLike reads a JSON number, or a string holding one, as an int.
// Legacy files written by hand occasionally quote the counters.
func intLike(raw json.RawMessage) (int, bool) {
	if raw == nil {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			return v, true
		}
	}
	return 0, false
}
