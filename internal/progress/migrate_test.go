package progress

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, raw string) History {
	t.Helper()
	return decodeRecord(json.RawMessage(raw))
}

func TestDecodeRecord_HistoryObject(t *testing.T) {
	h := decode(t, `{"history": [1, 0, 1]}`)
	want := History{true, false, true}
	if !reflect.DeepEqual(h, want) {
		t.Errorf("history = %v, want %v", h, want)
	}
}

func TestDecodeRecord_HistoryObjectTrimmed(t *testing.T) {
	h := decode(t, `{"history": [0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1]}`)
	if len(h) != WindowSize {
		t.Fatalf("len = %d, want %d", len(h), WindowSize)
	}
	// Oldest entries drop first.
	if h[0] != false || h[1] != true {
		t.Errorf("window start = %v, %v, want false, true", h[0], h[1])
	}
}

func TestDecodeRecord_BareArray(t *testing.T) {
	h := decode(t, `[1, 1, 0]`)
	want := History{true, true, false}
	if !reflect.DeepEqual(h, want) {
		t.Errorf("history = %v, want %v", h, want)
	}
}

func TestDecodeRecord_Aggregate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want History
	}{
		{
			"correct then wrong",
			`{"attempts": 5, "correct": 3}`,
			History{true, true, true, false, false},
		},
		{
			"clipped to window, correct first",
			`{"attempts": 20, "correct": 15}`,
			History{true, true, true, true, true, true, true, true, true, true},
		},
		{
			"wrong fills remaining slots",
			`{"attempts": 12, "correct": 5}`,
			History{true, true, true, true, true, false, false, false, false, false},
		},
		{
			"correct clamped to attempts",
			`{"attempts": 2, "correct": 9}`,
			History{true, true},
		},
		{
			"quoted counters",
			`{"attempts": "3", "correct": "1"}`,
			History{true, false, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode(t, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("history = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeRecord_NonArrayHistoryFallsBack(t *testing.T) {
	// A mangled history value does not lose the term when the aggregate
	// counters are still readable.
	h := decode(t, `{"history": "oops", "attempts": 5, "correct": 2}`)
	want := History{true, true, false, false, false}
	if !reflect.DeepEqual(h, want) {
		t.Errorf("history = %v, want %v", h, want)
	}
}

func TestDecodeRecord_Dropped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty history", `{"history": []}`},
		{"non-array history, no counters", `{"history": "oops"}`},
		{"empty object", `{}`},
		{"zero attempts", `{"attempts": 0, "correct": 0}`},
		{"unreadable attempts", `{"attempts": {}, "correct": 1}`},
		{"unreadable correct", `{"attempts": 4, "correct": []}`},
		{"empty array", `[]`},
		{"string record", `"not a record"`},
		{"null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h := decode(t, tt.raw); len(h) != 0 {
				t.Errorf("history = %v, want empty", h)
			}
		})
	}
}
