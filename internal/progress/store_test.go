package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCategories = []string{"Particles", "Verbs"}

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "progress.json")
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(tempStorePath(t), testCategories)
	require.NoError(t, err)

	assert.Empty(t, s.Stats("Particles"))
	assert.Equal(t, StreakMeta{}, s.Streak())
}

func TestLoad_InvalidTopLevel(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o644))

	_, err := Load(path, testCategories)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestLoad_LegacyShapes(t *testing.T) {
	path := tempStorePath(t)
	content := `{
		"__meta__": {"streak": 3, "streak_timestamp": "2026-08-01 10:00", "longest_streak": 7, "longest_streak_timestamp": "2026-07-15 09:30"},
		"Particles": {
			"은": {"history": [1, 0, 1]},
			"는": {"attempts": 4, "correct": 3},
			"이": [0, 1],
			"가": {"history": []}
		},
		"Verbs": "not an object",
		"Removed Category": {"가다": {"history": [1]}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path, testCategories)
	require.NoError(t, err)

	stats := s.Stats("Particles")
	assert.Equal(t, History{true, false, true}, stats["은"])
	assert.Equal(t, History{true, true, true, false}, stats["는"])
	assert.Equal(t, History{false, true}, stats["이"])
	assert.NotContains(t, stats, "가", "empty history entries are dropped")

	assert.Empty(t, s.Stats("Verbs"))
	assert.Empty(t, s.Stats("Removed Category"))

	meta := s.Streak()
	assert.Equal(t, 3, meta.Current)
	assert.Equal(t, 7, meta.Longest)
	assert.Equal(t, "2026-08-01 10:00", meta.CurrentAt)
}

func TestLoad_LenientMeta(t *testing.T) {
	path := tempStorePath(t)
	content := `{"__meta__": {"streak": "bad", "longest_streak": -4, "streak_timestamp": "x"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path, testCategories)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Streak().Current)
	assert.Equal(t, 0, s.Streak().Longest)
	assert.Equal(t, "x", s.Streak().CurrentAt)
}

func TestRecordOutcome_WindowAndRoundTrip(t *testing.T) {
	path := tempStorePath(t)
	s, err := Load(path, testCategories)
	require.NoError(t, err)

	for i := 0; i < 11; i++ {
		s.RecordOutcome("Particles", "은", i != 0)
	}
	s.RecordOutcome("Verbs", "가다", false)
	s.UpdateStreak(true, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	h := s.History("Particles", "은")
	require.Len(t, h, WindowSize)
	// First outcome (false) fell out of the window.
	for i, ok := range h {
		assert.True(t, ok, "entry %d", i)
	}

	require.NoError(t, s.Save())

	back, err := Load(path, testCategories)
	require.NoError(t, err)
	assert.Equal(t, s.Stats("Particles"), back.Stats("Particles"))
	assert.Equal(t, s.Stats("Verbs"), back.Stats("Verbs"))
	assert.Equal(t, s.Streak(), back.Streak())
}

func TestSave_Failure(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the write fail.
	path := filepath.Join(dir, "progress.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	s, err := Load(filepath.Join(dir, "nope", "missing.json"), testCategories)
	require.NoError(t, err)
	s.path = path
	s.RecordOutcome("Particles", "은", true)

	var saveErr *SaveError
	require.ErrorAs(t, s.Save(), &saveErr)
}

func TestSave_FailureKeepsExistingSnapshot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")

	s, err := Load(path, testCategories)
	require.NoError(t, err)
	s.RecordOutcome("Particles", "은", true)
	require.NoError(t, s.Save())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// A read-only directory blocks the temp file; the snapshot written
	// above must survive the failed attempt byte for byte.
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	var saveErr *SaveError
	require.ErrorAs(t, s.Save(), &saveErr)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSave_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")

	s, err := Load(path, testCategories)
	require.NoError(t, err)
	s.RecordOutcome("Verbs", "가다", false)
	require.NoError(t, s.Save())
	require.NoError(t, s.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "progress.json", entries[0].Name())
}

func TestUpdateStreak(t *testing.T) {
	s := &Store{meta: StreakMeta{Current: 3, Longest: 5}}
	now := time.Date(2026, 8, 30, 9, 41, 0, 0, time.UTC)

	meta := s.UpdateStreak(true, now)
	assert.Equal(t, 4, meta.Current)
	assert.Equal(t, 5, meta.Longest)

	s.UpdateStreak(true, now)
	meta = s.UpdateStreak(true, now.Add(time.Minute))
	assert.Equal(t, 6, meta.Current)
	assert.Equal(t, 6, meta.Longest)
	assert.Equal(t, "2026-08-30 09:42", meta.LongestAt)

	meta = s.UpdateStreak(false, now.Add(2*time.Minute))
	assert.Equal(t, 0, meta.Current)
	assert.Equal(t, 6, meta.Longest)
	assert.Equal(t, "2026-08-30 09:43", meta.CurrentAt)
	assert.Equal(t, "2026-08-30 09:42", meta.LongestAt)
}

func TestStats_ReturnsCopy(t *testing.T) {
	s, err := Load(tempStorePath(t), testCategories)
	require.NoError(t, err)
	s.RecordOutcome("Particles", "은", true)

	stats := s.Stats("Particles")
	stats["은"][0] = false
	stats["새"] = History{true}

	assert.Equal(t, History{true}, s.History("Particles", "은"))
	assert.Empty(t, s.History("Particles", "새"))
}

func TestLoad_MissingFileLoad_Empty(t *testing.T) {
	s, err := Load(tempStorePath(t), nil)
	require.NoError(t, err)
	assert.Empty(t, s.Categories())
}
