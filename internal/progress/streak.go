package progress

import "time"

// TimeLayout is the timestamp format stored in streak metadata.
const TimeLayout = "2006-01-02 15:04"

// StreakMeta tracks the current run of correct answers and the longest run
// ever achieved. Longest never drops below Current after an update.
type StreakMeta struct {
	Current   int    `json:"streak"`
	CurrentAt string `json:"streak_timestamp"`
	Longest   int    `json:"longest_streak"`
	LongestAt string `json:"longest_streak_timestamp"`
}

// Update applies one answer outcome at the given time and returns the
// updated metadata. A correct answer extends the streak and may set a new
// longest; an incorrect answer resets the current streak to zero and stamps
// the reset time. Longest is never reduced.
func (m StreakMeta) Update(correct bool, now time.Time) StreakMeta {
	stamp := now.Format(TimeLayout)
	if correct {
		m.Current++
		m.CurrentAt = stamp
		if m.Current > m.Longest {
			m.Longest = m.Current
			m.LongestAt = stamp
		}
	} else {
		m.Current = 0
		m.CurrentAt = stamp
	}
	return m
}
