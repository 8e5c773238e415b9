// Package stats shows the learner's scoreboard, streaks and the terms that
// keep tripping them up.
package stats

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dhkim/kwiz/internal/eventlog"
	"github.com/dhkim/kwiz/internal/screen"
	"github.com/dhkim/kwiz/internal/session"
	"github.com/dhkim/kwiz/internal/ui/layout"
	"github.com/dhkim/kwiz/internal/ui/theme"
)

const hardestLimit = 5

// loadedMsg carries the event log aggregates once the queries finish.
type loadedMsg struct {
	totals  []eventlog.CategoryTotals
	hardest []eventlog.TermTotals
	err     error
}

// StatsScreen implements screen.Screen for the statistics view.
type StatsScreen struct {
	co      *session.Coordinator
	log     *eventlog.Log
	totals  []eventlog.CategoryTotals
	hardest []eventlog.TermTotals
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen. log may be nil when the event log failed
// to open; lifetime totals are hidden in that case.
func New(co *session.Coordinator, log *eventlog.Log) *StatsScreen {
	return &StatsScreen{co: co, log: log}
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.log == nil {
		s.loaded = true
		return nil
	}
	log := s.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		totals, err := log.Totals(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		hardest, err := log.HardestTerms(ctx, hardestLimit)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{totals: totals, hardest: hardest}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		s.loaded = true
		if msg.err != nil {
			s.errMsg = "Could not load lifetime totals: " + msg.err.Error()
			return s, nil
		}
		s.totals = msg.totals
		s.hardest = msg.hardest
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	left := s.renderWindow()
	right := s.renderLifetime()

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Card.Width(36).Render(left),
		" ",
		theme.Card.Width(36).Render(right),
	)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(columns)
}

// renderWindow shows scores computed from the rolling history window.
func (s *StatsScreen) renderWindow() string {
	out := theme.Title.Render("Recent Scores") + "\n\n"
	for _, score := range s.co.Scoreboard() {
		out += theme.Body.Render(score.String()) + "\n"
	}

	streak := s.co.Streak()
	out += "\n" + theme.Title.Render("Streaks") + "\n\n"
	out += theme.Body.Render(fmt.Sprintf("Current: %d", streak.Current))
	if streak.CurrentAt != "" {
		out += theme.Hint.Render("  since " + streak.CurrentAt)
	}
	out += "\n"
	out += theme.Body.Render(fmt.Sprintf("Longest: %d", streak.Longest))
	if streak.LongestAt != "" {
		out += theme.Hint.Render("  set " + streak.LongestAt)
	}
	out += "\n"
	return out
}

// renderLifetime shows aggregates from the answer event log.
func (s *StatsScreen) renderLifetime() string {
	out := theme.Title.Render("All Time") + "\n\n"
	switch {
	case s.log == nil:
		out += theme.Hint.Render("Answer log unavailable.") + "\n"
	case !s.loaded:
		out += theme.Hint.Render("Loading…") + "\n"
	case s.errMsg != "":
		out += theme.Incorrect.Render(s.errMsg) + "\n"
	case len(s.totals) == 0:
		out += theme.Hint.Render("No answers recorded yet.") + "\n"
	default:
		for _, t := range s.totals {
			out += theme.Body.Render(fmt.Sprintf("%s: %d/%d (%.0f%%)",
				t.Category, t.Correct, t.Attempts, t.Accuracy()*100)) + "\n"
		}
		if len(s.hardest) > 0 {
			out += "\n" + theme.Title.Render("Hardest Terms") + "\n\n"
			for _, t := range s.hardest {
				out += theme.Body.Render(fmt.Sprintf("%s (%s): %d/%d",
					t.Term, t.Category, t.Correct, t.Attempts)) + "\n"
			}
		}
	}
	return out
}
