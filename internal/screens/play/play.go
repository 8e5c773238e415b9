// Package play renders the quiz board: a grid of question cards with fresh
// mode on the top row and review mode on the bottom row.
package play

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dhkim/kwiz/internal/quiz"
	"github.com/dhkim/kwiz/internal/router"
	"github.com/dhkim/kwiz/internal/screen"
	"github.com/dhkim/kwiz/internal/screens/picker"
	"github.com/dhkim/kwiz/internal/session"
	"github.com/dhkim/kwiz/internal/ui/components"
	"github.com/dhkim/kwiz/internal/ui/layout"
	"github.com/dhkim/kwiz/internal/ui/theme"
)

// feedbackDelay holds the answer feedback on screen before the next
// question loads.
const feedbackDelay = 1500 * time.Millisecond

// advanceMsg asks one card to load its next question.
type advanceMsg struct {
	index int
}

// card is one question panel with a fixed mode and a rotating category.
type card struct {
	category string
	mode     quiz.Mode
	question quiz.Question
	choice   components.Choice
	input    components.TextInput
	feedback string
	showing  bool // answer feedback on screen
	errMsg   string
}

func (c *card) title() string {
	return fmt.Sprintf("%s: %s", c.category, c.mode.Label())
}

// PlayScreen implements screen.Screen for the quiz board.
type PlayScreen struct {
	co      *session.Coordinator
	typed   bool
	columns int
	cards   []card
	focused int
	notice  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.Resumer = (*PlayScreen)(nil)

// New creates the board with columns cards per mode row.
func New(co *session.Coordinator, typed bool, columns int) *PlayScreen {
	if columns < 1 {
		columns = 1
	}
	s := &PlayScreen{co: co, typed: typed, columns: columns}
	for _, mode := range []quiz.Mode{quiz.ModeFresh, quiz.ModeReview} {
		for i := 0; i < columns; i++ {
			s.cards = append(s.cards, card{
				category: co.PickCategory(""),
				mode:     mode,
				input:    components.NewTextInput("Type your answer...", 40),
			})
		}
	}
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	for i := range s.cards {
		s.loadCard(i)
	}
	return s.cards[s.focused].input.Init()
}

func (s *PlayScreen) Title() string {
	return "Play"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next card"},
	}
	if s.typed {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Answer"})
	}
	sectionsKey := "S"
	if s.typed {
		sectionsKey = "Ctrl+S"
	}
	hints = append(hints,
		layout.KeyHint{Key: sectionsKey, Description: "Sections"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

// openPicker pushes the section picker; Resume reloads the board once the
// picker pops.
func (s *PlayScreen) openPicker() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: picker.New(s.co)}
	}
}

// Resume reloads every card after the picker (or any screen above) pops,
// so cards on deselected categories rotate away.
func (s *PlayScreen) Resume() tea.Cmd {
	s.RefreshAll()
	return nil
}

// loadCard fetches the next weighted question for a card.
func (s *PlayScreen) loadCard(i int) {
	c := &s.cards[i]
	q, err := s.co.NextQuestion(c.category, c.mode)
	if err != nil {
		c.errMsg = err.Error()
		return
	}
	c.errMsg = ""
	c.question = q
	c.choice = components.NewChoice(q.Options, q.CorrectIndex())
	c.input.Reset()
	c.feedback = ""
	c.showing = false
}

// RefreshAll reloads every card, e.g. after the section selection changed.
func (s *PlayScreen) RefreshAll() {
	for i := range s.cards {
		c := &s.cards[i]
		active := s.co.Active()
		known := false
		for _, name := range active {
			if name == c.category {
				known = true
				break
			}
		}
		if !known {
			c.category = s.co.PickCategory("")
		}
		s.loadCard(i)
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		c := &s.cards[msg.index]
		c.category = s.co.PickCategory(c.category)
		s.loadCard(msg.index)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.focused = (s.focused + 1) % len(s.cards)
			return s, nil
		case "shift+tab":
			s.focused = (s.focused - 1 + len(s.cards)) % len(s.cards)
			return s, nil
		case "ctrl+s":
			return s, s.openPicker()
		}
		if !s.typed {
			switch msg.String() {
			case "right":
				s.focused = (s.focused + 1) % len(s.cards)
				return s, nil
			case "left":
				s.focused = (s.focused - 1 + len(s.cards)) % len(s.cards)
				return s, nil
			case "s":
				return s, s.openPicker()
			}
		}
		return s.updateFocused(msg)
	}

	return s, nil
}

// updateFocused routes a key to the focused card and records the answer
// once the card submits.
func (s *PlayScreen) updateFocused(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	c := &s.cards[s.focused]
	if c.showing || c.errMsg != "" {
		return s, nil
	}

	var correct bool
	var answered bool

	if s.typed {
		if msg.String() == "enter" {
			correct = c.question.Grade(c.input.Value())
			c.input.Submit(correct)
			answered = true
		} else {
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return s, cmd
		}
	} else {
		c.choice, _ = c.choice.Update(msg)
		if c.choice.Submitted {
			correct = c.choice.IsCorrect()
			answered = true
		}
	}

	if !answered {
		return s, nil
	}

	out := s.co.SubmitAnswer(context.Background(), c.category, c.question, c.mode, correct)
	if correct {
		c.feedback = "Correct!"
	} else {
		c.feedback = "Correct answer: " + c.question.Answer
	}
	c.showing = true

	s.notice = ""
	if out.SaveErr != nil {
		s.notice = "Could not save progress: " + out.SaveErr.Error()
	}

	index := s.focused
	return s, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return advanceMsg{index: index}
	})
}

func (s *PlayScreen) View(width, height int) string {
	sidebar := ""
	boardWidth := width
	if width >= 100 {
		sidebar = s.renderSidebar()
		boardWidth = width - lipgloss.Width(sidebar)
	}

	cardWidth := boardWidth/s.columns - 2
	var rows []string
	for row := 0; row < 2; row++ {
		var cells []string
		for col := 0; col < s.columns; col++ {
			i := row*s.columns + col
			cells = append(cells, s.renderCard(i, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	board := lipgloss.JoinVertical(lipgloss.Left, rows...)

	view := board
	if sidebar != "" {
		view = lipgloss.JoinHorizontal(lipgloss.Top, board, sidebar)
	}
	if s.notice != "" {
		view += "\n" + theme.Incorrect.Render("  "+s.notice)
	}
	return view
}

func (s *PlayScreen) renderCard(i, width int) string {
	c := &s.cards[i]

	title := theme.Hint.Render(c.title())
	body := title + "\n"

	if c.errMsg != "" {
		body += theme.Body.Render("Unable to generate question.") + "\n"
		body += theme.Hint.Render(c.errMsg) + "\n"
	} else {
		body += theme.Title.Render(c.question.Prompt) + "\n\n"
		if s.typed {
			body += c.input.View() + "\n"
		} else {
			body += c.choice.View()
		}
		if c.feedback != "" {
			if c.feedback == "Correct!" {
				body += theme.Correct.Render(c.feedback)
			} else {
				body += theme.Incorrect.Render(c.feedback)
			}
		}
	}

	style := theme.Card
	if i == s.focused {
		style = theme.CardActive
	}
	return style.Width(width).Render(body)
}

// renderSidebar shows the per-category scoreboard and the streak pair.
func (s *PlayScreen) renderSidebar() string {
	meta := s.co.Streak()
	body := theme.Subtitle.Render("Scores") + "\n\n"
	body += theme.Body.Render(fmt.Sprintf("Streak: %d (%s)", meta.Current, orNA(meta.CurrentAt))) + "\n"
	body += theme.Body.Render(fmt.Sprintf("Longest: %d (%s)", meta.Longest, orNA(meta.LongestAt))) + "\n\n"
	for _, score := range s.co.Scoreboard() {
		body += theme.Hint.Render(score.String()) + "\n"
	}
	return theme.Card.Width(30).Render(body)
}

func orNA(stamp string) string {
	if stamp == "" {
		return "n/a"
	}
	return stamp
}
