// Package picker lets the learner choose which category sections the quiz
// board draws questions from.
package picker

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dhkim/kwiz/internal/router"
	"github.com/dhkim/kwiz/internal/screen"
	"github.com/dhkim/kwiz/internal/session"
	"github.com/dhkim/kwiz/internal/ui/layout"
	"github.com/dhkim/kwiz/internal/ui/theme"
)

// PickerScreen implements screen.Screen for section selection.
type PickerScreen struct {
	co      *session.Coordinator
	names   []string
	checked map[string]bool
	cursor  int
	errMsg  string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the picker seeded with the current selection. The screen
// beneath picks up an applied selection through its Resume callback.
func New(co *session.Coordinator) *PickerScreen {
	checked := make(map[string]bool)
	for _, name := range co.Active() {
		checked[name] = true
	}
	return &PickerScreen{
		co:      co,
		names:   co.Categories(),
		checked: checked,
	}
}

func (s *PickerScreen) Init() tea.Cmd {
	return nil
}

func (s *PickerScreen) Title() string {
	return "Sections"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "All"},
		{Key: "N", Description: "None"},
		{Key: "Enter", Description: "Apply"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.names)-1 {
			s.cursor++
		}
	case " ", "space":
		name := s.names[s.cursor]
		s.checked[name] = !s.checked[name]
		s.errMsg = ""
	case "a":
		for _, name := range s.names {
			s.checked[name] = true
		}
		s.errMsg = ""
	case "n":
		for _, name := range s.names {
			s.checked[name] = false
		}
	case "enter":
		var selection []string
		for _, name := range s.names {
			if s.checked[name] {
				selection = append(selection, name)
			}
		}
		if err := s.co.SetActive(selection); err != nil {
			s.errMsg = "Please select at least one section to study."
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *PickerScreen) View(width, height int) string {
	body := theme.Title.Render("Select sections to study") + "\n\n"
	for i, name := range s.names {
		mark := "[ ]"
		if s.checked[name] {
			mark = "[x]"
		}
		line := "  " + mark + " " + name
		if i == s.cursor {
			body += theme.Selected.Render("▸"+line[1:]) + "\n"
		} else {
			body += theme.Unselected.Render(line) + "\n"
		}
	}
	if s.errMsg != "" {
		body += "\n" + theme.Incorrect.Render(s.errMsg)
	}
	return body
}
