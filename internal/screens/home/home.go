// Package home is the landing screen with the main navigation menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dhkim/kwiz/internal/eventlog"
	"github.com/dhkim/kwiz/internal/router"
	"github.com/dhkim/kwiz/internal/screen"
	"github.com/dhkim/kwiz/internal/screens/picker"
	"github.com/dhkim/kwiz/internal/screens/play"
	"github.com/dhkim/kwiz/internal/screens/stats"
	"github.com/dhkim/kwiz/internal/session"
	"github.com/dhkim/kwiz/internal/ui/components"
	"github.com/dhkim/kwiz/internal/ui/layout"
	"github.com/dhkim/kwiz/internal/ui/theme"
)

// HomeScreen is the main landing screen.
type HomeScreen struct {
	co   *session.Coordinator
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. log may be nil when the answer log could
// not be opened.
func New(co *session.Coordinator, log *eventlog.Log, typed bool, columns int) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(co, typed, columns)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(co, log)}
			}
		}},
		{Label: "SECTIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(co)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		co:   co,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	streak := h.co.Streak()
	active := len(h.co.Active())

	var sections []string
	sections = append(sections, theme.Title.Render("한국어 Vocabulary Quiz"))
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("%d sections active  •  streak %d (best %d)",
			active, streak.Current, streak.Longest)))
	sections = append(sections, theme.Card.Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
