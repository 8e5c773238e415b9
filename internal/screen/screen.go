// Package screen defines the contract between the router and the
// individual views.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dhkim/kwiz/internal/ui/layout"
)

// Screen is one view on the router stack.
type Screen interface {
	// Init returns an initial command when the screen is first pushed.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that need to react when the screen
// above them pops, e.g. to reload state the popped screen changed.
type Resumer interface {
	Resume() tea.Cmd
}
