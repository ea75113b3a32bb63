package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/logging/events"
)

// Request describes one menu activation: the entry's display label and the
// application message it carries.
type Request struct {
	Label   string
	Message tea.Msg
}

// Bus turns menu activations into Bubble Tea commands.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an activation into a Bubble Tea command while emitting trace
// logs. Entries without a message trace as no-ops and deliver nothing.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.Message == nil {
		events.Menu.Activate(req.Label, "")
		return nil
	}
	events.Menu.Activate(req.Label, fmt.Sprintf("%T", req.Message))
	return func() tea.Msg {
		return req.Message
	}
}
