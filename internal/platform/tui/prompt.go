package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#D24545")).
	Padding(1, 4).
	Align(lipgloss.Center).
	Bold(true)

// Prompter shows a modal message over the arena until the player
// acknowledges it.
type Prompter struct {
	message string
	ack     func()
}

// Alert implements session.Prompter.
func (p *Prompter) Alert(message string, ack func()) {
	p.message = message
	p.ack = ack
}

// Active reports whether a message is waiting for acknowledgement.
func (p *Prompter) Active() bool {
	return p.ack != nil
}

// Acknowledge dismisses the message and runs its callback.
func (p *Prompter) Acknowledge() bool {
	if p.ack == nil {
		return false
	}
	ack := p.ack
	p.ack = nil
	p.message = ""
	ack()
	return true
}

// View renders the pending message centred in a w×h area.
func (p *Prompter) View(w, h int, hint string) string {
	body := p.message
	if hint != "" {
		body += "\n\n" + hint
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, promptStyle.Render(body))
}
