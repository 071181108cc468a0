package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/milele-cleaning/milele/internal/ui"
)

// Chat bot lines.
const (
	ChatGreeting = "Hi! How can I help you today?"
	ChatReply    = "Thanks for your message! (This is a demo bot.)"
)

// Sender identifies who wrote a chat line.
type Sender int

const (
	SenderBot Sender = iota
	SenderUser
)

// ChatLine is one message in the chat panel.
type ChatLine struct {
	From Sender
	Text string
}

// Chat is the floating demo chat panel.
type Chat struct {
	open  bool
	lines []ChatLine
	input textinput.Model
	theme *ui.Theme
	width int
}

// NewChat creates a closed chat panel seeded with the greeting.
func NewChat(theme *ui.Theme) *Chat {
	in := textinput.New()
	in.Placeholder = "Type a message..."
	in.CharLimit = 500
	return &Chat{
		lines: []ChatLine{{From: SenderBot, Text: ChatGreeting}},
		input: in,
		theme: theme,
		width: 40,
	}
}

// Open reports whether the panel is showing.
func (c *Chat) Open() bool { return c.open }

// Lines returns the conversation so far.
func (c *Chat) Lines() []ChatLine { return c.lines }

// Toggle shows or hides the panel.
func (c *Chat) Toggle() tea.Cmd {
	c.open = !c.open
	if c.open {
		return c.input.Focus()
	}
	c.input.Blur()
	return nil
}

// SetWidth sets the panel width in columns.
func (c *Chat) SetWidth(w int) {
	c.width = max(24, min(w, 60))
	c.input.Width = c.width - 6
}

// Send appends a user message and the bot's reply. Blank input is ignored.
func (c *Chat) Send(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.lines = append(c.lines,
		ChatLine{From: SenderUser, Text: text},
		ChatLine{From: SenderBot, Text: ChatReply},
	)
	return true
}

// Update handles input while the panel is open.
func (c *Chat) Update(msg tea.Msg) tea.Cmd {
	if !c.open {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Back):
			return c.Toggle()
		case km.Type == tea.KeyEnter:
			if c.Send(c.input.Value()) {
				c.input.Reset()
			}
			return nil
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the panel, or the closed affordance.
func (c *Chat) View() string {
	if !c.open {
		return c.theme.Subtle().Render("[c] Chat with us")
	}

	inner := c.width - 4
	var b strings.Builder
	b.WriteString(c.theme.Title().Render("Milele Assistant"))
	b.WriteString("\n\n")

	// Keep the most recent lines that fit.
	start := max(0, len(c.lines)-8)
	for _, l := range c.lines[start:] {
		text := wordwrap.String(l.Text, inner-2)
		if l.From == SenderUser {
			b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Right, c.theme.Accent().Render(text)))
		} else {
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(c.input.View())

	return c.theme.Card().Width(c.width - 2).Render(b.String())
}
