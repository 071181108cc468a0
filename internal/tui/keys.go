package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the app's key bindings.
type KeyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Book     key.Binding
	Chat     key.Binding
	WhatsApp key.Binding
	Logout   key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
	Num1     key.Binding
	Num2     key.Binding
	Num3     key.Binding
	Num4     key.Binding
	Num5     key.Binding
	Num6     key.Binding
}

var keys = KeyMap{
	NextPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
	PrevPage: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev testimonial")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next testimonial")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Book:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book now")),
	Chat:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
	WhatsApp: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "whatsapp")),
	Logout:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Num1:     key.NewBinding(key.WithKeys("1")),
	Num2:     key.NewBinding(key.WithKeys("2")),
	Num3:     key.NewBinding(key.WithKeys("3")),
	Num4:     key.NewBinding(key.WithKeys("4")),
	Num5:     key.NewBinding(key.WithKeys("5")),
	Num6:     key.NewBinding(key.WithKeys("6")),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Left, k.Right, k.Book, k.Chat, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage, k.Up, k.Down},
		{k.Left, k.Right, k.Book, k.Chat},
		{k.WhatsApp, k.Logout, k.Back, k.Help, k.Quit},
	}
}
