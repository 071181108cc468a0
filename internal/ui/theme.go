// Package ui holds terminal presentation shared by the TUI and the CLI
// forms: the brand theme, TTY detection, spinners and huh form builders.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors (dark background variants).
const (
	ColorPrimary   = "#14B8A6"
	ColorSecondary = "#0EA5E9"
	ColorAccent    = "#FACC15"
	ColorSuccess   = "#34D399"
	ColorError     = "#F87171"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// Colors is the palette a Theme renders with.
type Colors struct {
	Primary   string
	Secondary string
	Accent    string
	Success   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme carries the palette and whether color is disabled.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the brand theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Accent:    ColorAccent,
			Success:   ColorSuccess,
			Error:     ColorError,
			Text:      ColorText,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
	}
}

func (t *Theme) fg(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}

// Title styles headings.
func (t *Theme) Title() lipgloss.Style { return t.fg(t.Colors.Primary).Bold(true) }

// Subtle styles secondary text.
func (t *Theme) Subtle() lipgloss.Style { return t.fg(t.Colors.Muted) }

// Accent styles highlights such as star ratings.
func (t *Theme) Accent() lipgloss.Style { return t.fg(t.Colors.Accent) }

// Success styles success banners.
func (t *Theme) Success() lipgloss.Style { return t.fg(t.Colors.Success).Bold(true) }

// Error styles error banners and field messages.
func (t *Theme) Error() lipgloss.Style { return t.fg(t.Colors.Error) }

// Link styles URLs and phone numbers.
func (t *Theme) Link() lipgloss.Style { return t.fg(t.Colors.Secondary).Underline(!t.NoColor) }

// Card styles a bordered content box.
func (t *Theme) Card() lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if t.NoColor {
		return s
	}
	return s.BorderForeground(lipgloss.Color(t.Colors.Border))
}

// ActiveTab styles the current navbar entry.
func (t *Theme) ActiveTab() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if t.NoColor {
		return s.Underline(true)
	}
	return s.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(t.Colors.Primary))
}

// Tab styles inactive navbar entries.
func (t *Theme) Tab() lipgloss.Style { return t.fg(t.Colors.Text).Padding(0, 1) }

// Huh returns the form theme matching the palette.
func (t *Theme) Huh() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}
	h := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#0F766E", Dark: t.Colors.Primary}
	secondary := lipgloss.AdaptiveColor{Light: "#0369A1", Dark: t.Colors.Secondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: t.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: t.Colors.Error}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: t.Colors.Text}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: t.Colors.Muted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: t.Colors.Border}

	h.Focused.Base = h.Focused.Base.BorderForeground(border)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(primary).Bold(true)
	h.Focused.NoteTitle = h.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	h.Focused.Description = h.Focused.Description.Foreground(muted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(red)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(red)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	h.Focused.NextIndicator = h.Focused.NextIndicator.Foreground(primary)
	h.Focused.PrevIndicator = h.Focused.PrevIndicator.Foreground(primary)
	h.Focused.Option = h.Focused.Option.Foreground(text)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(green)
	h.Focused.UnselectedOption = h.Focused.UnselectedOption.Foreground(text)
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(primary)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(muted)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(secondary)
	h.Focused.FocusedButton = h.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	h.Focused.BlurredButton = h.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	h.Focused.Next = h.Focused.FocusedButton

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.NextIndicator = lipgloss.NewStyle()
	h.Blurred.PrevIndicator = lipgloss.NewStyle()

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
