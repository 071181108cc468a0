package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/milele-cleaning/milele/internal/carousel"
	"github.com/milele-cleaning/milele/internal/catalog"
	"github.com/milele-cleaning/milele/internal/schedule"
	"github.com/milele-cleaning/milele/internal/ui"
)

// Timer keys used by the carousel.
const (
	timerAutoAdvance   = "auto-advance"
	timerTransitionEnd = "transition-end"
	timerReenable      = "reenable"
)

// CarouselOptions configures the testimonial carousel.
type CarouselOptions struct {
	AutoAdvance   time.Duration
	Transition    time.Duration
	ReenableDelay time.Duration
	Breakpoints   carousel.Breakpoints
	CellWidthPx   int
	// BodyLines caps the quote text per card; 0 means no cap.
	BodyLines int
	// Inset is the number of terminal columns the surrounding page keeps
	// for itself. Cards are laid out in the rest; the breakpoint tier is
	// always taken from the full terminal width.
	Inset int
}

// DefaultCarouselOptions returns the storefront timing and breakpoints.
func DefaultCarouselOptions() CarouselOptions {
	return CarouselOptions{
		AutoAdvance:   carousel.DefaultAutoAdvance,
		Transition:    carousel.DefaultTransition,
		ReenableDelay: carousel.DefaultReenableDelay,
		Breakpoints:   carousel.DefaultBreakpoints,
		CellWidthPx:   8,
		BodyLines:     6,
	}
}

// Carousel is the testimonial carousel widget. It owns its timers; Close
// must be called when the widget goes away.
type Carousel struct {
	items  []catalog.Testimonial
	ctrl   *carousel.Controller
	track  carousel.Track
	timers *timerBridge
	opts   CarouselOptions
	theme  *ui.Theme
	// width is the terminal width in columns.
	width int
}

// NewCarousel creates a carousel sized for a terminal width in columns.
// The width is the whole viewport, not the space left after Inset.
func NewCarousel(items []catalog.Testimonial, opts CarouselOptions, clock schedule.Clock, theme *ui.Theme, width int) *Carousel {
	c := &Carousel{
		items:  items,
		timers: newTimerBridge(clock),
		opts:   opts,
		theme:  theme,
		width:  width,
	}
	c.ctrl = carousel.NewController(len(items), c.cardsFor(width))
	return c
}

// Init starts auto-advance and begins listening for timer messages.
func (c *Carousel) Init() tea.Cmd {
	c.scheduleAuto()
	return c.timers.listen()
}

// Close cancels every pending timer. A wrap or snap cut short by Close
// settles in range and the track rests idle with animation on.
func (c *Carousel) Close() {
	c.timers.close()
	c.ctrl.Settle()
	c.track.Reset()
}

func (c *Carousel) closed() bool { return c.timers.closed() }

// Controller exposes the position state.
func (c *Carousel) Controller() *carousel.Controller { return c.ctrl }

// Track exposes the render binding.
func (c *Carousel) Track() *carousel.Track { return &c.track }

// Owns reports whether msg came from this carousel's timers.
func (c *Carousel) Owns(msg tea.Msg) bool {
	tm, ok := msg.(timerMsg)
	return ok && tm.src == c.timers
}

func (c *Carousel) cardsFor(cols int) int {
	px := carousel.ColumnsToPixels(cols, c.opts.CellWidthPx)
	return c.opts.Breakpoints.Classify(px).Cards()
}

// Next is the user's forward step. It reports whether the carousel moved.
func (c *Carousel) Next() bool {
	if !c.move(c.ctrl.Next) {
		return false
	}
	c.scheduleAuto()
	return true
}

// Prev is the user's backward step. It reports whether the carousel moved.
func (c *Carousel) Prev() bool {
	if !c.move(c.ctrl.Prev) {
		return false
	}
	c.scheduleAuto()
	return true
}

// Resize re-classifies the viewport for a new terminal width.
func (c *Carousel) Resize(cols int) {
	c.width = cols
	if c.ctrl.SetCardsPerView(c.cardsFor(cols)) {
		c.track.Begin()
		_ = c.timers.after(timerTransitionEnd, c.opts.Transition)
	}
}

// layoutWidth is the room left for cards once the page inset is taken.
func (c *Carousel) layoutWidth() int {
	return max(20, c.width-c.opts.Inset)
}

// move applies step unless a wrap or snap is still settling.
func (c *Carousel) move(step func() bool) bool {
	if !c.ctrl.Settled() || c.track.Snapping() {
		return false
	}
	if !step() {
		return false
	}
	c.track.Begin()
	_ = c.timers.after(timerTransitionEnd, c.opts.Transition)
	return true
}

func (c *Carousel) scheduleAuto() {
	if c.opts.AutoAdvance <= 0 {
		return
	}
	_ = c.timers.after(timerAutoAdvance, c.opts.AutoAdvance)
}

// Update handles key presses and the carousel's own timer messages.
func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Right):
			c.Next()
		case key.Matches(msg, keys.Left):
			c.Prev()
		}
		return nil

	case timerMsg:
		if msg.src != c.timers {
			return nil
		}
		if c.timers.current(msg) {
			c.fire(msg.key)
		}
		return c.timers.listen()
	}
	return nil
}

func (c *Carousel) fire(timer string) {
	switch timer {
	case timerAutoAdvance:
		c.move(c.ctrl.AutoAdvance)
		c.scheduleAuto()
	case timerTransitionEnd:
		if c.track.TransitionEnd(c.ctrl) {
			_ = c.timers.after(timerReenable, c.opts.ReenableDelay)
		}
	case timerReenable:
		c.track.Reenable()
	}
}

// View renders the visible cards, the navigation row and the track bar.
func (c *Carousel) View() string {
	if len(c.items) == 0 {
		return c.theme.Subtle().Render("No testimonials yet.")
	}

	visible := c.ctrl.Visible()
	n := len(visible)
	gap := 1
	layout := c.layoutWidth()
	cardW := max(18, (layout-gap*(n-1))/n)

	cards := make([]string, 0, n*2)
	height := 0
	bodies := make([]string, n)
	for i, idx := range visible {
		bodies[i] = c.cardBody(c.items[idx], cardW-4)
		height = max(height, lipgloss.Height(bodies[i]))
	}
	style := c.theme.Card().Width(cardW - 2).Height(height)
	for i, body := range bodies {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", gap))
		}
		cards = append(cards, style.Render(body))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return lipgloss.JoinVertical(lipgloss.Left, row, c.navRow(), c.trackBar(min(40, layout)))
}

func (c *Carousel) cardBody(t catalog.Testimonial, width int) string {
	width = max(8, width)

	icon := t.Theme.Icon()
	if !c.theme.NoColor && t.Accent != "" {
		icon = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Render(icon)
	}
	stars := c.theme.Accent().Render(strings.Repeat("★", t.Rating) + strings.Repeat("☆", 5-t.Rating))

	body := wordwrap.String("“"+t.Body+"”", width)
	lines := strings.Split(body, "\n")
	if c.opts.BodyLines > 0 && len(lines) > c.opts.BodyLines {
		lines = lines[:c.opts.BodyLines]
		last := lines[len(lines)-1]
		lines[len(lines)-1] = runewidth.Truncate(last+" …", width, "…")
	}

	author := runewidth.Truncate(t.Author, width-2, "…")
	role := runewidth.Truncate(t.Role, width, "…")

	return strings.Join([]string{
		icon + " " + stars,
		"",
		strings.Join(lines, "\n"),
		"",
		lipgloss.NewStyle().Bold(true).Render("— " + author),
		c.theme.Subtle().Render(role),
	}, "\n")
}

func (c *Carousel) navRow() string {
	prev, next := "‹ prev", "next ›"
	if c.ctrl.CanPrev() {
		prev = c.theme.Title().Render(prev)
	} else {
		prev = c.theme.Subtle().Render(prev)
	}
	if c.ctrl.CanNext() {
		next = c.theme.Title().Render(next)
	} else {
		next = c.theme.Subtle().Render(next)
	}

	maxIdx := c.ctrl.MaxIndex()
	pos := c.ctrl.Index()
	if pos > maxIdx || pos < 0 {
		pos = 0
	}
	dots := make([]string, maxIdx+1)
	for i := range dots {
		if i == pos {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return fmt.Sprintf("%s  %s  %s", prev, strings.Join(dots, " "), next)
}

// trackBar draws the visible window over the whole track, using the same
// percentages a horizontal slide would.
func (c *Carousel) trackBar(width int) string {
	if width <= 0 || c.ctrl.Total() == 0 {
		return ""
	}
	visible := 100 / carousel.TrackWidthPercent(c.ctrl)
	start := math.Mod(carousel.OffsetPercent(c.ctrl)/100, 1)

	var b strings.Builder
	for i := range width {
		f := (float64(i) + 0.5) / float64(width)
		in := (f >= start && f < start+visible) || f+1 < start+visible
		if in {
			b.WriteString("━")
		} else {
			b.WriteString("─")
		}
	}
	if c.track.Animated() {
		return c.theme.Title().Render(b.String())
	}
	return c.theme.Subtle().Render(b.String())
}
