package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"github.com/milele-cleaning/milele/internal/carousel"
	"github.com/milele-cleaning/milele/internal/catalog"
	"github.com/milele-cleaning/milele/internal/schedule"
	"github.com/milele-cleaning/milele/internal/ui"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Terminal widths that land in each tier at 8px per column.
const (
	colsBase = 80  // 640px
	colsMD   = 100 // 800px
	colsLG   = 140 // 1120px
)

func newTestCarousel(t *testing.T, width int) (*Carousel, *schedule.ManualClock) {
	t.Helper()
	clock := schedule.NewManualClock()
	c := NewCarousel(catalog.Testimonials(), DefaultCarouselOptions(), clock, ui.NewTheme(true), width)
	t.Cleanup(c.Close)
	c.Init()
	return c, clock
}

// pump delivers every queued timer message to c.
func pump(c *Carousel) int {
	n := 0
	for {
		select {
		case m := <-c.timers.events:
			c.Update(m)
			n++
		default:
			return n
		}
	}
}

// settle runs the transition and any snap to completion.
func settle(c *Carousel, clock *schedule.ManualClock) {
	clock.Advance(carousel.DefaultTransition)
	pump(c)
	clock.Advance(carousel.DefaultReenableDelay)
	pump(c)
}

func TestCarousel_CardsFromWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cols int
		want int
	}{
		{colsBase, 1},
		{colsMD, 2},
		{colsLG, 4},
	}
	for _, tt := range tests {
		c, _ := newTestCarousel(t, tt.cols)
		if got := c.Controller().CardsPerView(); got != tt.want {
			t.Errorf("cols %d: CardsPerView() = %d, want %d", tt.cols, got, tt.want)
		}
	}
}

func TestCarousel_LoopAtLargeWidth(t *testing.T) {
	t.Parallel()

	c, clock := newTestCarousel(t, colsLG)
	ctrl := c.Controller()

	for want := 1; want <= 4; want++ {
		if !c.Next() {
			t.Fatalf("Next() #%d = false", want)
		}
		if ctrl.Index() != want {
			t.Fatalf("Index() = %d, want %d", ctrl.Index(), want)
		}
		settle(c, clock)
	}

	if !c.Next() {
		t.Fatal("Next() at MaxIndex = false, want wrap move")
	}
	if ctrl.Index() != 8 {
		t.Fatalf("Index() = %d, want wrap frame 8", ctrl.Index())
	}
	if c.Next() || c.Prev() {
		t.Error("navigation accepted while wrap in flight")
	}

	clock.Advance(carousel.DefaultTransition)
	pump(c)
	if ctrl.Index() != 0 {
		t.Fatalf("Index() after transition end = %d, want 0", ctrl.Index())
	}
	if c.Track().State() != carousel.Snapping || c.Track().Animated() {
		t.Fatalf("track = %v animated=%v, want snapping without animation", c.Track().State(), c.Track().Animated())
	}
	if c.Next() {
		t.Error("Next() accepted while snapping")
	}

	clock.Advance(carousel.DefaultReenableDelay)
	pump(c)
	if c.Track().State() != carousel.Idle || !c.Track().Animated() {
		t.Errorf("track = %v animated=%v, want idle with animation", c.Track().State(), c.Track().Animated())
	}
}

func TestCarousel_PrevFloor(t *testing.T) {
	t.Parallel()

	c, _ := newTestCarousel(t, colsBase)
	if c.Prev() {
		t.Error("Prev() at 0 = true")
	}
	if c.Controller().Index() != 0 {
		t.Errorf("Index() = %d", c.Controller().Index())
	}
}

func TestCarousel_AutoAdvance(t *testing.T) {
	t.Parallel()

	c, clock := newTestCarousel(t, colsBase)

	clock.Advance(carousel.DefaultAutoAdvance - time.Millisecond)
	pump(c)
	if c.Controller().Index() != 0 {
		t.Fatal("auto-advance fired early")
	}
	clock.Advance(time.Millisecond)
	pump(c)
	if c.Controller().Index() != 1 {
		t.Fatalf("Index() = %d after auto-advance, want 1", c.Controller().Index())
	}
	if c.Track().State() != carousel.Transitioning {
		t.Errorf("track = %v, want transitioning", c.Track().State())
	}

	clock.Advance(carousel.DefaultAutoAdvance)
	pump(c)
	if c.Controller().Index() != 2 {
		t.Errorf("Index() = %d after second auto-advance, want 2", c.Controller().Index())
	}
}

func TestCarousel_ManualNavigationResetsAutoAdvance(t *testing.T) {
	t.Parallel()

	c, clock := newTestCarousel(t, colsBase)

	clock.Advance(4 * time.Second)
	c.Next()

	// The original deadline at 5s must not fire.
	clock.Advance(1500 * time.Millisecond)
	pump(c)
	if c.Controller().Index() != 1 {
		t.Fatalf("Index() = %d, want 1 (auto-advance should have been reset)", c.Controller().Index())
	}

	clock.Advance(3500 * time.Millisecond)
	pump(c)
	if c.Controller().Index() != 2 {
		t.Errorf("Index() = %d, want 2 once the reset timer fires", c.Controller().Index())
	}
}

func TestCarousel_QueuedStaleTimerDropped(t *testing.T) {
	t.Parallel()

	c, clock := newTestCarousel(t, colsBase)

	// Auto-advance fires but its message is not yet delivered.
	clock.Advance(carousel.DefaultAutoAdvance)
	c.Next()
	pump(c)

	if got := c.Controller().Index(); got != 1 {
		t.Errorf("Index() = %d, want 1: the queued auto-advance is stale", got)
	}
}

func TestCarousel_Resize(t *testing.T) {
	t.Parallel()

	c, clock := newTestCarousel(t, colsBase)
	for range 7 {
		c.Next()
		settle(c, clock)
	}
	if c.Controller().Index() != 7 {
		t.Fatalf("Index() = %d, want 7", c.Controller().Index())
	}

	c.Resize(colsLG)
	if c.Controller().CardsPerView() != 4 {
		t.Errorf("CardsPerView() = %d, want 4", c.Controller().CardsPerView())
	}
	if c.Controller().Index() != 4 {
		t.Errorf("Index() = %d after resize, want clamped to 4", c.Controller().Index())
	}
	if c.Track().State() != carousel.Transitioning {
		t.Errorf("track = %v, want transitioning after clamp", c.Track().State())
	}
}

func TestCarousel_AllItemsFit(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManualClock()
	items := catalog.Testimonials()[:3]
	c := NewCarousel(items, DefaultCarouselOptions(), clock, ui.NewTheme(true), colsLG)
	defer c.Close()
	c.Init()

	if c.Next() {
		t.Error("Next() = true with every item visible")
	}
	clock.Advance(carousel.DefaultAutoAdvance)
	pump(c)
	if c.Controller().Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Controller().Index())
	}
	if got := len(c.Controller().Visible()); got != 3 {
		t.Errorf("Visible() has %d items, want 3", got)
	}
}

func TestCarousel_CloseCancelsTimers(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManualClock()
	c := NewCarousel(catalog.Testimonials(), DefaultCarouselOptions(), clock, ui.NewTheme(true), colsBase)
	listen := c.Init()
	c.Next()

	c.Close()
	c.Close()

	if !c.closed() {
		t.Error("closed() = false")
	}
	if clock.Pending() != 0 {
		t.Errorf("clock has %d pending timers after Close", clock.Pending())
	}
	if msg := listen(); msg != nil {
		t.Errorf("listen after Close = %#v, want nil", msg)
	}
}

func TestCarousel_CloseSettlesInterruptedLoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		advance time.Duration
		state   carousel.TrackState
	}{
		{"mid wrap", 0, carousel.Transitioning},
		{"mid snap", carousel.DefaultTransition, carousel.Snapping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clock := schedule.NewManualClock()
			c := NewCarousel(catalog.Testimonials(), DefaultCarouselOptions(), clock, ui.NewTheme(true), colsLG)
			c.Init()
			for range c.Controller().MaxIndex() {
				c.Next()
				settle(c, clock)
			}
			if !c.Next() {
				t.Fatal("Next() at MaxIndex = false, want wrap move")
			}
			if tt.advance > 0 {
				clock.Advance(tt.advance)
				pump(c)
			}
			if got := c.Track().State(); got != tt.state {
				t.Fatalf("state before Close = %v, want %v", got, tt.state)
			}

			c.Close()

			ctrl := c.Controller()
			if !ctrl.Settled() {
				t.Errorf("Index() = %d after Close, want within [0, %d]", ctrl.Index(), ctrl.MaxIndex())
			}
			if c.Track().State() != carousel.Idle || !c.Track().Animated() {
				t.Errorf("track = %v animated=%v, want idle with animation", c.Track().State(), c.Track().Animated())
			}
		})
	}
}

func TestCarousel_IgnoresForeignTimers(t *testing.T) {
	t.Parallel()

	c, _ := newTestCarousel(t, colsBase)
	other := newTimerBridge(schedule.NewManualClock())
	defer other.close()

	if cmd := c.Update(timerMsg{src: other, key: timerAutoAdvance, seq: 1}); cmd != nil {
		t.Error("foreign timer produced a command")
	}
	if c.Owns(timerMsg{src: other}) {
		t.Error("Owns() = true for foreign bridge")
	}
	if c.Controller().Index() != 0 {
		t.Error("foreign timer moved the carousel")
	}
}

func TestCarousel_KeyNavigation(t *testing.T) {
	t.Parallel()

	c, clock := newTestCarousel(t, colsBase)
	c.Update(tea.KeyMsg{Type: tea.KeyRight})
	if c.Controller().Index() != 1 {
		t.Fatalf("Index() = %d after right, want 1", c.Controller().Index())
	}
	settle(c, clock)
	c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if c.Controller().Index() != 0 {
		t.Errorf("Index() = %d after left, want 0", c.Controller().Index())
	}
}

func TestCarousel_View(t *testing.T) {
	t.Parallel()

	c, _ := newTestCarousel(t, colsMD)
	view := c.View()
	items := catalog.Testimonials()
	for _, idx := range c.Controller().Visible() {
		if !strings.Contains(view, items[idx].Author) {
			t.Errorf("View() missing author %q", items[idx].Author)
		}
	}
	if !strings.Contains(view, "★") {
		t.Error("View() missing rating stars")
	}
	if !strings.Contains(view, "━") {
		t.Error("View() missing track window")
	}
}
