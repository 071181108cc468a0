package carousel

import "time"

// Transition timing used by the storefront.
const (
	DefaultTransition    = 700 * time.Millisecond
	DefaultReenableDelay = 20 * time.Millisecond
	DefaultAutoAdvance   = 5 * time.Second
)

// TrackState is the state of the render binding.
type TrackState int

const (
	// Idle means the track rests on a settled frame.
	Idle TrackState = iota
	// Transitioning means an animated move is in flight.
	Transitioning
	// Snapping means animation is off while the index jumps back into range.
	Snapping
)

// String returns the state name.
func (s TrackState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	case Snapping:
		return "snapping"
	default:
		return "unknown"
	}
}

// Track binds a Controller index to a horizontal offset and settles wrap
// moves when the transition completes. The zero value is an idle track
// with animation enabled.
type Track struct {
	state    TrackState
	disabled bool
}

// State returns the current binding state.
func (t *Track) State() TrackState { return t.state }

// Animated reports whether index changes are animated.
func (t *Track) Animated() bool { return !t.disabled }

// Snapping reports whether the track is mid-snap. Navigation is held off
// until Reenable so the re-enabled transition never animates the snap.
func (t *Track) Snapping() bool { return t.state == Snapping }

// Begin records an index change and starts a transition.
func (t *Track) Begin() {
	if t.state == Snapping {
		return
	}
	t.state = Transitioning
}

// TransitionEnd handles the end of an animated move. When the controller
// rests out of range the track disables animation, settles the index and
// returns true; the caller must then call Reenable after the re-enable
// delay. Signals that arrive outside Transitioning are ignored.
func (t *Track) TransitionEnd(c *Controller) bool {
	if t.state != Transitioning {
		return false
	}
	if c.Settled() {
		t.state = Idle
		return false
	}
	t.disabled = true
	c.Settle()
	t.state = Snapping
	return true
}

// Reenable turns animation back on after a snap.
func (t *Track) Reenable() {
	if t.state != Snapping {
		return
	}
	t.disabled = false
	t.state = Idle
}

// Reset returns the track to idle with animation on.
func (t *Track) Reset() {
	t.state = Idle
	t.disabled = false
}

// TrackWidthPercent returns the track width as a percentage of the
// viewport: Total / CardsPerView * 100.
func TrackWidthPercent(c *Controller) float64 {
	return float64(c.Total()) / float64(c.CardsPerView()) * 100
}

// OffsetPercent returns the translation of the track as a percentage of
// its own width: Index * (100 / Total).
func OffsetPercent(c *Controller) float64 {
	if c.Total() == 0 {
		return 0
	}
	return float64(c.Index()) * (100 / float64(c.Total()))
}
