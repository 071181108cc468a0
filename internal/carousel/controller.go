package carousel

// Controller owns the carousel position. It runs a continuous-loop policy:
// advancing past the last settled frame moves to the wrap frame at Total,
// a clone of the first frame, which Settle later snaps back to 0.
//
// Controller is not safe for concurrent use; it belongs to one widget.
type Controller struct {
	index int
	cards int
	total int
}

// NewController creates a controller for total items showing cards per view.
func NewController(total, cards int) *Controller {
	if total < 0 {
		total = 0
	}
	return &Controller{total: total, cards: max(1, cards)}
}

// Index returns the current position, which may lie outside the settled
// range while a wrap move is in flight.
func (c *Controller) Index() int { return c.index }

// CardsPerView returns the number of visible cards.
func (c *Controller) CardsPerView() int { return c.cards }

// Total returns the number of items.
func (c *Controller) Total() int { return c.total }

// MaxIndex returns the last settled position.
func (c *Controller) MaxIndex() int {
	return max(0, c.total-c.cards)
}

// Settled reports whether the index lies within [0, MaxIndex].
func (c *Controller) Settled() bool {
	return c.index >= 0 && c.index <= c.MaxIndex()
}

// CanPrev reports whether Prev would move.
func (c *Controller) CanPrev() bool {
	return c.Settled() && c.index > 0
}

// CanNext reports whether Next would move. Only a carousel whose items
// all fit in one frame has next disabled.
func (c *Controller) CanNext() bool {
	return c.Settled() && c.MaxIndex() > 0
}

// Next advances one position, moving to the wrap frame from MaxIndex.
// It reports whether the index changed.
func (c *Controller) Next() bool {
	if !c.CanNext() {
		return false
	}
	if c.index >= c.MaxIndex() {
		c.index = c.total
		return true
	}
	c.index++
	return true
}

// Prev moves back one position, floored at 0.
// It reports whether the index changed.
func (c *Controller) Prev() bool {
	if !c.CanPrev() {
		return false
	}
	c.index--
	return true
}

// AutoAdvance is the timer-driven step. Under the loop policy it is the
// same move as Next, wrapping through the clone frame at MaxIndex.
func (c *Controller) AutoAdvance() bool {
	return c.Next()
}

// SetCardsPerView updates the card count and re-clamps a settled index.
// A wrap move in flight is left for Settle. It reports whether the index
// changed.
func (c *Controller) SetCardsPerView(n int) bool {
	c.cards = max(1, n)
	if c.index >= c.total && c.total > 0 {
		return false
	}
	return c.clamp()
}

// Settle snaps an out-of-range index back into [0, MaxIndex]: past the
// end goes to 0, before the start goes to MaxIndex. It reports whether
// the index changed.
func (c *Controller) Settle() bool {
	before := c.index
	switch {
	case c.index >= c.total:
		c.index = 0
	case c.index < 0:
		c.index = c.MaxIndex()
	}
	c.clamp()
	return c.index != before
}

func (c *Controller) clamp() bool {
	before := c.index
	c.index = min(max(c.index, 0), c.MaxIndex())
	return c.index != before
}

// Visible returns the item indices in the current frame. Positions past
// the end wrap modulo Total, which is how the clone frame is drawn.
func (c *Controller) Visible() []int {
	if c.total == 0 {
		return nil
	}
	n := min(c.cards, c.total)
	out := make([]int, n)
	for k := range n {
		out[k] = ((c.index+k)%c.total + c.total) % c.total
	}
	return out
}
