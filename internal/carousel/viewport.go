// Package carousel implements the testimonial carousel state machine:
// breakpoint classification, the clamped position controller and the
// transition binding that settles wrap-around moves.
package carousel

// Tier is a named viewport-width bucket.
type Tier int

const (
	// TierBase covers narrow viewports and shows one card.
	TierBase Tier = iota
	// TierMD covers medium viewports and shows two cards.
	TierMD
	// TierLG covers wide viewports and shows four cards.
	TierLG
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierBase:
		return "base"
	case TierMD:
		return "md"
	case TierLG:
		return "lg"
	default:
		return "unknown"
	}
}

// Cards returns how many cards fit in the tier.
func (t Tier) Cards() int {
	switch t {
	case TierMD:
		return 2
	case TierLG:
		return 4
	default:
		return 1
	}
}

// Breakpoints are the minimum widths, in pixels, of the md and lg tiers.
type Breakpoints struct {
	MD int
	LG int
}

// DefaultBreakpoints matches the storefront's responsive layout.
var DefaultBreakpoints = Breakpoints{MD: 768, LG: 1024}

// Classify returns the tier for width.
func (b Breakpoints) Classify(width int) Tier {
	switch {
	case width >= b.LG:
		return TierLG
	case width >= b.MD:
		return TierMD
	default:
		return TierBase
	}
}

// Classify returns the tier for width using DefaultBreakpoints.
func Classify(width int) Tier {
	return DefaultBreakpoints.Classify(width)
}

// CardsPerView returns the card count for width using DefaultBreakpoints.
func CardsPerView(width int) int {
	return Classify(width).Cards()
}

// ColumnsToPixels converts a terminal width to an approximate pixel width.
// Non-positive cell widths fall back to 8px.
func ColumnsToPixels(cols, cellWidthPx int) int {
	if cellWidthPx <= 0 {
		cellWidthPx = 8
	}
	if cols < 0 {
		return 0
	}
	return cols * cellWidthPx
}
