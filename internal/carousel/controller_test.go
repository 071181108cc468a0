package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func assertSettled(t *testing.T, c *Controller) {
	t.Helper()
	if c.Index() < 0 || c.Index() > c.MaxIndex() {
		t.Fatalf("index %d outside settled range [0, %d]", c.Index(), c.MaxIndex())
	}
}

func TestController_NextSequenceWrapsAndSettles(t *testing.T) {
	t.Parallel()

	c := NewController(8, 4)
	if c.MaxIndex() != 4 {
		t.Fatalf("MaxIndex() = %d, want 4", c.MaxIndex())
	}

	var got []int
	for range 4 {
		if !c.Next() {
			t.Fatal("Next() reported no change before MaxIndex")
		}
		got = append(got, c.Index())
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, got); diff != "" {
		t.Fatalf("indices mismatch (-want +got):\n%s", diff)
	}

	// Fifth step moves onto the clone frame, then settles to 0.
	if !c.Next() {
		t.Fatal("Next() at MaxIndex should start the wrap move")
	}
	if c.Index() != 8 {
		t.Errorf("wrap index = %d, want 8", c.Index())
	}
	if c.Settled() {
		t.Error("controller should be unsettled on the clone frame")
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, c.Visible()); diff != "" {
		t.Errorf("clone frame mismatch (-want +got):\n%s", diff)
	}

	if !c.Settle() {
		t.Error("Settle() reported no change")
	}
	if c.Index() != 0 {
		t.Errorf("settled index = %d, want 0", c.Index())
	}
	assertSettled(t, c)
}

func TestController_PrevFloorsAtZero(t *testing.T) {
	t.Parallel()

	c := NewController(8, 1)
	for range 3 {
		if c.Prev() {
			t.Error("Prev() at 0 reported a change")
		}
		if c.Index() != 0 {
			t.Fatalf("Index() = %d after Prev at 0, want 0", c.Index())
		}
	}
	if c.CanPrev() {
		t.Error("CanPrev() = true at index 0")
	}

	c.Next()
	c.Next()
	if !c.Prev() || c.Index() != 1 {
		t.Errorf("Prev() from 2 gave %d, want 1", c.Index())
	}
}

func TestController_NavigationIgnoredWhileUnsettled(t *testing.T) {
	t.Parallel()

	c := NewController(4, 2)
	c.Next()
	c.Next() // clone frame
	if c.Settled() {
		t.Fatal("expected unsettled controller")
	}
	if c.Next() || c.Prev() || c.AutoAdvance() {
		t.Error("navigation moved an unsettled controller")
	}
	if c.CanNext() || c.CanPrev() {
		t.Error("Can* should be false while unsettled")
	}
}

func TestController_AllItemsFit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		total, cards int
	}{
		{"equal", 4, 4},
		{"fewer items", 3, 4},
		{"empty", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewController(tt.total, tt.cards)
			if c.MaxIndex() != 0 {
				t.Errorf("MaxIndex() = %d, want 0", c.MaxIndex())
			}
			if c.CanNext() || c.CanPrev() {
				t.Error("navigation should be disabled")
			}
			if c.Next() || c.AutoAdvance() || c.Prev() {
				t.Error("navigation moved a carousel whose items all fit")
			}
			if len(c.Visible()) != tt.total {
				t.Errorf("len(Visible()) = %d, want %d", len(c.Visible()), tt.total)
			}
		})
	}
}

func TestController_SetCardsPerViewReclamps(t *testing.T) {
	t.Parallel()

	c := NewController(8, 1)
	for range 6 {
		c.Next()
	}
	if c.Index() != 6 {
		t.Fatalf("Index() = %d, want 6", c.Index())
	}

	if !c.SetCardsPerView(4) {
		t.Error("SetCardsPerView(4) should clamp index 6")
	}
	if c.Index() != 4 {
		t.Errorf("Index() = %d after widening, want 4", c.Index())
	}
	assertSettled(t, c)

	if c.SetCardsPerView(2) {
		t.Error("narrowing should not move an in-range index")
	}
	if c.Index() != 4 || c.MaxIndex() != 6 {
		t.Errorf("got index %d max %d, want 4 and 6", c.Index(), c.MaxIndex())
	}
}

func TestController_SetCardsPerViewKeepsWrapForSettle(t *testing.T) {
	t.Parallel()

	c := NewController(8, 4)
	for range 5 {
		c.Next()
	}
	if c.Index() != 8 {
		t.Fatalf("Index() = %d, want wrap position 8", c.Index())
	}
	if c.SetCardsPerView(2) {
		t.Error("resize moved an in-flight wrap")
	}
	c.Settle()
	if c.Index() != 0 {
		t.Errorf("Index() = %d after settle, want 0", c.Index())
	}
}

func TestController_SettleBeforeStart(t *testing.T) {
	t.Parallel()

	c := NewController(8, 2)
	c.index = -1
	c.Settle()
	if c.Index() != c.MaxIndex() {
		t.Errorf("Index() = %d, want MaxIndex %d", c.Index(), c.MaxIndex())
	}
}

func TestController_BoundsHoldForAllOperations(t *testing.T) {
	t.Parallel()

	ops := []func(*Controller){
		func(c *Controller) { c.Next() },
		func(c *Controller) { c.Prev() },
		func(c *Controller) { c.AutoAdvance() },
		func(c *Controller) { c.SetCardsPerView(1) },
		func(c *Controller) { c.SetCardsPerView(2) },
		func(c *Controller) { c.SetCardsPerView(4) },
	}

	c := NewController(8, 4)
	// Deterministic walk over every op pairing.
	for i := range 200 {
		ops[i%len(ops)](c)
		ops[(i*7+3)%len(ops)](c)
		c.Settle()
		assertSettled(t, c)
	}
}

func TestNewController_NormalizesInputs(t *testing.T) {
	t.Parallel()

	c := NewController(-3, 0)
	if c.Total() != 0 || c.CardsPerView() != 1 {
		t.Errorf("got total %d cards %d, want 0 and 1", c.Total(), c.CardsPerView())
	}
	if c.Visible() != nil {
		t.Error("Visible() should be nil for an empty carousel")
	}
}
