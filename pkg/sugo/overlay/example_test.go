package overlay_test

import (
	"fmt"
	"time"

	"github.com/sugo-ui/sugo/pkg/sugo/overlay"
)

// Example demonstrates the open/tick/dismiss protocol for a dropdown menu.
func Example() {
	c := overlay.NewCoordinator()
	opened := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A click opens the menu. The same click is still "in flight" as far
	// as the input system is concerned.
	if _, err := c.Open("file-menu", overlay.TierForeground, opened); err != nil {
		fmt.Println("open failed:", err)
		return
	}

	// Same frame: the opening click hit-tests outside the menu surface,
	// but the debounce keeps it from dismissing the menu it just opened.
	c.Tick(opened.Add(16 * time.Millisecond))
	dismiss, _ := c.ShouldDismiss("file-menu", true)
	fmt.Println("dismiss on opening click:", dismiss)

	// A few frames later a genuine outside click arrives.
	c.Tick(opened.Add(200 * time.Millisecond))
	dismiss, _ = c.ShouldDismiss("file-menu", true)
	fmt.Println("dismiss on later click:", dismiss)

	if dismiss {
		c.Close("file-menu")
	}
	fmt.Println("open surfaces:", c.Len())

	// Output:
	// dismiss on opening click: false
	// dismiss on later click: true
	// open surfaces: 0
}

// Example_paintOrder shows deterministic stacking across tiers.
func Example_paintOrder() {
	c := overlay.NewCoordinator()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Open("sheet", overlay.TierMiddle, now)
	c.Open("menu", overlay.TierForeground, now)
	c.Open("tip", overlay.TierTooltip, now)

	// Back-to-front: draw in this order so the tooltip ends up on top.
	fmt.Println(c.PaintOrder())

	// Output:
	// [sheet menu tip]
}
