// Package resolver projects a design token bundle onto the global visual
// table that every widget family reads each frame.
//
// The host framework exposes a handful of shared visual slots; an
// uncoordinated write to one of them (a scroll track color, a global text
// override) can silently break an unrelated widget family. Resolve is the
// single writer for all of them: it rebuilds the whole table from tokens in
// a fixed step order and rejects token sets that would violate the
// cross-family visibility invariants before the first frame renders.
package resolver

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sugo-ui/sugo/pkg/sugo/internal"
	"github.com/sugo-ui/sugo/pkg/sugo/tokens"
)

// MinExtremeDistance is the minimum perceptual (redmean) distance required
// between the extreme background and the scroll handle foreground. Below
// this, floating scroll indicators disappear into their track.
const MinExtremeDistance = 30.0

// InvariantError reports a token set rejected at resolve time. Rejection is
// loud and happens before any table is produced; a partially themed frame
// is never rendered from a bad configuration.
type InvariantError struct {
	Slot   string // The global slot or state whose contract failed
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("resolver: %s: %s", e.Slot, e.Detail)
}

// Resolve builds the complete visual table and global slots for one mode.
//
// Steps run in fixed order; later steps may not overwrite what earlier
// steps established:
//
//  1. NonInteractive state from background/border/foreground tokens.
//  2. Inactive/Hovered/Active/Open defaults stepped through the primary
//     role. These are fallbacks for default-styled widgets only.
//  3. Extreme background, checked against the scroll handle foreground.
//  4. Global text override left unset.
//  5. Selection, shadows, and the remaining cross-cutting slots.
//
// Resolve is pure: identical inputs yield deep-equal snapshots. The only
// error path is configuration rejection.
func Resolve(set tokens.TokenSet, mode tokens.Mode) (*Snapshot, error) {
	if set.Colors.Border.A == 0 {
		// A transparent border here is the classic "missing input border"
		// defect; reject it at build time rather than render without one.
		return nil, &InvariantError{
			Slot:   "noninteractive.bg_stroke",
			Detail: "border token is fully transparent",
		}
	}

	c := set.Colors
	dark := mode == tokens.Dark

	snap := &Snapshot{Mode: mode}

	// Step 1: non-interactive defaults. Border width is exactly 1 unit and
	// the color comes straight from the border token.
	snap.Widgets.NonInteractive = WidgetVisual{
		BgFill:       c.Background,
		WeakBgFill:   c.Muted,
		BgStroke:     Stroke{Color: c.Border, Width: 1},
		FgStroke:     Stroke{Color: c.Foreground, Width: 1},
		CornerRadius: set.Radii.MD,
	}

	// Step 2: interactive defaults stepped through the primary role.
	// Hover shifts away from the surface (darken on light, lighten on
	// dark); press shifts twice as far.
	hovered := shiftPrimary(c.Primary, dark, 0.1)
	pressed := shiftPrimary(c.Primary, dark, 0.2)

	snap.Widgets.Inactive = WidgetVisual{
		BgFill:       c.Primary,
		WeakBgFill:   c.MutedForeground, // scroll handle resting color
		FgStroke:     Stroke{Color: c.PrimaryForeground, Width: 1},
		CornerRadius: set.Radii.Base(),
	}
	snap.Widgets.Hovered = WidgetVisual{
		BgFill:       hovered,
		WeakBgFill:   c.Ring,
		BgStroke:     Stroke{Color: c.Ring, Width: 2},
		FgStroke:     Stroke{Color: c.PrimaryForeground, Width: 1.5},
		CornerRadius: set.Radii.Base(),
		Expansion:    1,
	}
	snap.Widgets.Active = WidgetVisual{
		BgFill:       pressed,
		WeakBgFill:   c.Primary,
		FgStroke:     Stroke{Color: c.PrimaryForeground, Width: 2},
		CornerRadius: set.Radii.Base(),
	}
	snap.Widgets.Open = WidgetVisual{
		BgFill:       c.Primary,
		WeakBgFill:   c.Primary,
		BgStroke:     Stroke{Color: c.Ring, Width: 2},
		FgStroke:     Stroke{Color: c.PrimaryForeground, Width: 1},
		CornerRadius: set.Radii.Base(),
	}

	// Step 3: extreme background. The scroll track must stay visible under
	// the handle, so it may never approach the handle's foreground color.
	if dark {
		snap.Globals.ExtremeBackground = internal.HexToColor(0x282828)
	} else {
		snap.Globals.ExtremeBackground = internal.HexToColor(0xF0F0F0)
	}
	handleFg := snap.Widgets.Inactive.FgStroke.Color
	if d := internal.Distance(snap.Globals.ExtremeBackground, handleFg); d < MinExtremeDistance {
		return nil, &InvariantError{
			Slot: "globals.extreme_background",
			Detail: fmt.Sprintf(
				"distance %.1f to scroll handle foreground is below minimum %.1f in %s mode",
				d, MinExtremeDistance, mode),
		}
	}

	// Step 4: the global text override stays unset. Callers that set it
	// force every framework-default text draw to one color; per-widget
	// text color belongs in explicit draw calls (see GlobalSlots.TextColor).
	snap.Globals.OverrideTextColor = nil

	// Step 5: remaining cross-cutting slots.
	snap.Globals.SelectionFill = c.Accent
	snap.Globals.SelectionStroke = Stroke{Color: c.Ring, Width: 2}
	snap.Globals.WindowShadow = set.Shadows.SM
	snap.Globals.PopupShadow = set.Shadows.MD
	snap.Globals.Hyperlink = c.Primary
	snap.Globals.ErrorText = c.Destructive
	snap.Globals.WarnText = c.Destructive
	snap.Globals.DarkMode = dark

	return snap, nil
}

func shiftPrimary(primary sdl.Color, dark bool, factor float32) sdl.Color {
	if dark {
		return internal.Lighten(primary, factor)
	}
	return internal.Darken(primary, factor)
}
