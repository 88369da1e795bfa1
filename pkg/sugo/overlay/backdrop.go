package overlay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sugo-ui/sugo/pkg/sugo/internal"
)

// DefaultBackdropColor is the standard modal dimming layer: 50% black.
var DefaultBackdropColor = internal.WithAlpha(internal.HexToColor(0x000000), 128)

// DrawBackdrop paints a dimming layer over bounds.
//
// The backdrop is visual-only: it never captures pointer events, so the
// control that triggered the overlay still receives its own release event.
// Dismissal goes through ShouldDismiss with an explicit hit-test, never
// through giving the backdrop an opaque click sink.
func DrawBackdrop(r *sdl.Renderer, bounds sdl.Rect, color sdl.Color) error {
	if err := r.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return err
	}
	if err := r.SetDrawColor(color.R, color.G, color.B, color.A); err != nil {
		return err
	}
	return r.FillRect(&bounds)
}

// OutsideClick is the caller-side hit-test for backdrop dismissal: it
// reports whether a click landed outside the surface bounds. Feed the
// result to Coordinator.ShouldDismiss.
func OutsideClick(surface sdl.Rect, clickX, clickY int32, clicked bool) bool {
	if !clicked {
		return false
	}
	p := sdl.Point{X: clickX, Y: clickY}
	return !p.InRect(&surface)
}
