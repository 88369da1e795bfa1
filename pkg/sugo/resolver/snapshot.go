package resolver

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sugo-ui/sugo/pkg/sugo/tokens"
)

// State enumerates the five interaction phases a control can render in.
type State int

const (
	NonInteractive State = iota // labels, separators, disabled elements
	Inactive                    // default resting state
	Hovered
	Active // pressed
	Open   // dropdown/menu trigger while its surface is open
)

func (s State) String() string {
	switch s {
	case NonInteractive:
		return "noninteractive"
	case Inactive:
		return "inactive"
	case Hovered:
		return "hovered"
	case Active:
		return "active"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Stroke is a colored line of a given width. A zero-width stroke means
// "no stroke".
type Stroke struct {
	Color sdl.Color
	Width float32
}

// WidgetVisual holds the per-state visual settings for default-styled
// rendering.
//
// These values are fallbacks, never forced overrides: a widget that issues
// explicit colors with its draw calls is unaffected by them. Only widgets
// that opt into default-styled rendering read this table.
type WidgetVisual struct {
	BgFill       sdl.Color // Main fill
	WeakBgFill   sdl.Color // Secondary fill (scroll handles, faint chips)
	BgStroke     Stroke    // Outline around the fill
	FgStroke     Stroke    // Glyph/indicator stroke drawn on the fill
	CornerRadius int32
	Expansion    float32 // Hover/press growth distance in pixels
}

// StateTable is the complete five-state visual table. It is rebuilt
// wholesale by Resolve every time; nothing outside this package may
// construct or patch one piecemeal.
type StateTable struct {
	NonInteractive WidgetVisual
	Inactive       WidgetVisual
	Hovered        WidgetVisual
	Active         WidgetVisual
	Open           WidgetVisual
}

// For returns the visuals for the given state.
func (t *StateTable) For(s State) WidgetVisual {
	switch s {
	case Inactive:
		return t.Inactive
	case Hovered:
		return t.Hovered
	case Active:
		return t.Active
	case Open:
		return t.Open
	default:
		return t.NonInteractive
	}
}

// GlobalSlots are the cross-cutting visual settings outside the per-state
// table. Many independent widget families read these, which is why Resolve
// owns every write.
type GlobalSlots struct {
	// ExtremeBackground is used for scroll tracks and some popups. It is
	// guaranteed distinct from the scroll handle foreground in the same
	// mode; Resolve rejects token sets that break this.
	ExtremeBackground sdl.Color

	// OverrideTextColor, when non-nil, forces all framework-default text
	// to one color. Text drawn with an explicit color is unaffected. Left
	// nil by Resolve; setting it is an opt-in with documented blast radius.
	OverrideTextColor *sdl.Color

	SelectionFill   sdl.Color // Text selection / focused row fill
	SelectionStroke Stroke    // Selection and focus outline

	WindowShadow tokens.Shadow
	PopupShadow  tokens.Shadow

	Hyperlink sdl.Color
	ErrorText sdl.Color
	WarnText  sdl.Color

	DarkMode bool
}

// TextColor decides the color for a text draw. Precedence is fixed:
// an explicit per-call color always wins, then the global override,
// then the state's foreground stroke. Routing text color decisions
// through here keeps the precedence rule in code instead of convention.
func (g GlobalSlots) TextColor(state WidgetVisual, explicit *sdl.Color) sdl.Color {
	if explicit != nil {
		return *explicit
	}
	if g.OverrideTextColor != nil {
		return *g.OverrideTextColor
	}
	return state.FgStroke.Color
}

// Snapshot is one frame's complete visual table: the five-state widget
// table plus the global slots. Snapshots are immutable once returned;
// readers within a frame share one instance.
type Snapshot struct {
	Mode    tokens.Mode
	Widgets StateTable
	Globals GlobalSlots
}

// DrawFocusRing strokes a 2px focus ring just inside bounds using the
// selection stroke color. No-op unless focused.
func (s *Snapshot) DrawFocusRing(r *sdl.Renderer, bounds sdl.Rect, focused bool) error {
	if !focused {
		return nil
	}
	c := s.Globals.SelectionStroke.Color
	if err := r.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	inner := sdl.Rect{X: bounds.X + 1, Y: bounds.Y + 1, W: bounds.W - 2, H: bounds.H - 2}
	if err := r.DrawRect(&inner); err != nil {
		return err
	}
	inner = sdl.Rect{X: bounds.X + 2, Y: bounds.Y + 2, W: bounds.W - 4, H: bounds.H - 4}
	return r.DrawRect(&inner)
}
