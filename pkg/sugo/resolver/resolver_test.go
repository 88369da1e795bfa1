package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sugo-ui/sugo/pkg/sugo/internal"
	"github.com/sugo-ui/sugo/pkg/sugo/tokens"
)

func TestResolveIsIdempotent(t *testing.T) {
	for _, mode := range []tokens.Mode{tokens.Light, tokens.Dark} {
		set := tokens.ForMode(mode)

		a, err := Resolve(set, mode)
		require.NoError(t, err)
		b, err := Resolve(set, mode)
		require.NoError(t, err)

		assert.Equal(t, a, b, "%s mode", mode)
	}
}

func TestNonInteractiveBorderIsNeverTransparent(t *testing.T) {
	for _, mode := range []tokens.Mode{tokens.Light, tokens.Dark} {
		snap, err := Resolve(tokens.ForMode(mode), mode)
		require.NoError(t, err)

		border := snap.Widgets.NonInteractive.BgStroke
		assert.Greater(t, border.Color.A, uint8(0), "%s mode", mode)
		assert.Equal(t, float32(1), border.Width)
	}
}

func TestTransparentBorderTokenIsRejected(t *testing.T) {
	set := tokens.ForMode(tokens.Light)
	set.Colors.Border = sdl.Color{}

	_, err := Resolve(set, tokens.Light)
	require.Error(t, err)

	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "noninteractive.bg_stroke", inv.Slot)
}

func TestExtremeBackgroundIsDistinctFromScrollHandle(t *testing.T) {
	for _, mode := range []tokens.Mode{tokens.Light, tokens.Dark} {
		snap, err := Resolve(tokens.ForMode(mode), mode)
		require.NoError(t, err)

		handle := snap.Widgets.Inactive.FgStroke.Color
		assert.NotEqual(t, snap.Globals.ExtremeBackground, handle, "%s mode", mode)
		d := internal.Distance(snap.Globals.ExtremeBackground, handle)
		assert.GreaterOrEqual(t, d, MinExtremeDistance, "%s mode", mode)
	}
}

func TestDarkExtremeBackgroundValue(t *testing.T) {
	snap, err := Resolve(tokens.ForMode(tokens.Dark), tokens.Dark)
	require.NoError(t, err)

	assert.Equal(t, sdl.Color{R: 0x28, G: 0x28, B: 0x28, A: 0xFF}, snap.Globals.ExtremeBackground)
	// The handle foreground stays white in dark mode; the documented gray
	// exists precisely so the two never collide.
	assert.Equal(t, sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, snap.Widgets.Inactive.FgStroke.Color)
}

func TestIndistinctExtremeBackgroundIsRejected(t *testing.T) {
	set := tokens.ForMode(tokens.Light)
	// Push the handle foreground into the light-mode extreme background.
	set.Colors.PrimaryForeground = internal.HexToColor(0xF0F0F0)

	_, err := Resolve(set, tokens.Light)
	require.Error(t, err)

	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "globals.extreme_background", inv.Slot)
}

func TestOverrideTextColorDefaultsUnset(t *testing.T) {
	snap, err := Resolve(tokens.ForMode(tokens.Light), tokens.Light)
	require.NoError(t, err)
	assert.Nil(t, snap.Globals.OverrideTextColor)
}

func TestTextColorPrecedence(t *testing.T) {
	snap, err := Resolve(tokens.ForMode(tokens.Light), tokens.Light)
	require.NoError(t, err)

	state := snap.Widgets.Inactive
	explicit := sdl.Color{R: 1, G: 2, B: 3, A: 255}
	override := sdl.Color{R: 9, G: 9, B: 9, A: 255}

	// No override, no explicit: state foreground.
	assert.Equal(t, state.FgStroke.Color, snap.Globals.TextColor(state, nil))

	// Override set: wins over state foreground.
	g := snap.Globals
	g.OverrideTextColor = &override
	assert.Equal(t, override, g.TextColor(state, nil))

	// Explicit always wins.
	assert.Equal(t, explicit, g.TextColor(state, &explicit))
}

func TestHoverAndPressShiftAwayFromSurface(t *testing.T) {
	light, err := Resolve(tokens.ForMode(tokens.Light), tokens.Light)
	require.NoError(t, err)
	dark, err := Resolve(tokens.ForMode(tokens.Dark), tokens.Dark)
	require.NoError(t, err)

	// Light mode darkens on hover, dark mode lightens.
	assert.Less(t, light.Widgets.Hovered.BgFill.R, light.Widgets.Inactive.BgFill.R)
	assert.Greater(t, dark.Widgets.Hovered.BgFill.R, dark.Widgets.Inactive.BgFill.R)

	// Press shifts strictly further than hover.
	assert.Less(t, light.Widgets.Active.BgFill.R, light.Widgets.Hovered.BgFill.R)
	assert.Greater(t, dark.Widgets.Active.BgFill.R, dark.Widgets.Hovered.BgFill.R)
}

func TestGlobalSlotsAssignments(t *testing.T) {
	set := tokens.ForMode(tokens.Dark)
	snap, err := Resolve(set, tokens.Dark)
	require.NoError(t, err)

	assert.True(t, snap.Globals.DarkMode)
	assert.Equal(t, set.Colors.Accent, snap.Globals.SelectionFill)
	assert.Equal(t, set.Shadows.SM, snap.Globals.WindowShadow)
	assert.Equal(t, set.Shadows.MD, snap.Globals.PopupShadow)
	assert.Equal(t, set.Colors.Primary, snap.Globals.Hyperlink)
	assert.Equal(t, set.Colors.Destructive, snap.Globals.ErrorText)
}

func TestStateTableFor(t *testing.T) {
	snap, err := Resolve(tokens.ForMode(tokens.Light), tokens.Light)
	require.NoError(t, err)

	table := snap.Widgets
	assert.Equal(t, table.NonInteractive, table.For(NonInteractive))
	assert.Equal(t, table.Inactive, table.For(Inactive))
	assert.Equal(t, table.Hovered, table.For(Hovered))
	assert.Equal(t, table.Active, table.For(Active))
	assert.Equal(t, table.Open, table.For(Open))
}
