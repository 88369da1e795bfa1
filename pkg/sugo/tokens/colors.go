package tokens

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sugo-ui/sugo/pkg/sugo/internal"
)

// ColorRoles is the semantic color palette for one mode.
//
// Roles follow the background/foreground convention: the background variant
// is the surface color, the paired foreground variant is the content color
// drawn on top of it. Preset pairs are chosen for readable contrast; a pair
// that fails contrast is a defect in the preset, not something checked at
// runtime.
type ColorRoles struct {
	Background sdl.Color // Main app surface
	Foreground sdl.Color // Default text color

	Card           sdl.Color // Card/container background
	CardForeground sdl.Color

	Popover           sdl.Color // Popover/dropdown background
	PopoverForeground sdl.Color

	Primary           sdl.Color // Primary brand color for main actions
	PrimaryForeground sdl.Color

	Secondary           sdl.Color // Less prominent actions
	SecondaryForeground sdl.Color

	Muted           sdl.Color // Subtle/disabled elements
	MutedForeground sdl.Color

	Accent           sdl.Color // Highlights, selection fill
	AccentForeground sdl.Color

	Destructive           sdl.Color // Error and danger states
	DestructiveForeground sdl.Color

	Border sdl.Color // Default element border
	Input  sdl.Color // Input field border
	Ring   sdl.Color // Focus ring stroke
}

func lightColors() ColorRoles {
	return ColorRoles{
		Background: internal.HexToColor(0xFFFFFF),
		Foreground: internal.HexToColor(0x000000),

		Card:           internal.HexToColor(0xFFFFFF),
		CardForeground: internal.HexToColor(0x000000),

		Popover:           internal.HexToColor(0xFFFFFF),
		PopoverForeground: internal.HexToColor(0x000000),

		Primary:           internal.HexToColor(0xB73CB1),
		PrimaryForeground: internal.HexToColor(0xFFFFFF),

		Secondary:           internal.HexToColor(0xF8F8F8),
		SecondaryForeground: internal.HexToColor(0x000000),

		Muted:           internal.HexToColor(0xF8F8F8),
		MutedForeground: internal.HexToColor(0x6B6B6B),

		Accent:           internal.HexToColor(0x8256DD),
		AccentForeground: internal.HexToColor(0xFFFFFF),

		Destructive:           internal.HexToColor(0xC7375A),
		DestructiveForeground: internal.HexToColor(0xFFFFFF),

		Border: internal.HexToColor(0xC8C8CD),
		Input:  internal.HexToColor(0xC8C8CD),
		Ring:   internal.HexToColor(0x8C8C96),
	}
}

func darkColors() ColorRoles {
	return ColorRoles{
		Background: internal.HexToColor(0x1F1F1F),
		Foreground: internal.HexToColor(0xFFFFFF),

		Card:           internal.HexToColor(0x252525),
		CardForeground: internal.HexToColor(0xFFFFFF),

		Popover:           internal.HexToColor(0x252525),
		PopoverForeground: internal.HexToColor(0xFFFFFF),

		Primary:           internal.HexToColor(0xCC43C5),
		PrimaryForeground: internal.HexToColor(0xFFFFFF),

		Secondary:           internal.HexToColor(0x444444),
		SecondaryForeground: internal.HexToColor(0xFFFFFF),

		Muted:           internal.HexToColor(0x444444),
		MutedForeground: internal.HexToColor(0xE8E8E8),

		Accent:           internal.HexToColor(0x8256DD),
		AccentForeground: internal.HexToColor(0xFFFFFF),

		Destructive:           internal.HexToColor(0xC7375A),
		DestructiveForeground: internal.HexToColor(0xFFFFFF),

		// Low-opacity white reads as a hairline on dark surfaces.
		Border: internal.WithAlpha(internal.HexToColor(0xFFFFFF), 25),
		Input:  internal.WithAlpha(internal.HexToColor(0xFFFFFF), 38),
		Ring:   internal.HexToColor(0x71717A),
	}
}
