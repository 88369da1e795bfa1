package tokens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sugo-ui/sugo/pkg/sugo/internal"
)

// Overrides adjusts the recognized customization points of a preset:
// base color roles, the spacing unit, the radius scale, and shadow opacity.
// Everything else is compiled in.
type Overrides struct {
	Colors  map[string]string `toml:"colors"`
	Spacing SpacingOverride   `toml:"spacing"`
	Radii   RadiiOverride     `toml:"radii"`
	Shadows ShadowsOverride   `toml:"shadows"`
}

// SpacingOverride replaces the base spacing unit; the scale is rederived.
type SpacingOverride struct {
	Unit int32 `toml:"unit"`
}

// RadiiOverride replaces individual radius steps. Zero values keep the preset.
type RadiiOverride struct {
	SM int32 `toml:"sm"`
	MD int32 `toml:"md"`
	LG int32 `toml:"lg"`
	XL int32 `toml:"xl"`
}

// ShadowsOverride scales the alpha of every shadow level.
type ShadowsOverride struct {
	Opacity float64 `toml:"opacity"`
}

// LoadOverrides parses a TOML override file.
func LoadOverrides(path string) (*Overrides, error) {
	var o Overrides
	if _, err := toml.DecodeFile(path, &o); err != nil {
		return nil, fmt.Errorf("tokens: parse overrides %s: %w", path, err)
	}
	return &o, nil
}

// Apply returns a copy of set with the overrides folded in. Unknown color
// role names and malformed hex values are errors, never ignored.
func (o *Overrides) Apply(set TokenSet) (TokenSet, error) {
	for role, hex := range o.Colors {
		c, err := parseHexColor(hex)
		if err != nil {
			return set, fmt.Errorf("tokens: color role %q: %w", role, err)
		}
		if err := setColorRole(&set.Colors, role, c); err != nil {
			return set, err
		}
	}

	if o.Spacing.Unit != 0 {
		if o.Spacing.Unit < 0 {
			return set, fmt.Errorf("tokens: spacing unit must be positive, got %d", o.Spacing.Unit)
		}
		set.Spacing = spacingForUnit(o.Spacing.Unit)
	}

	if o.Radii.SM != 0 {
		set.Radii.SM = o.Radii.SM
	}
	if o.Radii.MD != 0 {
		set.Radii.MD = o.Radii.MD
	}
	if o.Radii.LG != 0 {
		set.Radii.LG = o.Radii.LG
	}
	if o.Radii.XL != 0 {
		set.Radii.XL = o.Radii.XL
	}

	if o.Shadows.Opacity != 0 {
		if o.Shadows.Opacity < 0 {
			return set, fmt.Errorf("tokens: shadow opacity must be positive, got %v", o.Shadows.Opacity)
		}
		set.Shadows = scaleShadowOpacity(set.Shadows, o.Shadows.Opacity)
	}

	return set, nil
}

func scaleShadowOpacity(s ShadowScale, factor float64) ShadowScale {
	scale := func(sh Shadow) Shadow {
		a := float64(sh.Color.A) * factor
		if a > 255 {
			a = 255
		}
		sh.Color = internal.WithAlpha(sh.Color, uint8(a))
		return sh
	}
	s.XS = scale(s.XS)
	s.SM = scale(s.SM)
	s.MD = scale(s.MD)
	s.LG = scale(s.LG)
	s.XL = scale(s.XL)
	s.XL2 = scale(s.XL2)
	return s
}

func setColorRole(roles *ColorRoles, name string, c sdl.Color) error {
	switch name {
	case "background":
		roles.Background = c
	case "foreground":
		roles.Foreground = c
	case "card":
		roles.Card = c
	case "card_foreground":
		roles.CardForeground = c
	case "popover":
		roles.Popover = c
	case "popover_foreground":
		roles.PopoverForeground = c
	case "primary":
		roles.Primary = c
	case "primary_foreground":
		roles.PrimaryForeground = c
	case "secondary":
		roles.Secondary = c
	case "secondary_foreground":
		roles.SecondaryForeground = c
	case "muted":
		roles.Muted = c
	case "muted_foreground":
		roles.MutedForeground = c
	case "accent":
		roles.Accent = c
	case "accent_foreground":
		roles.AccentForeground = c
	case "destructive":
		roles.Destructive = c
	case "destructive_foreground":
		roles.DestructiveForeground = c
	case "border":
		roles.Border = c
	case "input":
		roles.Input = c
	case "ring":
		roles.Ring = c
	default:
		return fmt.Errorf("tokens: unknown color role %q", name)
	}
	return nil
}

func parseHexColor(s string) (sdl.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return sdl.Color{}, fmt.Errorf("expected #RRGGBB or #RRGGBBAA, got %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("expected #RRGGBB or #RRGGBBAA, got %q", s)
	}
	if len(h) == 8 {
		return sdl.Color{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return internal.HexToColor(uint32(v)), nil
}
