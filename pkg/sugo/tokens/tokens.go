// Package tokens holds the design token bundles for the sugo theming layer.
//
// A TokenSet is an immutable, mode-selected collection of color roles,
// spacing values, corner radii, shadows, and type sizes. The two presets
// (light, dark) are compiled-in constants; mode changes select a different
// bundle, they never mutate one.
package tokens

// Mode selects one of the two compiled-in token bundles.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// TokenSet aggregates all design tokens for one mode.
type TokenSet struct {
	Colors     ColorRoles
	Spacing    Spacing
	Radii      Radii
	Shadows    ShadowScale
	Typography TypeScale
}

var (
	lightSet = TokenSet{
		Colors:     lightColors(),
		Spacing:    defaultSpacing(),
		Radii:      defaultRadii(),
		Shadows:    lightShadows(),
		Typography: defaultTypeScale(),
	}
	darkSet = TokenSet{
		Colors:     darkColors(),
		Spacing:    defaultSpacing(),
		Radii:      defaultRadii(),
		Shadows:    darkShadows(),
		Typography: defaultTypeScale(),
	}
)

// ForMode returns the precomputed token bundle for the given mode.
// Pure lookup; the returned set is a value copy and safe to hold.
func ForMode(mode Mode) TokenSet {
	if mode == Dark {
		return darkSet
	}
	return lightSet
}
