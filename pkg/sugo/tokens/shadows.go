package tokens

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sugo-ui/sugo/pkg/sugo/internal"
)

// Shadow is one elevation level: a vertical/horizontal offset, a blur
// radius, and a translucent color.
type Shadow struct {
	OffsetX int32
	OffsetY int32
	Blur    int32
	Color   sdl.Color
}

// ShadowScale is the elevation scale for one mode. Dark mode levels carry
// higher opacity and offset because ambient contrast is lower.
type ShadowScale struct {
	XS  Shadow // barely lifted
	SM  Shadow // cards
	MD  Shadow // popovers, dropdowns
	LG  Shadow // dialogs, sheets
	XL  Shadow // command palettes
	XL2 Shadow // full-screen takeovers
}

func lightShadows() ShadowScale {
	soft := internal.WithAlpha(internal.HexToColor(0x000000), 25)
	strong := internal.WithAlpha(internal.HexToColor(0x000000), 64)
	return ShadowScale{
		XS:  Shadow{OffsetY: 1, Blur: 2, Color: soft},
		SM:  Shadow{OffsetY: 1, Blur: 3, Color: soft},
		MD:  Shadow{OffsetY: 4, Blur: 6, Color: soft},
		LG:  Shadow{OffsetY: 10, Blur: 15, Color: soft},
		XL:  Shadow{OffsetY: 20, Blur: 25, Color: soft},
		XL2: Shadow{OffsetY: 25, Blur: 50, Color: strong},
	}
}

func darkShadows() ShadowScale {
	soft := internal.WithAlpha(internal.HexToColor(0x000000), 89)
	strong := internal.WithAlpha(internal.HexToColor(0x000000), 140)
	return ShadowScale{
		XS:  Shadow{OffsetY: 1, Blur: 2, Color: soft},
		SM:  Shadow{OffsetY: 2, Blur: 4, Color: soft},
		MD:  Shadow{OffsetY: 5, Blur: 8, Color: soft},
		LG:  Shadow{OffsetY: 12, Blur: 18, Color: soft},
		XL:  Shadow{OffsetY: 22, Blur: 28, Color: strong},
		XL2: Shadow{OffsetY: 28, Blur: 54, Color: strong},
	}
}
