package tokens

// RadiusFull is the pill/circle sentinel; clamp it to half the shorter
// side of the rect being drawn.
const RadiusFull int32 = 9999

// Radii is the corner radius scale in pixels.
type Radii struct {
	SM   int32 // 4px - subtle corners
	MD   int32 // 6px - moderate rounding
	LG   int32 // 8px - common default
	XL   int32 // 12px - prominent rounding
	Full int32 // pill/circle
}

func defaultRadii() Radii {
	return Radii{
		SM:   4,
		MD:   6,
		LG:   8,
		XL:   12,
		Full: RadiusFull,
	}
}

// Base returns the standard widget radius (LG).
func (r Radii) Base() int32 {
	return r.LG
}
