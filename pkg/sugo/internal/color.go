package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func WithAlpha(c sdl.Color, a uint8) sdl.Color {
	c.A = a
	return c
}

// Lighten moves each channel toward white by factor (0.0 to 1.0).
// Alpha is preserved.
func Lighten(c sdl.Color, factor float32) sdl.Color {
	return sdl.Color{
		R: lightenChannel(c.R, factor),
		G: lightenChannel(c.G, factor),
		B: lightenChannel(c.B, factor),
		A: c.A,
	}
}

// Darken moves each channel toward black by factor (0.0 to 1.0).
// Alpha is preserved.
func Darken(c sdl.Color, factor float32) sdl.Color {
	return sdl.Color{
		R: darkenChannel(c.R, factor),
		G: darkenChannel(c.G, factor),
		B: darkenChannel(c.B, factor),
		A: c.A,
	}
}

func lightenChannel(v uint8, factor float32) uint8 {
	f := float32(v) + (255.0-float32(v))*factor
	if f > 255 {
		f = 255
	}
	return uint8(f)
}

func darkenChannel(v uint8, factor float32) uint8 {
	f := float32(v) * (1.0 - factor)
	if f < 0 {
		f = 0
	}
	return uint8(f)
}

// Distance returns the perceptual distance between two colors using the
// "redmean" weighted RGB approximation. Identical colors return 0; black
// to white is roughly 765.
func Distance(a, b sdl.Color) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2.0
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(
		(2.0+rMean/256.0)*dr*dr +
			4.0*dg*dg +
			(2.0+(255.0-rMean)/256.0)*db*db)
}
