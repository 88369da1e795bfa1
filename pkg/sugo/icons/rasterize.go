// Package icons rasterizes monochrome SVG glyphs tinted with design token
// colors, so icon color follows the theme instead of being baked into
// assets.
package icons

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// Rasterize renders svg data at the given size and recolors the shape with
// tint. Intended for monochrome glyph icons: the source colors are
// discarded, only the coverage (alpha) is kept.
//
// The returned surface uses straight-alpha ABGR8888; the caller owns it
// and must Free it (or hand it to a TextureCache).
func Rasterize(svg []byte, w, h int, tint sdl.Color) (*sdl.Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("icons: invalid size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("icons: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	applyTint(rgba, tint)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, fmt.Errorf("icons: create surface: %w", err)
	}
	copy(surface.Pixels(), rgba.Pix)
	return surface, nil
}

// applyTint replaces each pixel's color with the tint, scaling coverage by
// the tint's own alpha.
func applyTint(img *image.RGBA, tint sdl.Color) {
	px := img.Pix
	for i := 0; i < len(px); i += 4 {
		a := px[i+3]
		if a == 0 {
			px[i], px[i+1], px[i+2] = 0, 0, 0
			continue
		}
		px[i] = tint.R
		px[i+1] = tint.G
		px[i+2] = tint.B
		px[i+3] = uint8(uint16(a) * uint16(tint.A) / 255)
	}
}
