package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	c := HexToColor(0xB73CB1)
	assert.Equal(t, sdl.Color{R: 0xB7, G: 0x3C, B: 0xB1, A: 0xFF}, c)
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(HexToColor(0xFFFFFF), 25)
	assert.Equal(t, sdl.Color{R: 255, G: 255, B: 255, A: 25}, c)
}

func TestLightenDarkenBounds(t *testing.T) {
	white := HexToColor(0xFFFFFF)
	black := HexToColor(0x000000)

	assert.Equal(t, white, Lighten(white, 0.5))
	assert.Equal(t, black, Darken(black, 0.5))

	mid := HexToColor(0x808080)
	lighter := Lighten(mid, 0.2)
	darker := Darken(mid, 0.2)
	assert.Greater(t, lighter.R, mid.R)
	assert.Less(t, darker.R, mid.R)

	// Alpha is untouched.
	translucent := WithAlpha(mid, 100)
	assert.Equal(t, uint8(100), Lighten(translucent, 0.3).A)
	assert.Equal(t, uint8(100), Darken(translucent, 0.3).A)
}

func TestDistance(t *testing.T) {
	white := HexToColor(0xFFFFFF)
	black := HexToColor(0x000000)
	gray := HexToColor(0xF0F0F0)

	assert.Zero(t, Distance(white, white))
	assert.InDelta(t, Distance(white, black), Distance(black, white), 1e-9)
	assert.Greater(t, Distance(white, black), 700.0)

	// The near-white gray is close to white but not indistinct.
	d := Distance(white, gray)
	assert.Greater(t, d, 30.0)
	assert.Less(t, d, 100.0)
}
