package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a string is not a #RGB, #RRGGBB or #AARRGGBB
// hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses #RGB, #RRGGBB and #AARRGGBB strings. The leading '#' is
// optional. Eight digit values carry alpha first.
func ParseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var a, r, g, b uint64
	switch len(h) {
	case 3:
		a, r, g, b = 255, (v>>8)*17, (v>>4&0xf)*17, (v&0xf)*17
	case 6:
		a, r, g, b = 255, v>>16, v>>8&0xff, v&0xff
	case 8:
		a, r, g, b = v>>24, v>>16&0xff, v>>8&0xff, v&0xff
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return FromBytes(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// FromBytes builds a color from 8-bit channels.
func FromBytes(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Bytes returns the channels of c, clamped and rounded to 8 bits.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	c = c.Clamp()
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// Hex formats c as #rrggbb, or #aarrggbb when it is not fully opaque, so that
// ParseHex(c.Hex()) round-trips at 8-bit precision.
func (c RGBA) Hex() string {
	r, g, b, a := c.Bytes()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", a, r, g, b)
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
