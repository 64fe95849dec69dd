package colorspace

import (
	"fmt"
	"math"
)

// HSL holds hue in degrees [0, 360) and saturation and lightness as
// percentages.
type HSL struct {
	H float64
	S float64
	L float64
}

// ToHSL converts the RGB channels of c to HSL. Alpha is ignored.
func ToHSL(c RGBA) HSL {
	hi := math.Max(c.R, math.Max(c.G, c.B))
	lo := math.Min(c.R, math.Min(c.G, c.B))
	l := (hi + lo) / 2
	d := hi - lo

	if d == 0 {
		return HSL{L: l * 100}
	}

	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.2f, %.2f%%, %.2f%%)", h.H, h.S, h.L)
}
