// Package colorspace converts normalized sRGB colors to CIE XYZ and CIELAB and
// measures perceptual distance between them.
package colorspace

import (
	"fmt"
	"math"
)

// RGBA is a normalized sRGB color. Channels are nominally in [0, 1]; Name is
// empty for unnamed query colors.
type RGBA struct {
	Name string
	R    float64
	G    float64
	B    float64
	A    float64
}

// New returns an unnamed color.
func New(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Named returns a copy of c carrying name.
func (c RGBA) Named(name string) RGBA {
	c.Name = name
	return c
}

// Equal reports whether both colors have exactly the same channels. Names are
// ignored.
func (c RGBA) Equal(o RGBA) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

// InRange reports whether every channel lies in [0, 1].
func (c RGBA) InRange() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B) && inUnit(c.A)
}

// Clamp returns c with every channel clamped into [0, 1].
func (c RGBA) Clamp() RGBA {
	c.R = clamp(c.R)
	c.G = clamp(c.G)
	c.B = clamp(c.B)
	c.A = clamp(c.A)
	return c
}

// XYZ converts c to CIE XYZ.
func (c RGBA) XYZ() XYZ {
	return ToXYZ(c)
}

// Lab converts c to CIELAB through XYZ.
func (c RGBA) Lab() Lab {
	return ToXYZ(c).Lab()
}

// DistanceTo returns the CIE1994 difference between c and o, with c as the
// reference color. See Lab.DistanceTo.
func (c RGBA) DistanceTo(o RGBA) float64 {
	return c.Lab().DistanceTo(o.Lab())
}

func (c RGBA) String() string {
	if c.Name != "" {
		return fmt.Sprintf("%s(%g, %g, %g, %g)", c.Name, c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
