package colorspace

import (
	"fmt"
	"math"
)

// D65 reference white on the 0-100 scale used by XYZ.
const (
	WhiteX = 95.047
	WhiteY = 100.0
	WhiteZ = 108.883
)

// graphic arts weights for CIE1994
const (
	k1 = 0.045
	k2 = 0.015
)

// Lab is a CIELAB color. L is in [0, 100]; A and B are signed chroma axes.
type Lab struct {
	L float64
	A float64
	B float64
}

// ToLab converts x to CIELAB relative to the D65 white point.
func ToLab(x XYZ) Lab {
	fx := labF(x.X / WhiteX)
	fy := labF(x.Y / WhiteY)
	fz := labF(x.Z / WhiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Chroma returns sqrt(a² + b²).
func (l Lab) Chroma() float64 {
	return math.Sqrt(l.A*l.A + l.B*l.B)
}

// DistanceTo returns the CIE1994 ΔE between l and o using the graphic arts
// weights and kL = 1. The chroma of l, the reference, drives both weighting
// functions, so l.DistanceTo(o) and o.DistanceTo(l) generally differ.
func (l Lab) DistanceTo(o Lab) float64 {
	c1 := l.Chroma()
	c2 := o.Chroma()

	dL := l.L - o.L
	dA := l.A - o.A
	dB := l.B - o.B
	dC := c1 - c2

	// rounding can push ΔH² slightly below zero
	dH2 := dA*dA + dB*dB - dC*dC
	dH := 0.0
	if dH2 > 0 {
		dH = math.Sqrt(dH2)
	}

	sC := 1 + k1*c1
	sH := 1 + k2*c1

	vC := dC / sC
	vH := dH / sH

	return math.Sqrt(dL*dL + vC*vC + vH*vH)
}

func (l Lab) String() string {
	return fmt.Sprintf("lab(%.4f, %.4f, %.4f)", l.L, l.A, l.B)
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Pow(t, 1.0/3.0)
	}
	return 7.787*t + 16.0/116.0
}
