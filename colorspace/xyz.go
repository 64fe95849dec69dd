package colorspace

import (
	"fmt"
	"math"
)

// XYZ holds CIE XYZ tristimulus values scaled to 0-100, D65 referenced.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// ToXYZ linearizes the sRGB channels of c and applies the sRGB to XYZ (D65)
// matrix. Alpha is ignored.
func ToXYZ(c RGBA) XYZ {
	r := linearize(c.R) * 100
	g := linearize(c.G) * 100
	b := linearize(c.B) * 100

	return XYZ{
		X: r*0.4124 + g*0.3576 + b*0.1805,
		Y: r*0.2126 + g*0.7152 + b*0.0722,
		Z: r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// Lab converts x to CIELAB.
func (x XYZ) Lab() Lab {
	return ToLab(x)
}

func (x XYZ) String() string {
	return fmt.Sprintf("xyz(%.4f, %.4f, %.4f)", x.X, x.Y, x.Z)
}

// undo sRGB gamma
func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}
