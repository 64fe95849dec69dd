// Package image reduces images to their dominant colors.
package image

import (
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/colorthesaurus/colorspace"
)

// ColorCount is a color and the number of sampled pixels it covers.
type ColorCount struct {
	Color colorspace.RGBA
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Quantize reduces img to at most num colors using median cut without
// dithering.
func Quantize(img image.Image, num int) *image.NRGBA {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o
}

// GetColors counts the colors of every step'th pixel in each direction.
// Fully transparent pixels are skipped.
func GetColors(img image.Image, step int) map[color.NRGBA]int {
	if step < 1 {
		step = 1
	}
	m := make(map[color.NRGBA]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A != 0 {
				m[c]++
			}
		}
	}

	return m
}

// RankColors orders colors by count, most frequent first.
func RankColors(m map[color.NRGBA]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{colorspace.FromBytes(k.R, k.G, k.B, k.A), v})
	}

	sort.Sort(cc)
	return cc
}

// Dominant quantizes img to num colors and ranks them by coverage.
func Dominant(img image.Image, num, step int) ColorCountList {
	return RankColors(GetColors(Quantize(img, num), step))
}
