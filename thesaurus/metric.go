package thesaurus

import (
	"fmt"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/mmuldo/colorthesaurus/colorspace"
)

// Metric selects the color difference formula used to rank palette entries.
type Metric int

const (
	// CIE94 is the CIE1994 ΔE with graphic arts weights. The palette entry is
	// the reference color.
	CIE94 Metric = iota
	// CIE2000 is the CIEDE2000 ΔE with unit weights.
	CIE2000
)

var klch = &deltae.KLChDefault

// ParseMetric parses "cie94" or "cie2000", ignoring case.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cie94", "cie1994":
		return CIE94, nil
	case "cie2000", "ciede2000":
		return CIE2000, nil
	}
	return CIE94, fmt.Errorf("unknown metric %q", s)
}

func (m Metric) String() string {
	switch m {
	case CIE94:
		return "cie94"
	case CIE2000:
		return "cie2000"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// distance scores sample against the reference ref, both already in LAB.
func (m Metric) distance(ref, sample colorspace.Lab) float64 {
	if m == CIE2000 {
		return deltae.CIE2000(labOf(ref), labOf(sample), klch)
	}
	return ref.DistanceTo(sample)
}

func labOf(l colorspace.Lab) chromath.Lab {
	return chromath.Lab{l.L, l.A, l.B}
}
