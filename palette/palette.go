// Package palette holds the fixed tables of named reference colors that color
// names are looked up in.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmuldo/colorthesaurus/colorspace"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnnamed is returned when a palette entry has no name.
var ErrUnnamed = errors.New("palette entry has no name")

// Palette is an ordered, read-only list of named colors. Entry order decides
// ties between equally close colors.
type Palette struct {
	entries []colorspace.RGBA
}

var std = fromColornames()

// Default returns the built-in palette of the SVG 1.1 / CSS named colors in
// alphabetical order.
func Default() *Palette {
	return std
}

// New builds a palette from entries. The slice is copied; every entry must be
// named.
func New(entries []colorspace.RGBA) (*Palette, error) {
	p := &Palette{entries: make([]colorspace.RGBA, len(entries))}
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrUnnamed)
		}
		p.entries[i] = e
	}
	return p, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// At returns the i'th entry.
func (p *Palette) At(i int) colorspace.RGBA {
	return p.entries[i]
}

// Entries returns a copy of the entries in palette order.
func (p *Palette) Entries() []colorspace.RGBA {
	out := make([]colorspace.RGBA, len(p.entries))
	copy(out, p.entries)
	return out
}

// Lookup returns the first entry whose name matches name, ignoring case.
func (p *Palette) Lookup(name string) (colorspace.RGBA, bool) {
	for _, e := range p.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return colorspace.RGBA{}, false
}

func fromColornames() *Palette {
	title := cases.Title(language.English)
	p := &Palette{entries: make([]colorspace.RGBA, 0, len(colornames.Names))}
	for _, n := range colornames.Names {
		c := colornames.Map[n]
		p.entries = append(p.entries, colorspace.FromBytes(c.R, c.G, c.B, c.A).Named(title.String(n)))
	}
	return p
}
