// Package thesaurus names arbitrary colors by finding the perceptually closest
// entry of a named palette.
package thesaurus

import (
	"errors"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/mmuldo/colorthesaurus/colorspace"
	"github.com/mmuldo/colorthesaurus/palette"
)

// ExactDistance is reported for entries whose channels equal the query
// exactly. It is a marker, not a ΔE.
const ExactDistance = 1.0

// ErrNoCandidates is returned when matching against an empty palette.
var ErrNoCandidates = errors.New("palette has no candidate colors")

// Match pairs a palette entry with its distance from the query.
type Match struct {
	Color    colorspace.RGBA
	Distance float64
}

// Exact reports whether m came from the exact-equality short-circuit.
func (m Match) Exact() bool {
	return m.Distance == ExactDistance
}

type byDistance []Match

func (ms byDistance) Len() int           { return len(ms) }
func (ms byDistance) Less(i, j int) bool { return ms[i].Distance < ms[j].Distance }
func (ms byDistance) Swap(i, j int)      { ms[i], ms[j] = ms[j], ms[i] }

// Option configures a Matcher.
type Option func(*Matcher)

// WithMetric sets the difference formula. The default is CIE94.
func WithMetric(metric Metric) Option {
	return func(m *Matcher) {
		m.metric = metric
	}
}

// WithLogger sets the logger matches are traced to.
func WithLogger(l hclog.Logger) Option {
	return func(m *Matcher) {
		m.log = l
	}
}

// Matcher finds the closest named color in a palette. It holds no mutable
// state and may be shared between goroutines.
type Matcher struct {
	palette *palette.Palette
	metric  Metric
	log     hclog.Logger
}

// New returns a Matcher over p.
func New(p *palette.Palette, opts ...Option) *Matcher {
	m := &Matcher{
		palette: p,
		metric:  CIE94,
		log:     hclog.NewNullLogger(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Palette returns the palette m searches.
func (m *Matcher) Palette() *palette.Palette {
	return m.palette
}

// ClosestMatch returns the palette entry closest to c. The first entry equal
// to c is returned with ExactDistance without scanning the rest. Otherwise
// every entry is scored with the entry as reference and the lowest score
// wins, earlier entries winning ties.
func (m *Matcher) ClosestMatch(c colorspace.RGBA) (Match, error) {
	if m.palette.Len() == 0 {
		return Match{}, ErrNoCandidates
	}

	q := query(c)
	for i := 0; i < m.palette.Len(); i++ {
		if e := m.palette.At(i); e.Equal(q) {
			m.log.Trace("exact match", "query", q, "name", e.Name)
			return Match{Color: e, Distance: ExactDistance}, nil
		}
	}

	ms := m.score(q)
	m.log.Debug("closest match", "query", q, "name", ms[0].Color.Name,
		"distance", ms[0].Distance, "metric", m.metric, "candidates", len(ms))
	return ms[0], nil
}

// Rank returns up to n entries ordered from closest to furthest; n <= 0
// returns every entry. Exact entries lead the list with ExactDistance.
func (m *Matcher) Rank(c colorspace.RGBA, n int) ([]Match, error) {
	if m.palette.Len() == 0 {
		return nil, ErrNoCandidates
	}

	q := query(c)
	exact := make([]Match, 0, 1)
	rest := make([]Match, 0, m.palette.Len())
	for _, s := range m.score(q) {
		if s.Color.Equal(q) {
			exact = append(exact, Match{Color: s.Color, Distance: ExactDistance})
			continue
		}
		rest = append(rest, s)
	}

	ms := append(exact, rest...)
	if n > 0 && n < len(ms) {
		ms = ms[:n]
	}
	return ms, nil
}

// Name returns the name of the entry closest to c.
func (m *Matcher) Name(c colorspace.RGBA) (string, error) {
	match, err := m.ClosestMatch(c)
	if err != nil {
		return "", err
	}
	return match.Color.Name, nil
}

// score rates every entry against q and sorts stably by distance.
func (m *Matcher) score(q colorspace.RGBA) []Match {
	ql := q.Lab()
	ms := make([]Match, m.palette.Len())
	for i := range ms {
		e := m.palette.At(i)
		ms[i] = Match{Color: e, Distance: m.metric.distance(e.Lab(), ql)}
	}
	sort.Stable(byDistance(ms))
	return ms
}

func query(c colorspace.RGBA) colorspace.RGBA {
	return colorspace.New(c.R, c.G, c.B, c.A)
}

var std = New(palette.Default())

// ClosestMatch matches c against the default palette with CIE94.
func ClosestMatch(c colorspace.RGBA) (Match, error) {
	return std.ClosestMatch(c)
}

// Name returns the default palette name closest to c.
func Name(c colorspace.RGBA) string {
	// the default palette is never empty
	n, _ := std.Name(c)
	return n
}
