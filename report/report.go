// Package report renders color names and conversions through pongo2
// templates.
package report

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/colorthesaurus/colorspace"
	"github.com/mmuldo/colorthesaurus/thesaurus"
)

// Data is the context a template is executed with.
type Data map[string]interface{}

// Built-in templates, one per command.
const (
	MatchTemplate = `{% for m in matches %}{{ query }} -> {{ m.name }} {{ m.hex }}{% if m.exact %} (exact){% else %} (ΔE {{ m.distance|floatformat:4 }}){% endif %}
{% endfor %}`

	ConvertTemplate = `hex  {{ color.hex }}
rgba {{ color.red|floatformat:4 }} {{ color.green|floatformat:4 }} {{ color.blue|floatformat:4 }} {{ color.alpha|floatformat:4 }}
xyz  {{ xyz.x|floatformat:4 }} {{ xyz.y|floatformat:4 }} {{ xyz.z|floatformat:4 }}
lab  {{ lab.l|floatformat:4 }} {{ lab.a|floatformat:4 }} {{ lab.b|floatformat:4 }}
hsl  {{ hsl.h|floatformat:2 }} {{ hsl.s|floatformat:2 }} {{ hsl.l|floatformat:2 }}
name {{ name }}
`

	ListTemplate = `{% for c in colors %}{{ c.hex }} {{ c.name }}
{% endfor %}`

	ExtractTemplate = `{% for c in colors %}color{{ forloop.Counter0 }} {{ c.hex }} {{ c.name }} ({{ c.count }} px)
{% endfor %}`
)

func init() {
	// output is plain text
	pongo2.SetAutoescape(false)
}

// Template loads the template at path, or parses fallback when path is
// empty.
func Template(path, fallback string) (*pongo2.Template, error) {
	if path == "" {
		return pongo2.FromString(fallback)
	}

	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return nil, fmt.Errorf("loading template %s: %w", path, e)
	}
	return tpl, nil
}

// Render executes tpl with d and writes the result to w.
func Render(w io.Writer, tpl *pongo2.Template, d Data) error {
	o, e := tpl.Execute(pongo2.Context(d))
	if e != nil {
		return fmt.Errorf("rendering template: %w", e)
	}

	_, e = io.WriteString(w, o)
	return e
}

// Color flattens c into template fields.
func Color(c colorspace.RGBA) map[string]interface{} {
	return map[string]interface{}{
		"name":  c.Name,
		"hex":   c.Hex(),
		"red":   c.R,
		"green": c.G,
		"blue":  c.B,
		"alpha": c.A,
	}
}

// Match flattens m into template fields: the matched color plus distance and
// exact.
func Match(m thesaurus.Match) map[string]interface{} {
	row := Color(m.Color)
	row["distance"] = m.Distance
	row["exact"] = m.Exact()
	return row
}

// Matches flattens ms in order.
func Matches(ms []thesaurus.Match) []map[string]interface{} {
	rows := make([]map[string]interface{}, len(ms))
	for i, m := range ms {
		rows[i] = Match(m)
	}
	return rows
}

// Conversion describes c in every supported color space.
func Conversion(c colorspace.RGBA) Data {
	x := c.XYZ()
	l := x.Lab()
	h := colorspace.ToHSL(c)

	return Data{
		"color": Color(c),
		"xyz":   map[string]float64{"x": x.X, "y": x.Y, "z": x.Z},
		"lab":   map[string]float64{"l": l.L, "a": l.A, "b": l.B},
		"hsl":   map[string]float64{"h": h.H, "s": h.S, "l": h.L},
	}
}
