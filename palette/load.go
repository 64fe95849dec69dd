package palette

import (
	"fmt"

	"github.com/mmuldo/colorthesaurus/colorspace"
	"github.com/spf13/viper"
)

// row is one entry of a palette file. A color is given either as hex or as
// normalized channels; alpha defaults to 1.
type row struct {
	Name  string   `mapstructure:"name"`
	Hex   string   `mapstructure:"hex"`
	Red   *float64 `mapstructure:"red"`
	Green *float64 `mapstructure:"green"`
	Blue  *float64 `mapstructure:"blue"`
	Alpha *float64 `mapstructure:"alpha"`
}

// Load reads a palette from a YAML, JSON or TOML file with a top level
// "colors" list, e.g.
//
//	colors:
//	  - name: Brand Red
//	    hex: "#d7263d"
//	  - name: Paper
//	    red: 0.98
//	    green: 0.97
//	    blue: 0.94
func Load(path string) (*Palette, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading palette %s: %w", path, err)
	}

	var rows []row
	if err := v.UnmarshalKey("colors", &rows); err != nil {
		return nil, fmt.Errorf("decoding palette %s: %w", path, err)
	}

	entries := make([]colorspace.RGBA, 0, len(rows))
	for i, r := range rows {
		c, err := r.color()
		if err != nil {
			return nil, fmt.Errorf("palette %s entry %d: %w", path, i, err)
		}
		entries = append(entries, c)
	}

	return New(entries)
}

func (r row) color() (colorspace.RGBA, error) {
	if r.Hex != "" {
		c, err := colorspace.ParseHex(r.Hex)
		if err != nil {
			return colorspace.RGBA{}, err
		}
		return c.Named(r.Name), nil
	}

	if r.Red == nil || r.Green == nil || r.Blue == nil {
		return colorspace.RGBA{}, fmt.Errorf("%q needs hex or red, green and blue", r.Name)
	}
	a := 1.0
	if r.Alpha != nil {
		a = *r.Alpha
	}
	return colorspace.RGBA{Name: r.Name, R: *r.Red, G: *r.Green, B: *r.Blue, A: a}, nil
}
