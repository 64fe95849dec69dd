package palette

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/colorthesaurus/colorspace"
	"golang.org/x/image/colornames"
)

func TestDefault(t *testing.T) {
	p := Default()

	if p.Len() != len(colornames.Names) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(colornames.Names))
	}
	if got := p.At(0).Name; got != "Aliceblue" {
		t.Errorf("At(0).Name = %q, want %q", got, "Aliceblue")
	}
	if Default() != p {
		t.Error("Default() built more than once")
	}

	for i := 0; i < p.Len(); i++ {
		e := p.At(i)
		if e.Name == "" {
			t.Errorf("entry %d has no name", i)
		}
		if !e.InRange() {
			t.Errorf("entry %s out of range: %v", e.Name, e)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  colorspace.RGBA
		found bool
	}{
		{name: "title case", query: "Red", want: colorspace.New(1, 0, 0, 1), found: true},
		{name: "lower case", query: "white", want: colorspace.New(1, 1, 1, 1), found: true},
		{name: "missing", query: "ultraviolet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Default().Lookup(tt.query)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestEntriesIsACopy(t *testing.T) {
	p := Default()
	first := p.At(0)

	e := p.Entries()
	e[0] = colorspace.New(0, 0, 0, 0).Named("Changed")

	if p.At(0) != first {
		t.Errorf("mutating Entries() changed the palette: %v", p.At(0))
	}
}

func TestNew(t *testing.T) {
	in := []colorspace.RGBA{
		colorspace.New(1, 0, 0, 1).Named("Red"),
		colorspace.New(0, 0, 1, 1).Named("Blue"),
	}

	p, err := New(in)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	in[0].Name = "Changed"
	if got := p.At(0).Name; got != "Red" {
		t.Errorf("At(0).Name = %q after caller mutation, want %q", got, "Red")
	}

	if _, err := New([]colorspace.RGBA{colorspace.New(1, 1, 1, 1)}); !errors.Is(err, ErrUnnamed) {
		t.Errorf("New() with unnamed entry error = %v, want ErrUnnamed", err)
	}

	empty, err := New(nil)
	if err != nil || empty.Len() != 0 {
		t.Errorf("New(nil) = %v, %v; want empty palette", empty, err)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []colorspace.RGBA
		wantErr bool
	}{
		{
			name: "yaml",
			file: "brand.yaml",
			content: `colors:
  - name: Brand Red
    hex: "#ff0000"
  - name: Half Gray
    red: 0.5
    green: 0.5
    blue: 0.5
    alpha: 0.25
  - name: Ink
    red: 0
    green: 0
    blue: 0
`,
			want: []colorspace.RGBA{
				{Name: "Brand Red", R: 1, G: 0, B: 0, A: 1},
				{Name: "Half Gray", R: 0.5, G: 0.5, B: 0.5, A: 0.25},
				{Name: "Ink", R: 0, G: 0, B: 0, A: 1},
			},
		},
		{
			name:    "json",
			file:    "brand.json",
			content: `{"colors": [{"name": "Sky", "hex": "#0000ff"}]}`,
			want:    []colorspace.RGBA{{Name: "Sky", B: 1, A: 1}},
		},
		{
			name:    "bad hex",
			file:    "bad.yaml",
			content: "colors:\n  - name: Oops\n    hex: \"#12\"\n",
			wantErr: true,
		},
		{
			name:    "missing channel",
			file:    "partial.yaml",
			content: "colors:\n  - name: Oops\n    red: 1\n",
			wantErr: true,
		},
		{
			name:    "unnamed",
			file:    "unnamed.yaml",
			content: "colors:\n  - hex: \"#ffffff\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(writeFile(t, tt.file, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			got := p.Entries()
			if len(got) != len(tt.want) {
				t.Fatalf("Load() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file expected error, got nil")
	}
}
