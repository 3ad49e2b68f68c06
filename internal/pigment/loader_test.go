package pigment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mixtint/mixtint/internal/colour"
)

func TestParseJSONArrayForm(t *testing.T) {
	data := []byte(`[
		{"name": "Titanium White", "rgb": [255, 255, 255], "density": 1.2},
		{"name": "Cadmium Red", "rgb": "#e30022"},
		{"name": "Ultramarine", "rgb": "18, 10, 143"}
	]`)

	p, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON unexpected error: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}

	white, ok := p.Get("Titanium White")
	if !ok {
		t.Fatal("Titanium White not found")
	}
	if white.Colour != (colour.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Titanium White colour = %+v", white.Colour)
	}
	if white.Density != 1.2 {
		t.Errorf("Titanium White density = %v, want 1.2", white.Density)
	}

	red, _ := p.Get("Cadmium Red")
	if red.Colour != (colour.RGB{R: 0xe3, G: 0x00, B: 0x22}) {
		t.Errorf("Cadmium Red colour = %+v", red.Colour)
	}

	blue, _ := p.Get("Ultramarine")
	if blue.Colour != (colour.RGB{R: 18, G: 10, B: 143}) {
		t.Errorf("Ultramarine colour = %+v", blue.Colour)
	}
}

func TestParseJSONMapForm(t *testing.T) {
	data := []byte(`{"White": "#ffffff", "Black": "40,40,43"}`)

	p, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON unexpected error: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	black, _ := p.Get("Black")
	if black.Colour != (colour.RGB{R: 40, G: 40, B: 43}) {
		t.Errorf("Black colour = %+v", black.Colour)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{{`},
		{name: "scalar top level", data: `42`},
		{name: "missing name", data: `[{"rgb": [1, 2, 3]}]`},
		{name: "channel out of range", data: `[{"name": "X", "rgb": [300, 0, 0]}]`},
		{name: "short rgb array", data: `[{"name": "X", "rgb": [1, 2]}]`},
		{name: "bad hex", data: `{"X": "#zzz"}`},
		{name: "duplicate names", data: `[{"name": "X", "rgb": [1,2,3]}, {"name": "X", "rgb": [4,5,6]}]`},
		{name: "empty array", data: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSON([]byte(tt.data)); err == nil {
				t.Error("ParseJSON expected error, got nil")
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	data := []byte("name,r,g,b,density\nWhite,255,255,255,1.2\nBlack,40,40,43,\n")

	p, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV unexpected error: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	white, _ := p.Get("White")
	if white.Density != 1.2 {
		t.Errorf("White density = %v, want 1.2", white.Density)
	}
	black, _ := p.Get("Black")
	if black.Colour != (colour.RGB{R: 40, G: 40, B: 43}) || black.Density != 0 {
		t.Errorf("Black = %+v", black)
	}
}

func TestParseCSVNoHeader(t *testing.T) {
	data := []byte("White,255,255,255\nBlack,0,0,0\n")

	p, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV unexpected error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "too few columns", data: "White,255,255\n"},
		{name: "bad channel", data: "White,red,0,0\n"},
		{name: "channel out of range", data: "White,999,0,0\n"},
		{name: "bad density", data: "White,255,255,255,heavy\n"},
		{name: "empty", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCSV([]byte(tt.data)); err == nil {
				t.Error("ParseCSV expected error, got nil")
			}
		})
	}
}

func TestParseText(t *testing.T) {
	data := []byte(`
# winsor & newton basics
Titanium White: #ffffff
Ivory Black: 40, 40, 43
`)

	p, err := ParseText(data)
	if err != nil {
		t.Fatalf("ParseText unexpected error: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	black, _ := p.Get("Ivory Black")
	if black.Colour != (colour.RGB{R: 40, G: 40, B: 43}) {
		t.Errorf("Ivory Black = %+v", black.Colour)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing separator", data: "Titanium White #ffffff\n"},
		{name: "bad colour", data: "White: notacolour\n"},
		{name: "only comments", data: "# nothing here\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseText([]byte(tt.data)); err == nil {
				t.Error("ParseText expected error, got nil")
			}
		})
	}
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "palette.json")
	if err := os.WriteFile(jsonPath, []byte(`{"White": "#ffffff"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	csvPath := filepath.Join(dir, "palette.csv")
	if err := os.WriteFile(csvPath, []byte("White,255,255,255\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	txtPath := filepath.Join(dir, "palette.txt")
	if err := os.WriteFile(txtPath, []byte("White: #ffffff\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, csvPath, txtPath} {
		p, err := Load(path)
		if err != nil {
			t.Errorf("Load(%s) unexpected error: %v", path, err)
			continue
		}
		if p.Len() != 1 {
			t.Errorf("Load(%s) Len() = %d, want 1", path, p.Len())
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing) expected error, got nil")
	}
}
