package pigment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mixtint/mixtint/internal/colour"
)

// Load reads a palette file, dispatching on the file extension: .json for
// JSON, .csv for CSV, anything else is treated as plain text.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified palette file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".csv":
		return ParseCSV(data)
	default:
		return ParseText(data)
	}
}

// ParseJSON parses a JSON palette. Two shapes are accepted:
//
//	[{"name": "Titanium White", "rgb": [255, 255, 255], "density": 1.2}, ...]
//	{"Titanium White": "#ffffff", "Ivory Black": "40,40,43", ...}
//
// In the array form "rgb" may be a 3-element array, a "r,g,b" string, or a
// hex string.
func ParseJSON(data []byte) (*Palette, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid palette JSON")
	}
	root := gjson.ParseBytes(data)

	var pigments []Pigment
	var parseErr error

	switch {
	case root.IsArray():
		root.ForEach(func(_, entry gjson.Result) bool {
			name := entry.Get("name").String()
			if name == "" {
				parseErr = fmt.Errorf("palette entry %d has no name", len(pigments))
				return false
			}
			c, err := jsonColour(entry.Get("rgb"))
			if err != nil {
				parseErr = fmt.Errorf("pigment %q: %w", name, err)
				return false
			}
			pigments = append(pigments, Pigment{
				Name:    name,
				Colour:  c,
				Density: entry.Get("density").Float(),
			})
			return true
		})
	case root.IsObject():
		root.ForEach(func(key, value gjson.Result) bool {
			c, err := jsonColour(value)
			if err != nil {
				parseErr = fmt.Errorf("pigment %q: %w", key.String(), err)
				return false
			}
			pigments = append(pigments, Pigment{Name: key.String(), Colour: c})
			return true
		})
	default:
		return nil, fmt.Errorf("invalid palette JSON: expected array or object at top level")
	}

	if parseErr != nil {
		return nil, parseErr
	}
	if len(pigments) == 0 {
		return nil, fmt.Errorf("palette JSON contains no pigments")
	}
	return NewPalette(pigments)
}

// jsonColour reads a colour from a gjson value that may be a channel array,
// a "r,g,b" string, or a hex string.
func jsonColour(v gjson.Result) (colour.RGB, error) {
	if v.IsArray() {
		arr := v.Array()
		if len(arr) != 3 {
			return colour.RGB{}, fmt.Errorf("rgb array has %d elements, want 3", len(arr))
		}
		var ch [3]uint8
		for i, e := range arr {
			n := e.Int()
			if n < 0 || n > 255 {
				return colour.RGB{}, fmt.Errorf("channel %d out of range [0, 255]", n)
			}
			ch[i] = uint8(n)
		}
		return colour.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	if v.Type == gjson.String {
		return colour.Parse(v.String())
	}
	return colour.RGB{}, fmt.Errorf("unsupported colour value %s", v.Raw)
}

// ParseCSV parses a CSV palette with rows of the form
// "name,r,g,b[,density]". A header row is skipped when its channel columns
// are not numeric.
func ParseCSV(data []byte) (*Palette, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid palette CSV: %w", err)
	}

	var pigments []Pigment
	for i, rec := range records {
		if len(rec) < 4 {
			return nil, fmt.Errorf("palette CSV row %d has %d columns, want at least 4", i+1, len(rec))
		}
		if i == 0 && !isNumeric(rec[1]) {
			continue // header row
		}
		c, err := csvColour(rec[1:4])
		if err != nil {
			return nil, fmt.Errorf("palette CSV row %d: %w", i+1, err)
		}
		pig := Pigment{Name: strings.TrimSpace(rec[0]), Colour: c}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			d, err := strconv.ParseFloat(strings.TrimSpace(rec[4]), 64)
			if err != nil {
				return nil, fmt.Errorf("palette CSV row %d: invalid density %q", i+1, rec[4])
			}
			pig.Density = d
		}
		pigments = append(pigments, pig)
	}

	if len(pigments) == 0 {
		return nil, fmt.Errorf("palette CSV contains no pigments")
	}
	return NewPalette(pigments)
}

func csvColour(fields []string) (colour.RGB, error) {
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return colour.RGB{}, fmt.Errorf("invalid channel %q", f)
		}
		if v < 0 || v > 255 {
			return colour.RGB{}, fmt.Errorf("channel %d out of range [0, 255]", v)
		}
		ch[i] = uint8(v)
	}
	return colour.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

// ParseText parses a plain-text palette with one pigment per line:
//
//	Titanium White: #ffffff
//	Ivory Black: 40, 40, 43
//
// Blank lines and lines starting with '#' are ignored.
func ParseText(data []byte) (*Palette, error) {
	var pigments []Pigment
	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("palette line %d: expected \"name: colour\", got %q", lineNo+1, line)
		}
		c, err := colour.Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("palette line %d: %w", lineNo+1, err)
		}
		pigments = append(pigments, Pigment{Name: strings.TrimSpace(name), Colour: c})
	}
	if len(pigments) == 0 {
		return nil, fmt.Errorf("palette text contains no pigments")
	}
	return NewPalette(pigments)
}
