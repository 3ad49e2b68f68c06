package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mixtint/mixtint/internal/colour"
)

func solidImage(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDominantSolidColour(t *testing.T) {
	tests := []struct {
		name string
		fill color.RGBA
		want colour.RGB
	}{
		{
			name: "red",
			fill: color.RGBA{R: 200, G: 10, B: 10, A: 255},
			want: colour.RGB{R: 200, G: 10, B: 10},
		},
		{
			name: "white",
			fill: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			want: colour.RGB{R: 255, G: 255, B: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dominant(solidImage(tt.fill, 20, 20))
			if got != tt.want {
				t.Errorf("Dominant() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDominantMajorityColour(t *testing.T) {
	// Three quarters blue, one quarter yellow: blue dominates.
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	blue := color.RGBA{R: 20, G: 40, B: 200, A: 255}
	yellow := color.RGBA{R: 250, G: 220, B: 20, A: 255}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x < 10 {
				img.Set(x, y, yellow)
			} else {
				img.Set(x, y, blue)
			}
		}
	}

	got := Dominant(img)
	want := colour.RGB{R: 20, G: 40, B: 200}
	if got != want {
		t.Errorf("Dominant() = %+v, want %+v", got, want)
	}
}

func TestDominantDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 100, A: 255})
		}
	}

	first := Dominant(img)
	for i := 0; i < 3; i++ {
		if got := Dominant(img); got != first {
			t.Fatalf("Dominant() not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestTargetColour(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solid.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(color.RGBA{R: 30, G: 60, B: 90, A: 255}, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := TargetColour(path)
	if err != nil {
		t.Fatalf("TargetColour unexpected error: %v", err)
	}
	want := colour.RGB{R: 30, G: 60, B: 90}
	if got != want {
		t.Errorf("TargetColour() = %+v, want %+v", got, want)
	}
}

func TestTargetColourErrors(t *testing.T) {
	if _, err := TargetColour(""); err == nil {
		t.Error("TargetColour(empty) expected error")
	}
	if _, err := TargetColour(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("TargetColour(missing) expected error")
	}

	notImage := filepath.Join(t.TempDir(), "notimage.png")
	if err := os.WriteFile(notImage, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := TargetColour(notImage); err == nil {
		t.Error("TargetColour(non-image) expected error")
	}
}
