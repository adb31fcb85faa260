package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(10, 10, color.NRGBA{255, 0, 0, 255})

	result, err := SampleColor(img, 5, 5)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#ff0000" {
		t.Errorf("Hex: got %s, want #ff0000", result.Hex)
	}
	if result.RGBA.R != 255 || result.RGBA.G != 0 || result.RGBA.B != 0 || result.RGBA.A != 255 {
		t.Errorf("RGBA: got %+v, want (255,0,0,255)", result.RGBA)
	}
	if result.HSL.H != 0 || result.HSL.S != 100 || result.HSL.L != 50 {
		t.Errorf("HSL: got %+v, want (0,100,50)", result.HSL)
	}
	if result.NearWhite {
		t.Error("red must not be near-white")
	}
}

func TestSampleColor_NearWhite(t *testing.T) {
	tests := []struct {
		name  string
		pixel color.NRGBA
		want  bool
	}{
		{"pure white", color.NRGBA{255, 255, 255, 255}, true},
		{"light gray above floor", color.NRGBA{200, 200, 200, 255}, true},
		{"gray at floor", color.NRGBA{195, 195, 195, 255}, false},
		{"one channel below", color.NRGBA{255, 255, 100, 255}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(1, 1, tt.pixel)
			result, err := SampleColor(img, 0, 0)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.NearWhite != tt.want {
				t.Errorf("NearWhite: got %v, want %v", result.NearWhite, tt.want)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.NRGBA{255, 0, 0, 255})

	coords := []image.Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}}
	for _, p := range coords {
		if _, err := SampleColor(img, p.X, p.Y); err == nil {
			t.Errorf("SampleColor(%d,%d) should fail", p.X, p.Y)
		}
	}
}

func TestDominantColors(t *testing.T) {
	// 3/4 white, 1/4 black
	img := createContentImage(8, 8, image.Rect(0, 0, 4, 4))

	result, err := DominantColors(img, 2, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("colors: got %d, want 2", len(result.Colors))
	}
	if result.Colors[0].Hex != "#f0f0f0" {
		t.Errorf("dominant color: got %s, want quantized white #f0f0f0", result.Colors[0].Hex)
	}
	if result.Colors[0].Percentage != 75.0 {
		t.Errorf("dominant share: got %.1f, want 75.0", result.Colors[0].Percentage)
	}
	if result.Colors[1].Hex != "#000000" {
		t.Errorf("second color: got %s, want #000000", result.Colors[1].Hex)
	}
}

func TestDominantColors_Region(t *testing.T) {
	img := createContentImage(8, 8, image.Rect(0, 0, 4, 4))

	// Only the black quadrant.
	result, err := DominantColors(img, 5, &Region{X1: 0, Y1: 0, X2: 4, Y2: 4})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 1 {
		t.Fatalf("colors: got %d, want 1", len(result.Colors))
	}
	if result.Colors[0].Hex != "#000000" || result.Colors[0].Percentage != 100.0 {
		t.Errorf("got %s at %.1f%%, want #000000 at 100%%",
			result.Colors[0].Hex, result.Colors[0].Percentage)
	}
}

func TestDominantColors_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(8, 8, color.NRGBA{255, 255, 255, 255})

	invalid := []Region{
		{X1: 0, Y1: 0, X2: 9, Y2: 4},  // outside bounds
		{X1: 4, Y1: 0, X2: 4, Y2: 4},  // empty
		{X1: -1, Y1: 0, X2: 4, Y2: 4}, // negative
	}

	for _, region := range invalid {
		r := region
		if _, err := DominantColors(img, 5, &r); err == nil {
			t.Errorf("DominantColors should fail for region %+v", region)
		}
	}
}
