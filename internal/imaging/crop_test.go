package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestAutoCrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 8))
	img.SetNRGBA(3, 2, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(6, 5, color.NRGBA{0, 0, 255, 255})

	cropped, content, found := AutoCrop(img)
	if !found {
		t.Fatal("expected content to be found")
	}
	if want := image.Rect(3, 2, 7, 6); content != want {
		t.Errorf("content rect: got %v, want %v", content, want)
	}
	if cropped.Bounds().Dx() != 4 || cropped.Bounds().Dy() != 4 {
		t.Errorf("cropped size: got %dx%d, want 4x4", cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}

	// The red pixel ends up at the cropped origin.
	r, g, b, a := pixelAt(cropped, cropped.Bounds().Min.X, cropped.Bounds().Min.Y)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("origin pixel: got (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
}

func TestAutoCrop_FullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 7))

	cropped, _, found := AutoCrop(img)
	if found {
		t.Error("expected found=false for fully transparent image")
	}
	if cropped.Bounds().Dx() != 5 || cropped.Bounds().Dy() != 7 {
		t.Errorf("canvas: got %dx%d, want original 5x7", cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
}

func TestAutoCrop_NoBackgroundKeepsCanvas(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{10, 10, 10, 255})
		}
	}

	cropped, content, found := AutoCrop(img)
	if !found {
		t.Fatal("expected content to be found")
	}
	if content != img.Bounds() {
		t.Errorf("content rect: got %v, want full bounds %v", content, img.Bounds())
	}
	if cropped.Bounds() != img.Bounds() {
		t.Errorf("cropped bounds: got %v, want %v", cropped.Bounds(), img.Bounds())
	}
}

func TestCrop(t *testing.T) {
	img := createContentImage(10, 10, image.Rect(0, 0, 5, 5))

	result, err := Crop(img, 0, 0, 5, 5)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width != 5 || result.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 5x5", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}

	croppedImg, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	r, g, b, _ := croppedImg.At(2, 2).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("cropped content: got (%d,%d,%d), want black", r>>8, g>>8, b>>8)
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.NRGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 negative", -1, 0, 5, 5},
		{"y1 negative", 0, -1, 5, 5},
		{"x2 too large", 0, 0, 11, 5},
		{"y2 too large", 0, 0, 5, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.x1, tt.y1, tt.x2, tt.y2); err == nil {
				t.Error("Crop should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(10, 10, color.NRGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 >= x2", 5, 0, 5, 5},
		{"y1 >= y2", 0, 5, 5, 5},
		{"zero area", 5, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.x1, tt.y1, tt.x2, tt.y2); err == nil {
				t.Error("Crop should fail for invalid region")
			}
		})
	}
}
