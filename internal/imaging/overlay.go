package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
)

// DrawBounds returns a copy of the image with the given rectangle outlined in
// the given color. Used to visually verify where the content box landed
// before committing to a crop.
func DrawBounds(img image.Image, rect image.Rectangle, c color.RGBA) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	// Horizontal edges
	for x := rect.Min.X; x < rect.Max.X; x++ {
		result.Set(x, rect.Min.Y, c)
		result.Set(x, rect.Max.Y-1, c)
	}
	// Vertical edges
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		result.Set(rect.Min.X, y, c)
		result.Set(rect.Max.X-1, y, c)
	}

	return result
}

// OverlayResult contains an image with the detected content box drawn on it.
type OverlayResult struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Bounds      *BoundsResult `json:"bounds,omitempty"`
	ImageBase64 string        `json:"image_base64"`
	MimeType    string        `json:"mime_type"`
}

// BoundsOverlay classifies the image at the given tolerance, draws the
// resulting content box on a copy of the original, and returns it as base64
// PNG. When the whole image is background, the original is returned unmarked
// and Bounds is nil.
func BoundsOverlay(img image.Image, tolerance int, outlineHex string) (*OverlayResult, error) {
	outline, err := ParseHexColor(outlineHex)
	if err != nil {
		outline = color.RGBA{255, 0, 0, 255} // default: red
	}

	report, err := ContentBoundsReport(img, tolerance)
	if err != nil {
		return nil, err
	}

	marked := img
	if report.Found {
		rect := image.Rect(report.X1, report.Y1, report.X2, report.Y2)
		marked = DrawBounds(img, rect, outline)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, marked); err != nil {
		return nil, fmt.Errorf("failed to encode overlay image: %w", err)
	}

	result := &OverlayResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}
	if report.Found {
		result.Bounds = report
	}

	return result, nil
}

// ParseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func ParseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
