package imaging

import (
	"fmt"
	"image"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components. Alpha 0 is fully
// transparent, 255 fully opaque.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL space: hue in degrees (0-360),
// saturation and lightness as percentages (0-100).
type HSLColor struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorResult contains a sampled color in several representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // "#rrggbb", alpha excluded
	RGBA RGBAColor `json:"rgba"` // 8-bit components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation

	// NearWhite reports whether the pixel would be classified as background
	// at the default tolerance.
	NearWhite bool `json:"near_white"`
}

// SampleColor returns the color at pixel (x, y). Coordinates are 0-based;
// sampling outside the image bounds is an error.
//
// 16-bit sources are scaled down to 8-bit components. Hex and HSL values are
// produced with go-colorful and exclude alpha; use RGBA.A for transparency.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	c := colorful.Color{
		R: float64(r8) / 255.0,
		G: float64(g8) / 255.0,
		B: float64(b8) / 255.0,
	}
	h, s, l := c.Hsl()

	floor := uint8(255 - DefaultTolerance)

	return &ColorResult{
		Hex:  c.Hex(),
		RGBA: RGBAColor{R: r8, G: g8, B: b8, A: a8},
		HSL: HSLColor{
			H: int(math.Round(h)),
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
		NearWhite: r8 > floor && g8 > floor && b8 > floor,
	}, nil
}

// Region represents a rectangular region within an image. (X1, Y1) is
// inclusive, (X2, Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ColorFrequency pairs a quantized color with its share of the analyzed
// pixels.
type ColorFrequency struct {
	Hex        string  `json:"hex"`
	Percentage float64 `json:"percentage"`
}

// DominantColorsResult lists the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns the count most common colors in the image, or in
// the given region when region is non-nil. Useful for checking what shade
// the background of a scan actually is before picking a tolerance.
//
// Colors are quantized to 16-unit buckets per channel so near-identical
// shades group together; #FAFAFA and #F0F0F0 both land in #f0f0f0.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	bounds := img.Bounds()
	if region != nil {
		rect := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if !rect.In(bounds) || rect.Empty() {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) invalid for image bounds %v",
				region.X1, region.Y1, region.X2, region.Y2, bounds)
		}
		bounds = rect
	}

	colorCounts := make(map[colorful.Color]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Quantize to group similar shades.
			r8 := uint8(r>>8) / 16 * 16
			g8 := uint8(g>>8) / 16 * 16
			b8 := uint8(b>>8) / 16 * 16
			key := colorful.Color{
				R: float64(r8) / 255.0,
				G: float64(g8) / 255.0,
				B: float64(b8) / 255.0,
			}
			colorCounts[key]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(colorCounts))
	for c, cnt := range colorCounts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(cnt) / float64(totalPixels) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count > 0 && len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
