// Package pipeline orchestrates the full background-stripping run:
// decode → classify → crop → encode. Each invocation is independent and
// idempotent given the same inputs and tolerance.
package pipeline

import (
	"fmt"
	"image"

	"github.com/ironsheep/stripbg/internal/imaging"
)

// Options controls a background-stripping run.
type Options struct {
	// Tolerance is the whiteness threshold (0-255). A pixel is background
	// when R, G, and B each exceed 255 - Tolerance. Callers should pass an
	// explicit value; imaging.DefaultTolerance is the documented default.
	Tolerance int
}

// Result holds the outcome of a pipeline run.
type Result struct {
	SrcWidth  int // source dimensions before cropping
	SrcHeight int

	Width  int // output dimensions
	Height int

	// Bounds is the detected content box in source coordinates. Only valid
	// when Cropped is true.
	Bounds image.Rectangle

	// Cropped reports whether any opaque content survived classification.
	// When false the output keeps the full source canvas, fully transparent.
	Cropped bool

	// BackgroundPixels is the number of pixels rewritten to transparent.
	BackgroundPixels int
}

// Run executes the pipeline: decode the image at inputPath, rewrite
// near-white pixels to transparent white, crop to the bounding box of the
// remaining content, and write the result to outputPath as PNG.
//
// A fully-background image is written at its original dimensions, fully
// transparent. Any stage failure is returned wrapped with the stage name and
// leaves no valid output behind.
func Run(inputPath, outputPath string, opts Options) (*Result, error) {
	img, err := imaging.LoadImage(inputPath)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	stripped, background, err := imaging.StripBackground(img, opts.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	cropped, bounds, found := imaging.AutoCrop(stripped)

	if err := imaging.SavePNG(outputPath, cropped); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		SrcWidth:         img.Bounds().Dx(),
		SrcHeight:        img.Bounds().Dy(),
		Width:            cropped.Bounds().Dx(),
		Height:           cropped.Bounds().Dy(),
		Bounds:           bounds,
		Cropped:          found,
		BackgroundPixels: background,
	}, nil
}
