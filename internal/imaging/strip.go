package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// DefaultTolerance is the whiteness threshold used when a caller does not
// supply one. A pixel is background when each of R, G, and B exceeds
// 255 - tolerance.
const DefaultTolerance = 60

// StripBackground classifies near-white pixels as background and rewrites
// them to transparent white (255,255,255,0).
//
// The source image is never modified: the work happens on a non-premultiplied
// copy, so pixels that survive classification keep their original channel
// values exactly, including partial alpha from the source. Images without an
// alpha channel come out fully opaque except where background was removed.
//
// Returns the processed image and the number of pixels classified as
// background. Tolerance must be in [0,255]; with tolerance 0 the predicate
// c > 255 matches nothing, and larger values admit progressively darker
// near-whites.
func StripBackground(img image.Image, tolerance int) (*image.NRGBA, int, error) {
	if tolerance < 0 || tolerance > 255 {
		return nil, 0, fmt.Errorf("tolerance %d outside valid range 0-255", tolerance)
	}

	out := imaging.Clone(img)
	floor := uint8(255 - tolerance)

	background := 0
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] > floor && out.Pix[i+1] > floor && out.Pix[i+2] > floor {
			out.Pix[i] = 255
			out.Pix[i+1] = 255
			out.Pix[i+2] = 255
			out.Pix[i+3] = 0
			background++
		}
	}

	return out, background, nil
}

// StripResult contains the outcome of a strip-and-crop operation in a form
// suitable for the tool server: dimensions, content bounds, and the processed
// image as base64 PNG.
type StripResult struct {
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	SourceWidth      int           `json:"source_width"`
	SourceHeight     int           `json:"source_height"`
	BackgroundPixels int           `json:"background_pixels"`
	Cropped          bool          `json:"cropped"`
	Bounds           *BoundsResult `json:"bounds,omitempty"`
	ImageBase64      string        `json:"image_base64"`
	MimeType         string        `json:"mime_type"`
}

// StripToPNG runs the full transformation (classify, auto-crop, encode) and
// returns the result as base64 PNG. When the image is entirely background the
// canvas keeps its original dimensions and Bounds is nil.
func StripToPNG(img image.Image, tolerance int) (*StripResult, error) {
	return StripToFile(img, tolerance, "")
}

// StripToFile is StripToPNG with an optional side effect: when outputPath is
// non-empty the processed PNG is also written to disk in the same pass.
func StripToFile(img image.Image, tolerance int, outputPath string) (*StripResult, error) {
	stripped, background, err := StripBackground(img, tolerance)
	if err != nil {
		return nil, err
	}

	srcBounds := img.Bounds()
	cropped, contentRect, found := AutoCrop(stripped)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode stripped image: %w", err)
	}

	if outputPath != "" {
		if err := SavePNG(outputPath, cropped); err != nil {
			return nil, err
		}
	}

	result := &StripResult{
		Width:            cropped.Bounds().Dx(),
		Height:           cropped.Bounds().Dy(),
		SourceWidth:      srcBounds.Dx(),
		SourceHeight:     srcBounds.Dy(),
		BackgroundPixels: background,
		Cropped:          found,
		ImageBase64:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:         "image/png",
	}
	if found {
		result.Bounds = newBoundsResult(contentRect)
	}

	return result, nil
}
