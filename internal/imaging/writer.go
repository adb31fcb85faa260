package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// SavePNG writes the image to path as PNG, preserving per-pixel alpha.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
