package imaging

import "image"

// ContentBounds returns the smallest rectangle enclosing all pixels with
// non-zero alpha. The second return value is false when every pixel is fully
// transparent, in which case the rectangle is the zero value.
func ContentBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// BoundsResult describes a detected content bounding box.
type BoundsResult struct {
	Found  bool `json:"found"`
	X1     int  `json:"x1"`
	Y1     int  `json:"y1"`
	X2     int  `json:"x2"`
	Y2     int  `json:"y2"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
}

// Rect returns the box as an image.Rectangle. Only meaningful when Found.
func (b *BoundsResult) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

func newBoundsResult(rect image.Rectangle) *BoundsResult {
	return &BoundsResult{
		Found:  true,
		X1:     rect.Min.X,
		Y1:     rect.Min.Y,
		X2:     rect.Max.X,
		Y2:     rect.Max.Y,
		Width:  rect.Dx(),
		Height: rect.Dy(),
	}
}

// ContentBoundsReport classifies the image at the given tolerance and reports
// the bounding box of the surviving content. A fully-background image yields
// Found=false.
func ContentBoundsReport(img image.Image, tolerance int) (*BoundsResult, error) {
	stripped, _, err := StripBackground(img, tolerance)
	if err != nil {
		return nil, err
	}

	rect, found := ContentBounds(stripped)
	if !found {
		return &BoundsResult{Found: false}, nil
	}

	return newBoundsResult(rect), nil
}
