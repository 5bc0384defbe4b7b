package processor

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Placeholder dimensions reported for locally stored images when no decode
// is performed.
const (
	PlaceholderWidth  = 800
	PlaceholderHeight = 600
)

// ImageDimensions decodes the image at path and returns its size, honouring
// EXIF orientation.
func ImageDimensions(path string) (int, int, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
