package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor normalizes uploaded facility photos.
type ImageProcessor struct {
	maxWidth int
	quality  int
}

// NewImageProcessor returns a processor that caps photo width at 1600px and
// re-encodes as JPEG.
func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		maxWidth: 1600,
		quality:  85,
	}
}

// Normalize decodes an uploaded image, downscales it to the maximum width
// when wider (preserving aspect ratio), and re-encodes it as JPEG.
func (p *ImageProcessor) Normalize(content io.Reader) (io.Reader, error) {
	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > p.maxWidth {
		img = imaging.Resize(img, p.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &buf, nil
}

// Thumbnail renders a cover-cropped thumbnail fitting the given bounds as
// JPEG.
func (p *ImageProcessor) Thumbnail(content io.Reader, width, height int) (io.Reader, error) {
	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &buf, nil
}
