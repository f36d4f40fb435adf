package processor

import (
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/phambaophuc/imgresize/internal/config"
	"github.com/phambaophuc/imgresize/internal/models"
	"github.com/phambaophuc/imgresize/pkg/utils"
)

// Codec opens, resamples and saves raster images. CheckFormat reports whether
// Save can encode to path, without touching the file system.
type Codec interface {
	CheckFormat(path string) error
	Open(path string) (image.Image, error)
	Resize(img image.Image, size models.ImageDimensions) image.Image
	Save(img image.Image, path string) error
}

// ImagingCodec is a Codec backed by github.com/disintegration/imaging.
type ImagingCodec struct {
	JPEGQuality int
	AutoOrient  bool
}

var _ Codec = (*ImagingCodec)(nil)

func NewImagingCodec(cfg config.ImageConfig) *ImagingCodec {
	return &ImagingCodec{
		JPEGQuality: cfg.JPEGQuality,
		AutoOrient:  cfg.AutoOrient,
	}
}

func (c *ImagingCodec) CheckFormat(path string) error {
	_, err := imaging.FormatFromFilename(path)
	return err
}

func (c *ImagingCodec) Open(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(c.AutoOrient))
}

// Resize resamples img with Lanczos. A size with a zero side yields an empty
// image of exactly that size instead of letting imaging fill in the missing side.
func (c *ImagingCodec) Resize(img image.Image, size models.ImageDimensions) image.Image {
	if size.Width <= 0 || size.Height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, max(0, size.Width), max(0, size.Height)))
	}
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos)
}

// Save encodes img in the format implied by the extension of path. The data is
// staged in a temp file next to path and renamed into place, so a failed
// encode never leaves a partial file behind.
func (c *ImagingCodec) Save(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return err
	}

	tmp := utils.TempFilename(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(c.quality())); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (c *ImagingCodec) quality() int {
	if c.JPEGQuality <= 0 {
		return config.DefaultJPEGQuality
	}
	return config.ClampQuality(c.JPEGQuality)
}
