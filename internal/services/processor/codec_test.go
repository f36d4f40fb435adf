package processor

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phambaophuc/imgresize/internal/config"
	"github.com/phambaophuc/imgresize/internal/models"
)

func TestImagingCodecResize(t *testing.T) {
	c := NewImagingCodec(config.ImageConfig{JPEGQuality: 90})
	src := imaging.New(100, 50, image.Black)

	got := c.Resize(src, models.ImageDimensions{Width: 30, Height: 40})
	assert.Equal(t, image.Rect(0, 0, 30, 40), got.Bounds())
}

func TestImagingCodecResizeZeroSide(t *testing.T) {
	c := &ImagingCodec{}
	src := imaging.New(100, 50, image.Black)

	got := c.Resize(src, models.ImageDimensions{Width: 10, Height: 0})
	assert.Equal(t, 10, got.Bounds().Dx())
	assert.Equal(t, 0, got.Bounds().Dy())
}

func TestImagingCodecSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	c := &ImagingCodec{JPEGQuality: 75}

	for _, name := range []string{"a.png", "b.jpg", "c.jpeg", "d.gif", "e.bmp", "f.tif"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, c.Save(imaging.New(8, 4, image.White), path))

			img, err := c.Open(path)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestImagingCodecSaveUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	c := &ImagingCodec{}

	err := c.Save(imaging.New(8, 4, image.White), filepath.Join(dir, "photo__8x4.webp"))
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImagingCodecSaveEncodeFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	c := &ImagingCodec{}

	// png refuses to encode an empty image.
	err := c.Save(image.NewNRGBA(image.Rect(0, 0, 0, 5)), filepath.Join(dir, "photo__0x5.png"))
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImagingCodecQuality(t *testing.T) {
	assert.Equal(t, config.DefaultJPEGQuality, (&ImagingCodec{}).quality())
	assert.Equal(t, 100, (&ImagingCodec{JPEGQuality: 400}).quality())
	assert.Equal(t, 60, (&ImagingCodec{JPEGQuality: 60}).quality())
}

func TestImagingCodecCheckFormat(t *testing.T) {
	c := &ImagingCodec{}

	for _, name := range []string{"photo__1x1.png", "photo__1x1.JPG", "photo__1x1.tiff", "/out/photo__1x1.gif"} {
		assert.NoError(t, c.CheckFormat(name), name)
	}
	for _, name := range []string{"photo__1x1", "photo__1x1.webp", "archive__1x1.tar.gz"} {
		assert.Error(t, c.CheckFormat(name), name)
	}
}
