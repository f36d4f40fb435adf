package processor

import (
	"math"

	errorsGo "github.com/go-errors/errors"

	"github.com/phambaophuc/imgresize/internal/models"
)

const (
	// MaxSide is the largest width or height that is resized. JPEG cannot
	// encode more than this.
	MaxSide = 65535
	// MaxPixels caps width*height so the resampled image stays in memory.
	MaxPixels = 1 << 27
)

// CalculateDimensions derives the target size from the source size and mode.
// Fractional results are truncated toward zero; a zero side is passed through.
// Sides beyond the int32 range are clamped to math.MaxInt32 so CheckDimensions
// can reject them.
func CalculateDimensions(src models.ImageDimensions, mode models.ResizeMode) models.ImageDimensions {
	switch m := mode.(type) {
	case models.Scale:
		return models.ImageDimensions{
			Width:  toSide(float64(src.Width) * m.Factor),
			Height: toSide(float64(src.Height) * m.Factor),
		}
	case models.Explicit:
		return explicitDimensions(src, m)
	default:
		return src
	}
}

// CheckDimensions rejects sizes that cannot be resized and encoded.
func CheckDimensions(size models.ImageDimensions) error {
	if size.Width < 0 || size.Height < 0 || size.Width > MaxSide || size.Height > MaxSide ||
		int64(size.Width)*int64(size.Height) > MaxPixels {
		return errorsGo.WrapPrefix(ErrInvalidSize, "resulting size "+size.String()+" is out of range", 0)
	}
	return nil
}

func explicitDimensions(src models.ImageDimensions, m models.Explicit) models.ImageDimensions {
	var width, height float64
	switch {
	case m.Both():
		width, height = float64(*m.Width), float64(*m.Height)
	case m.Width != nil:
		width = float64(*m.Width)
		height = width / Proportions(src)
	case m.Height != nil:
		height = float64(*m.Height)
		width = height * Proportions(src)
	default:
		return src
	}

	return models.ImageDimensions{Width: toSide(width), Height: toSide(height)}
}

func toSide(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return int(v)
	}
}
