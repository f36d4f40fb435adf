package processor

import (
	"github.com/phambaophuc/imgresize/internal/models"
)

// Proportions is width divided by height.
func Proportions(size models.ImageDimensions) float64 {
	return float64(size.Width) / float64(size.Height)
}

// ProportionsBroken reports whether mode asks for a width/height pair whose
// ratio differs from the source. Only an explicit pair can break proportions;
// the comparison is exact.
func ProportionsBroken(src models.ImageDimensions, mode models.ResizeMode) bool {
	m, ok := mode.(models.Explicit)
	if !ok || !m.Both() {
		return false
	}

	requested := models.ImageDimensions{Width: *m.Width, Height: *m.Height}
	return Proportions(src) != Proportions(requested)
}
