package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/phambaophuc/imgresize/internal/models"
)

// SizePostfix returns the "__<w>x<h>" marker added to output names.
func SizePostfix(size models.ImageDimensions) string {
	return fmt.Sprintf("__%dx%d", size.Width, size.Height)
}

// OutputFilename builds the output name from the base name of sourcePath by
// inserting the size postfix before the first dot. A name without a dot gets
// the postfix appended and therefore has no extension.
//
//	photo.jpg      -> photo__200x100.jpg
//	archive.tar.gz -> archive__200x100.tar.gz
//	photo          -> photo__200x100
func OutputFilename(sourcePath string, size models.ImageDimensions) string {
	name := filepath.Base(sourcePath)
	postfix := SizePostfix(size)

	if !strings.Contains(name, ".") {
		return name + postfix
	}
	return strings.Replace(name, ".", postfix+".", 1)
}

// TempFilename returns a hidden, unique sibling of path used to stage a write
// before it is renamed into place.
func TempFilename(path string) string {
	dir, name := filepath.Split(path)
	id := uuid.New().String()[:8]

	return fmt.Sprintf("%s.%s.%s.tmp", dir, name, id)
}
