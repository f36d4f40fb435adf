package processor

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	errorsGo "github.com/go-errors/errors"

	"github.com/phambaophuc/imgresize/internal/models"
)

// Options are the raw command line inputs. Nil pointers mean "not given".
type Options struct {
	SourcePath string
	Width      *int
	Height     *int
	Scale      *float64
	OutputDir  string
}

// ResolveRequest validates opts and turns them into a ResizeRequest. Option
// conflicts are reported before sizes, and sizes before the output location.
// No image file is touched.
func ResolveRequest(opts Options) (*models.ResizeRequest, error) {
	if opts.SourcePath == "" {
		return nil, errorsGo.New(ErrMissingSource)
	}

	mode, err := ModeFromOptions(opts.Width, opts.Height, opts.Scale)
	if err != nil {
		return nil, err
	}

	outputDir, defaulted, err := resolveOutputDir(opts.SourcePath, opts.OutputDir)
	if err != nil {
		return nil, err
	}

	return &models.ResizeRequest{
		SourcePath:      opts.SourcePath,
		Mode:            mode,
		OutputDir:       outputDir,
		OutputDefaulted: defaulted,
	}, nil
}

// ModeFromOptions maps the optional width/height/scale triple to a ResizeMode.
func ModeFromOptions(width, height *int, scale *float64) (models.ResizeMode, error) {
	if scale != nil && (width != nil || height != nil) {
		return nil, errorsGo.New(ErrConflictingOptions)
	}
	if (width != nil && *width <= 0) || (height != nil && *height <= 0) ||
		(scale != nil && (*scale <= 0 || math.IsNaN(*scale) || math.IsInf(*scale, 0))) {
		return nil, errorsGo.New(ErrInvalidSize)
	}

	switch {
	case scale != nil:
		return models.Scale{Factor: *scale}, nil
	case width != nil || height != nil:
		return models.Explicit{Width: width, Height: height}, nil
	default:
		return models.Identity{}, nil
	}
}

func resolveOutputDir(sourcePath, outputDir string) (string, bool, error) {
	defaulted := outputDir == ""
	if defaulted {
		outputDir = filepath.Dir(sourcePath)
	} else if info, err := os.Stat(outputDir); err != nil || !info.IsDir() {
		return "", false, errorsGo.WrapPrefix(ErrInvalidOutputLocation, outputDir, 0)
	}

	return withTrailingSeparator(outputDir), defaulted, nil
}

func withTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + string(filepath.Separator)
}
