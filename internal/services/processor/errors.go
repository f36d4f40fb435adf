package processor

import (
	"errors"
	"fmt"
)

var (
	ErrConflictingOptions    = errors.New("you can't resize an image with --scale and --width and/or --height simultaneously, pick one method")
	ErrInvalidSize           = errors.New("width, height and scale must be greater than zero")
	ErrInvalidOutputLocation = errors.New("invalid output location")
	ErrMissingSource         = errors.New("path to the original image is required")
	ErrUnsupportedFormat     = errors.New("output format can't be inferred from the file extension")
)

// SourceOpenError reports an original image that could not be opened or decoded.
type SourceOpenError struct {
	Path string
	Err  error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("can't open original image %s: %v", e.Path, e.Err)
}

func (e *SourceOpenError) Unwrap() error { return e.Err }

// SaveError reports a resized image that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("can't save resized image %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
