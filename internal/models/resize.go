package models

import "fmt"

// ImageDimensions is a width/height pair in pixels.
type ImageDimensions struct {
	Width  int
	Height int
}

func (d ImageDimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ResizeMode is one of Identity, Scale or Explicit.
type ResizeMode interface {
	resizeMode()
}

// Identity keeps the source dimensions.
type Identity struct{}

// Scale multiplies both source dimensions by Factor.
type Scale struct {
	Factor float64
}

// Explicit carries the requested width and/or height. At least one is set.
type Explicit struct {
	Width  *int
	Height *int
}

func (Identity) resizeMode() {}
func (Scale) resizeMode()    {}
func (Explicit) resizeMode() {}

// Both reports whether width and height were both requested.
func (e Explicit) Both() bool {
	return e.Width != nil && e.Height != nil
}

type ResizeRequest struct {
	SourcePath string
	Mode       ResizeMode
	// OutputDir always ends with a path separator.
	OutputDir string
	// OutputDefaulted is set when OutputDir was derived from SourcePath.
	OutputDefaulted bool
}
