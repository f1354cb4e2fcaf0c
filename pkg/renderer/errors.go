package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidBounces    = errors.New("renderer: bounce limit must be positive")
	ErrInvalidWorkers    = errors.New("renderer: worker count must not be negative")
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
