package core

import "errors"

// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// ErrOutOfBounds is returned by Get and Set for positions outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")
