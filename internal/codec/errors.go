package codec

import "errors"

// ErrMalformedHeader is returned when the counts preceding the grid are missing or invalid.
var ErrMalformedHeader = errors.New("malformed header")

// ErrMalformedRow is returned when a grid row is missing, has the wrong width, or holds an unknown character.
var ErrMalformedRow = errors.New("malformed grid row")

// ErrInvalidMarkers is returned when the alive and dead markers cannot be told apart.
var ErrInvalidMarkers = errors.New("invalid markers")
