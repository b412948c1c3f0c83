package match3

import "errors"

// Construction errors. Game-logic outcomes such as a swap that makes no match
// are reported through Outcome values, never as errors.
var (
	ErrInvalidSize    = errors.New("invalid board size")
	ErrInvalidPalette = errors.New("invalid palette")
	ErrCellCount      = errors.New("cell count does not match board size")
	ErrInvalidColor   = errors.New("invalid color")
	ErrNilSource      = errors.New("nil random source")
)
