package field

import "errors"

var (
	// ErrParameterBounds indicates a parameter value is outside its valid range.
	ErrParameterBounds = errors.New("field: parameter out of valid bounds")

	// ErrBadPalette indicates an empty palette or an unparsable colour.
	ErrBadPalette = errors.New("field: invalid palette")

	// ErrInvalidState indicates a body position or velocity became NaN or Inf.
	ErrInvalidState = errors.New("field: invalid state (NaN or Inf detected)")
)
