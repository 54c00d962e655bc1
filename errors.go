package tesseract

import "errors"

// Sentinel errors for the tesseract package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("tesseract: invalid move notation")
	ErrInvalidView     = errors.New("tesseract: invalid view")
	ErrInvalidDrawList = errors.New("tesseract: invalid drawing list")

	// Construction errors. These indicate a defect in the geometry or
	// action tables and never occur at steady state.
	ErrGeometry = errors.New("tesseract: inconsistent facelet geometry")
)
