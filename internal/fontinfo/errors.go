package fontinfo

import "errors"

// Sentinel errors for fontinfo package.
var (
	// ErrEmptyFontData is returned when a font file is empty.
	ErrEmptyFontData = errors.New("fontinfo: empty font data")

	// ErrNameNotFound is returned when the name table has no record for the
	// requested name ID.
	ErrNameNotFound = errors.New("fontinfo: name record not found")

	// ErrNoNameTable is returned when the font has no name table.
	ErrNoNameTable = errors.New("fontinfo: font has no name table")

	// ErrFontIndex is returned when a collection has no font at the
	// requested index.
	ErrFontIndex = errors.New("fontinfo: font index out of range")

	// ErrUnknownParser is returned when no parser is registered under a name.
	ErrUnknownParser = errors.New("fontinfo: unknown parser")
)
