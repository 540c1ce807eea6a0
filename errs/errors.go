// Package errs defines the sentinel error values shared across the serseg module.
//
// Callers can match these with errors.Is even when they arrive wrapped with
// additional context about the offending sector keys, offsets, or values.
package errs

import "errors"

// Layout errors reported while sizing sectors or emitting fields.
var (
	// ErrLayoutUnderflow indicates the current write position precedes the fill
	// origin, so a fill size cannot be computed.
	ErrLayoutUnderflow = errors.New("write position precedes fill origin")

	// ErrLayoutOverflow indicates a fill target offset that has already been
	// passed, or a pointer value that exceeds its declared byte width.
	ErrLayoutOverflow = errors.New("layout target exceeded")

	// ErrMissingSector indicates a pointer or fill references a sector key that
	// is absent from the builder, or a fill origin that has not been laid out yet.
	ErrMissingSector = errors.New("sector not found")

	// ErrOrderingViolation indicates a pointer whose target sector starts before
	// its origin sector. Reverse pointers are not supported.
	ErrOrderingViolation = errors.New("origin sector is ahead of target sector")

	// ErrIndexOutOfRange indicates a pointer field index that is not covered by
	// the target sector. Index 0 is always valid, even for an empty sector.
	ErrIndexOutOfRange = errors.New("field index out of range")

	// ErrDuplicateSector indicates the same sector key was seen twice while the
	// tracker was being populated.
	ErrDuplicateSector = errors.New("sector already tracked")
)

// Field value errors.
var (
	// ErrUnsupportedWidth indicates a dynamic pointer width outside 1..4 bytes.
	ErrUnsupportedWidth = errors.New("unsupported pointer width")

	// ErrValueOutOfRange indicates an integer literal that does not fit its
	// declared width, such as a u24 value above 0xFFFFFF.
	ErrValueOutOfRange = errors.New("value out of range for field width")

	// ErrExternalSizeMismatch indicates an external file whose actual size
	// differs from the size declared at build time.
	ErrExternalSizeMismatch = errors.New("external file size mismatch")
)

// Asset definition errors reported by the fontpack and sprite builders.
var (
	// ErrInvalidDefinition indicates a definition file that decoded but fails
	// semantic validation.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrInvalidGlyphIndex indicates a glyph index that is neither an integer in
	// 0..255 nor a single ASCII character.
	ErrInvalidGlyphIndex = errors.New("invalid glyph index")

	// ErrImageTooLarge indicates an image dimension that does not fit the
	// 8-bit size fields of the asset formats.
	ErrImageTooLarge = errors.New("image dimension exceeds 8-bit limit")
)
