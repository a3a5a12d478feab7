package carpet

import "fmt"

// Printable ASCII bounds accepted as glyphs.
const (
	minGlyph = 33  // '!'
	maxGlyph = 126 // '~'
)

// IsForbidden reports whether c cannot be used as a carpet glyph.
// Anything outside printable ASCII 33..126 is forbidden, which already
// covers space, tab, newline, carriage return, NUL and DEL.
func IsForbidden(c byte) bool {
	return c < minGlyph || c > maxGlyph
}

// ValidateSymbol returns ErrInvalidCharacter, annotated with the code point,
// when c is forbidden.
func ValidateSymbol(c byte) error {
	if IsForbidden(c) {
		return fmt.Errorf("glyph %#02x: %w", c, ErrInvalidCharacter)
	}

	return nil
}
