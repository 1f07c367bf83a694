package domain

import "fmt"

// Style selects how the time is drawn.
type Style string

const (
	// StyleDigital renders large block-art digits.
	StyleDigital Style = "digital"

	// StyleAnalog renders an ASCII clock face.
	StyleAnalog Style = "analog"

	// StyleText renders the plain HH:MM:SS string.
	StyleText Style = "text"
)

// ValidateStyle parses a style name, accepting the single-letter forms used
// by the key bindings.
func ValidateStyle(s string) (Style, error) {
	switch s {
	case "digital", "d":
		return StyleDigital, nil
	case "analog", "a":
		return StyleAnalog, nil
	case "text", "t":
		return StyleText, nil
	default:
		return "", fmt.Errorf("unknown style %q (use digital, analog, or text)", s)
	}
}

// GlyphSet selects the literal characters used for the analog face's dial
// markers, hands, and center point. It never changes geometry.
type GlyphSet int

const (
	// GlyphsStandard uses plain ASCII and block-element characters.
	GlyphsStandard GlyphSet = iota

	// GlyphsExtended uses an alternate pictographic character set.
	GlyphsExtended
)

// String returns the ON/OFF label shown in the footer hint.
func (g GlyphSet) String() string {
	if g == GlyphsExtended {
		return "ON"
	}
	return "OFF"
}
