// Package render is the drawing core for tock. It turns a time point into a
// full-screen frame: block-digit art, the analog face, or plain text, centered
// against the current terminal dimensions with a footer line.
package render

import "fmt"

// Font identifies one of the built-in block-digit fonts.
type Font string

const (
	FontBlock Font = "block"
	FontSlim  Font = "slim"
	FontDot   Font = "dot"
)

// Fonts lists the selectable fonts in cycling order.
var Fonts = []Font{FontBlock, FontSlim, FontDot}

// NextFont returns the font after f in cycling order.
func NextFont(f Font) Font {
	for i, candidate := range Fonts {
		if candidate == f {
			return Fonts[(i+1)%len(Fonts)]
		}
	}
	return Fonts[0]
}

// ValidateFont parses a font name.
func ValidateFont(s string) (Font, error) {
	switch Font(s) {
	case FontBlock, FontSlim, FontDot:
		return Font(s), nil
	default:
		return "", fmt.Errorf("unknown font %q (use block, slim, or dot)", s)
	}
}

// fontData holds the glyph rows for one font. Glyphs are rectangles of equal
// row width per glyph, but widths vary across glyphs within a font.
type fontData struct {
	height int
	glyphs map[rune][]string
}

var fonts = map[Font]*fontData{
	FontBlock: &blockFont,
	FontSlim:  &slimFont,
	FontDot:   &dotFont,
}

// renderText renders a literal through the font, one art row per glyph row.
// Characters without a glyph fall back to themselves on every row.
func renderText(font Font, literal string) []string {
	f, ok := fonts[font]
	if !ok {
		f = fonts[FontBlock]
	}
	rows := make([]string, f.height)
	for _, ch := range literal {
		glyph, ok := f.glyphs[ch]
		if !ok {
			for i := range rows {
				rows[i] += string(ch)
			}
			continue
		}
		for i := range rows {
			if rows[i] != "" {
				rows[i] += " "
			}
			if i < len(glyph) {
				rows[i] += glyph[i]
			}
		}
	}
	return rows
}

var blockFont = fontData{
	height: 7,
	glyphs: map[rune][]string{
		'0': {" ██████ ", "██    ██", "██    ██", "██    ██", "██    ██", "██    ██", " ██████ "},
		'1': {"   ██  ", " ████  ", "   ██  ", "   ██  ", "   ██  ", "   ██  ", " ██████"},
		'2': {" ██████ ", "██    ██", "      ██", "  ██████", "██      ", "██      ", "████████"},
		'3': {" ██████ ", "██    ██", "      ██", "  ██████", "      ██", "██    ██", " ██████ "},
		'4': {"██    ██", "██    ██", "██    ██", "████████", "      ██", "      ██", "      ██"},
		'5': {"████████", "██      ", "██      ", "██████  ", "      ██", "██    ██", " ██████ "},
		'6': {" ██████ ", "██      ", "██      ", "██████  ", "██    ██", "██    ██", " ██████ "},
		'7': {"████████", "      ██", "     ██ ", "    ██  ", "   ██   ", "  ██    ", "  ██    "},
		'8': {" ██████ ", "██    ██", "██    ██", " ██████ ", "██    ██", "██    ██", " ██████ "},
		'9': {" ██████ ", "██    ██", "██    ██", " ███████", "      ██", "      ██", " ██████ "},
		':': {"    ", " ██ ", " ██ ", "    ", " ██ ", " ██ ", "    "},
	},
}

var slimFont = fontData{
	height: 3,
	glyphs: map[rune][]string{
		'0': {"█▀▀█", "█  █", "█▄▄█"},
		'1': {" █ ", " █ ", "███"},
		'2': {"▀▀▀█", "█▀▀▀", "█▄▄▄"},
		'3': {"▀▀▀█", " ▀▀█", "▄▄▄█"},
		'4': {"█  █", "▀▀▀█", "   █"},
		'5': {"█▀▀▀", "▀▀▀█", "▄▄▄█"},
		'6': {"█▀▀▀", "█▀▀█", "█▄▄█"},
		'7': {"▀▀▀█", "  █ ", " █  "},
		'8': {"█▀▀█", "█▀▀█", "█▄▄█"},
		'9': {"█▀▀█", "▀▀▀█", "▄▄▄█"},
		':': {"▄", " ", "▀"},
	},
}

var dotFont = fontData{
	height: 5,
	glyphs: map[rune][]string{
		'0': {" ●●● ", "●   ●", "●   ●", "●   ●", " ●●● "},
		'1': {" ●  ", "●●  ", " ●  ", " ●  ", "●●●●"},
		'2': {" ●●● ", "●   ●", "  ●● ", " ●   ", "●●●●●"},
		'3': {" ●●● ", "    ●", "  ●● ", "    ●", " ●●● "},
		'4': {"●   ●", "●   ●", "●●●●●", "    ●", "    ●"},
		'5': {"●●●●●", "●    ", "●●●● ", "    ●", "●●●● "},
		'6': {" ●●● ", "●    ", "●●●● ", "●   ●", " ●●● "},
		'7': {"●●●●●", "   ● ", "  ●  ", " ●   ", " ●   "},
		'8': {" ●●● ", "●   ●", " ●●● ", "●   ●", " ●●● "},
		'9': {" ●●● ", "●   ●", " ●●●●", "    ●", " ●●● "},
		':': {" ", "●", " ", "●", " "},
	},
}
