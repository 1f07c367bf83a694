package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palvaren/tock-cli/internal/domain"
)

// Analog face geometry. The x axis is scaled by two because terminal cells
// are roughly twice as tall as they are wide.
const (
	faceRows   = 45
	faceCols   = 90
	faceRadius = 21
	faceScaleX = 2
)

// faceGlyphs is the character-substitution table for one glyph set. It only
// changes which literals are drawn, never the geometry.
type faceGlyphs struct {
	hourMark   rune
	minuteMark rune
	faintMark  rune
	hourHand   rune
	minuteHand rune
	secondHand rune
	center     rune
}

var (
	standardGlyphs = faceGlyphs{
		hourMark:   '●',
		minuteMark: '◦',
		faintMark:  '·',
		hourHand:   '█',
		minuteHand: '▓',
		secondHand: '░',
		center:     '◉',
	}
	extendedGlyphs = faceGlyphs{
		hourMark:   '✦',
		minuteMark: '✧',
		faintMark:  '⋅',
		hourHand:   '❚',
		minuteHand: '❙',
		secondHand: '❘',
		center:     '✺',
	}
)

// paint selects which style a face cell is rendered with.
type paint uint8

const (
	paintNone paint = iota
	paintDial
	paintHourMark
	paintNumeral
	paintHourHand
	paintMinuteHand
	paintSecondHand
	paintCenter
)

var paintStyles = map[paint]lipgloss.Style{
	paintDial:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	paintHourMark:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
	paintNumeral:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	paintHourHand:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	paintMinuteHand: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	paintSecondHand: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	paintCenter:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
}

type faceCell struct {
	r rune
	p paint
}

type faceGrid [faceRows][faceCols]faceCell

func (g *faceGrid) set(x, y int, r rune, p paint) {
	if x < 0 || x >= faceCols || y < 0 || y >= faceRows {
		return
	}
	g[y][x] = faceCell{r: r, p: p}
}

// RenderAnalog draws the clock face for a time point as a colored 45x90
// character grid. The grid is rebuilt from scratch on every call; hand
// positions change each tick so there is nothing worth caching.
func RenderAnalog(p domain.TimePoint, set domain.GlyphSet) string {
	glyphs := standardGlyphs
	if set == domain.GlyphsExtended {
		glyphs = extendedGlyphs
	}

	hours, minutes, seconds := p.HMS()

	var grid faceGrid
	centerX := faceCols / 2
	centerY := faceRows / 2

	// Dial ring, sampled every two degrees.
	for deg := 0; deg < 360; deg += 2 {
		rad := float64(deg) * math.Pi / 180
		y := centerY + int(math.Round(math.Sin(rad)*faceRadius))
		x := centerX + int(math.Round(math.Cos(rad)*faceRadius*faceScaleX))
		switch {
		case deg%30 == 0:
			grid.set(x, y, glyphs.hourMark, paintHourMark)
		case deg%6 == 0:
			grid.set(x, y, glyphs.minuteMark, paintDial)
		default:
			grid.set(x, y, glyphs.faintMark, paintDial)
		}
	}

	// Numerals 1-12, starting from the 3 o'clock position.
	numeralRadius := float64(faceRadius - 2)
	for i := 0; i < 12; i++ {
		num := (i+2)%12 + 1
		rad := float64(i*30) * math.Pi / 180
		y := centerY + int(math.Round(math.Sin(rad)*numeralRadius))
		x := centerX + int(math.Round(math.Cos(rad)*numeralRadius*faceScaleX))
		text := []rune(strconv.Itoa(num))
		if len(text) == 2 {
			grid.set(x-1, y, text[0], paintNumeral)
			grid.set(x, y, text[1], paintNumeral)
		} else {
			grid.set(x, y, text[0], paintNumeral)
		}
	}

	// Hands. Second first, hour last, so the hour hand wins overlaps.
	drawHand(&grid, centerX, centerY, float64(seconds), 60, 0.9, glyphs.secondHand, paintSecondHand)
	drawHand(&grid, centerX, centerY, float64(minutes), 60, 0.75, glyphs.minuteHand, paintMinuteHand)
	drawHand(&grid, centerX, centerY, float64(hours)+float64(minutes)/60, 12, 0.5, glyphs.hourHand, paintHourHand)

	grid.set(centerX, centerY, glyphs.center, paintCenter)

	return grid.String()
}

// drawHand samples a line from the center outward at half-cell steps.
func drawHand(grid *faceGrid, centerX, centerY int, value, total, lengthRatio float64, r rune, p paint) {
	angle := value/total*2*math.Pi - math.Pi/2
	length := faceRadius * lengthRatio
	for dist := 0.5; dist <= length; dist += 0.5 {
		y := centerY + int(math.Round(math.Sin(angle)*dist))
		x := centerX + int(math.Round(math.Cos(angle)*dist*faceScaleX))
		grid.set(x, y, r, p)
	}
}

// String joins the grid into styled lines, batching runs of equally painted
// cells to keep escape sequences down.
func (g *faceGrid) String() string {
	lines := make([]string, 0, faceRows)
	for y := 0; y < faceRows; y++ {
		var b strings.Builder
		var run []rune
		current := paintNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			if style, ok := paintStyles[current]; ok {
				b.WriteString(style.Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < faceCols; x++ {
			cell := g[y][x]
			r := cell.r
			if r == 0 {
				r = ' '
			}
			if cell.p != current {
				flush()
				current = cell.p
			}
			run = append(run, r)
		}
		flush()
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
