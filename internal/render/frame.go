package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palvaren/tock-cli/internal/domain"
)

// Fallback terminal size used before the first window-size report.
const (
	DefaultCols = 80
	DefaultRows = 24
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AAAAAA"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFAA00"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	digitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fontStyle   = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6"))
)

// FrameInput is everything a single repaint depends on. The layout engine is
// a pure function of this value; all mutable state lives with the caller.
type FrameInput struct {
	Point  domain.TimePoint
	Style  domain.Style
	Label  string
	Font   Font
	Paused bool
	Glyphs domain.GlyphSet
	Width  int
	Height int
}

// Frame assembles one full-screen frame: the content block (label, pause
// banner, body) centered against the terminal, with bottom padding and a
// footer line. The requested style falls back to text when the terminal is
// too small for it; the footer keeps the requested style's hints.
func (c *Cache) Frame(in FrameInput) string {
	if in.Width <= 0 {
		in.Width = DefaultCols
	}
	if in.Height <= 0 {
		in.Height = DefaultRows
	}

	timeText := in.Point.Text()

	var content []string
	if in.Label != "" {
		content = append(content, labelStyle.Render(in.Label))
	}
	if in.Paused {
		content = append(content, pausedStyle.Render("PAUSED"))
	}

	effective := in.Style
	if !c.fits(in.Style, in.Font, in.Width, in.Height) {
		content = append(content, warnStyle.Render(fmt.Sprintf("Terminal too small for %s style", in.Style)))
		effective = domain.StyleText
	}

	switch effective {
	case domain.StyleDigital:
		for _, line := range strings.Split(c.RenderDigital(timeText, in.Font), "\n") {
			content = append(content, digitStyle.Render(line))
		}
		content = append(content, fontStyle.Render(fmt.Sprintf("Font: %s", in.Font)))
	case domain.StyleAnalog:
		content = append(content, strings.Split(RenderAnalog(in.Point, in.Glyphs), "\n")...)
		content = append(content, timeText)
	default:
		content = append(content, "  "+timeText+"  ")
	}

	maxWidth := 0
	for _, line := range content {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	// One row is reserved for the footer. The block's left edge is computed
	// once from the widest line; shorter lines center inside the block, not
	// the full terminal, so the edge stays put as digits change width.
	topPad := (in.Height - 1 - len(content)) / 2
	if topPad < 0 {
		topPad = 0
	}
	blockLeftPad := (in.Width - maxWidth) / 2

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", topPad))
	for _, line := range content {
		relativePad := (maxWidth - lipgloss.Width(line)) / 2
		if pad := blockLeftPad + relativePad; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	bottomPad := in.Height - 1 - (topPad + len(content))
	if bottomPad > 0 {
		b.WriteString(strings.Repeat("\n", bottomPad))
	}

	footer := c.footer(in)
	if pad := (in.Width - lipgloss.Width(footer)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(footer)

	return b.String()
}

// fits reports whether the requested style fits the terminal. Text always
// fits.
func (c *Cache) fits(style domain.Style, font Font, width, height int) bool {
	switch style {
	case domain.StyleDigital:
		m := c.MetricsFor(font)
		return width >= m.digitalWidth() && height >= m.Height+2
	case domain.StyleAnalog:
		return width >= faceCols && height >= faceRows
	default:
		return true
	}
}

// footer builds the key-hint line. Hints follow the requested style even
// when the body fell back to text.
func (c *Cache) footer(in FrameInput) string {
	hints := "q: Quit | d: Digital | a: Analog | t: Text"
	switch in.Style {
	case domain.StyleDigital:
		hints += " | f: Cycle Font"
	case domain.StyleAnalog:
		hints += fmt.Sprintf(" | g: Glyphs (%s)", in.Glyphs)
	}
	if in.Point.IsTimer {
		hints += " | r: Reset | space: Start/Pause"
	}
	return footerStyle.Render(hints)
}
