package render

import "strings"

// RenderDigital composes a HH:MM:SS string into one aligned block of large
// digit art. Every component is padded to the font's fixed metrics so the
// block keeps the same footprint from frame to frame.
func (c *Cache) RenderDigital(timeText string, font Font) string {
	m := c.MetricsFor(font)

	parts := strings.Split(timeText, ":")
	if len(parts) != 3 {
		return timeText
	}

	sep := c.block(font, ":", m.SepWidth, m.Height)
	blocks := [][]string{
		c.block(font, parts[0], m.BlockWidth, m.Height),
		sep,
		c.block(font, parts[1], m.BlockWidth, m.Height),
		sep,
		c.block(font, parts[2], m.BlockWidth, m.Height),
	}

	lines := make([]string, m.Height)
	for row := 0; row < m.Height; row++ {
		var b strings.Builder
		for _, block := range blocks {
			b.WriteString(block[row])
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
