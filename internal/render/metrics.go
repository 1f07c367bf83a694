package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FontMetrics is the fixed pixel-grid footprint for one font: the widest
// rendered two-digit pair, the separator width, and the tallest rendering.
// Width is pinned to the worst case across "00".."59" so the display never
// jitters as digits change.
type FontMetrics struct {
	BlockWidth int
	SepWidth   int
	Height     int
}

// digitalWidth is the on-screen width of a full HH:MM:SS rendering.
func (m FontMetrics) digitalWidth() int {
	return 3*m.BlockWidth + 2*m.SepWidth
}

type blockKey struct {
	font    Font
	literal string
}

// Cache memoizes font metrics and rendered glyph blocks. Rendering block art
// for arbitrary text is the expensive step; it happens once per (font,
// literal) pair and the result is reused on every subsequent tick. The zero
// value is not usable; construct with NewCache.
type Cache struct {
	metrics map[Font]FontMetrics
	blocks  map[blockKey][]string
}

// NewCache creates an empty render cache. One cache is meant to live for the
// process and be shared by every frame.
func NewCache() *Cache {
	return &Cache{
		metrics: make(map[Font]FontMetrics),
		blocks:  make(map[blockKey][]string),
	}
}

// MetricsFor returns the metrics for a font, measuring every reachable
// two-digit pair plus the separator on first use.
func (c *Cache) MetricsFor(font Font) FontMetrics {
	if m, ok := c.metrics[font]; ok {
		return m
	}

	var m FontMetrics
	for n := 0; n < 60; n++ {
		rows := renderText(font, fmt.Sprintf("%02d", n))
		if h := len(rows); h > m.Height {
			m.Height = h
		}
		for _, row := range rows {
			if w := utf8.RuneCountInString(row); w > m.BlockWidth {
				m.BlockWidth = w
			}
		}
	}
	sep := renderText(font, ":")
	if h := len(sep); h > m.Height {
		m.Height = h
	}
	for _, row := range sep {
		if w := utf8.RuneCountInString(row); w > m.SepWidth {
			m.SepWidth = w
		}
	}

	c.metrics[font] = m
	return m
}

// block returns the glyph block for a literal, padded to the given width and
// height. Each row is centered with the extra column going right; vertical
// slack goes below.
func (c *Cache) block(font Font, literal string, width, height int) []string {
	key := blockKey{font: font, literal: literal}
	if b, ok := c.blocks[key]; ok {
		return b
	}

	rows := renderText(font, literal)
	padded := make([]string, 0, height)
	for _, row := range rows {
		w := utf8.RuneCountInString(row)
		pad := width - w
		if pad < 0 {
			pad = 0
		}
		left := pad / 2
		padded = append(padded, strings.Repeat(" ", left)+row+strings.Repeat(" ", pad-left))
	}
	blank := strings.Repeat(" ", width)
	for len(padded) < height {
		padded = append(padded, blank)
	}

	c.blocks[key] = padded
	return padded
}
