package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/palvaren/tock-cli/internal/domain"
)

func analogPoint() domain.TimePoint {
	return domain.ClockPoint(time.Date(2023, 1, 1, 10, 9, 30, 0, time.UTC))
}

func TestRenderAnalog_Dimensions(t *testing.T) {
	out := RenderAnalog(analogPoint(), domain.GlyphsStandard)
	lines := strings.Split(out, "\n")

	if len(lines) != faceRows {
		t.Fatalf("face has %d rows, want %d", len(lines), faceRows)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != faceCols {
			t.Errorf("row %d visible width = %d, want %d", i, w, faceCols)
		}
	}
}

func TestRenderAnalog_Deterministic(t *testing.T) {
	first := RenderAnalog(analogPoint(), domain.GlyphsStandard)
	second := RenderAnalog(analogPoint(), domain.GlyphsStandard)

	if first != second {
		t.Error("identical inputs produced different faces")
	}
}

func TestRenderAnalog_ContainsNumerals(t *testing.T) {
	out := RenderAnalog(analogPoint(), domain.GlyphsStandard)

	for _, numeral := range []string{"12", "3", "6", "9"} {
		if !strings.Contains(out, numeral) {
			t.Errorf("face missing numeral %q", numeral)
		}
	}
}

func TestRenderAnalog_GlyphSetSubstitutesOnly(t *testing.T) {
	standard := RenderAnalog(analogPoint(), domain.GlyphsStandard)
	extended := RenderAnalog(analogPoint(), domain.GlyphsExtended)

	if standard == extended {
		t.Error("glyph sets produced identical faces")
	}

	stdLines := strings.Split(standard, "\n")
	extLines := strings.Split(extended, "\n")
	if len(stdLines) != len(extLines) {
		t.Fatalf("glyph set changed row count: %d vs %d", len(stdLines), len(extLines))
	}
	for i := range stdLines {
		if lipgloss.Width(stdLines[i]) != lipgloss.Width(extLines[i]) {
			t.Errorf("row %d width differs across glyph sets", i)
		}
	}
}

func TestRenderAnalog_TimerMode(t *testing.T) {
	// 13h02m remaining maps to hour hand between 1 and 2.
	out := RenderAnalog(domain.TimerPoint(13*time.Hour+2*time.Minute), domain.GlyphsStandard)
	lines := strings.Split(out, "\n")

	if len(lines) != faceRows {
		t.Fatalf("timer face has %d rows, want %d", len(lines), faceRows)
	}
}
