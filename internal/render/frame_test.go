package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/palvaren/tock-cli/internal/domain"
)

func clockInput(style domain.Style) FrameInput {
	return FrameInput{
		Point:  domain.ClockPoint(time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)),
		Style:  style,
		Font:   FontBlock,
		Width:  120,
		Height: 50,
	}
}

func TestFrame_TextContainsTime(t *testing.T) {
	cache := NewCache()

	out := cache.Frame(clockInput(domain.StyleText))
	if !strings.Contains(out, "10:00:00") {
		t.Error("text frame missing the formatted time")
	}
}

func TestFrame_TimerPausedWithLabel(t *testing.T) {
	cache := NewCache()

	out := cache.Frame(FrameInput{
		Point:  domain.TimerPoint(65 * time.Second),
		Style:  domain.StyleText,
		Label:  "My Timer",
		Paused: true,
		Font:   FontBlock,
		Width:  80,
		Height: 24,
	})

	for _, want := range []string{"00:01:05", "PAUSED", "My Timer"} {
		if !strings.Contains(out, want) {
			t.Errorf("paused timer frame missing %q", want)
		}
	}
}

func TestFrame_FillsTerminalHeight(t *testing.T) {
	cache := NewCache()

	tests := []struct {
		name          string
		style         domain.Style
		width, height int
	}{
		{"text small", domain.StyleText, 80, 24},
		{"digital", domain.StyleDigital, 120, 40},
		{"analog", domain.StyleAnalog, 100, 50},
		{"downgraded", domain.StyleAnalog, 40, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := clockInput(tt.style)
			in.Width = tt.width
			in.Height = tt.height
			out := cache.Frame(in)

			// Footer sits on the last row with no trailing newline.
			if got := strings.Count(out, "\n"); got != tt.height-1 {
				t.Errorf("frame has %d newlines, want %d", got, tt.height-1)
			}
		})
	}
}

func TestFrame_StyleDowngrade(t *testing.T) {
	cache := NewCache()

	for _, style := range []domain.Style{domain.StyleDigital, domain.StyleAnalog} {
		t.Run(string(style), func(t *testing.T) {
			in := clockInput(style)
			in.Width = 40
			in.Height = 20
			out := cache.Frame(in)

			if !strings.Contains(out, "Terminal too small") {
				t.Error("downgraded frame missing the warning line")
			}
			if !strings.Contains(out, "  10:00:00  ") {
				t.Error("downgraded frame missing the text body")
			}
			if strings.Contains(out, "██") {
				t.Error("downgraded frame still contains block art")
			}
		})
	}
}

func TestFrame_DigitalBodyNamesFont(t *testing.T) {
	cache := NewCache()

	out := cache.Frame(clockInput(domain.StyleDigital))
	if !strings.Contains(out, "Font: block") {
		t.Error("digital frame missing the font line")
	}
}

func TestFrame_Footer(t *testing.T) {
	cache := NewCache()
	base := "q: Quit | d: Digital | a: Analog | t: Text"

	tests := []struct {
		name    string
		in      FrameInput
		want    []string
		exclude []string
	}{
		{
			name: "timer digital",
			in: FrameInput{
				Point: domain.TimerPoint(time.Minute),
				Style: domain.StyleDigital,
				Font:  FontBlock, Width: 120, Height: 40,
			},
			want:    []string{base, "f: Cycle Font", "r: Reset | space: Start/Pause"},
			exclude: []string{"g: Glyphs"},
		},
		{
			name: "clock analog",
			in: FrameInput{
				Point: domain.ClockPoint(time.Now()),
				Style: domain.StyleAnalog,
				Font:  FontBlock, Width: 120, Height: 50,
			},
			want:    []string{base, "g: Glyphs (OFF)"},
			exclude: []string{"r: Reset", "f: Cycle Font"},
		},
		{
			name: "clock analog extended glyphs",
			in: FrameInput{
				Point:  domain.ClockPoint(time.Now()),
				Style:  domain.StyleAnalog,
				Glyphs: domain.GlyphsExtended,
				Font:   FontBlock, Width: 120, Height: 50,
			},
			want: []string{"g: Glyphs (ON)"},
		},
		{
			name: "downgraded keeps requested style hints",
			in: FrameInput{
				Point: domain.ClockPoint(time.Now()),
				Style: domain.StyleDigital,
				Font:  FontBlock, Width: 40, Height: 20,
			},
			want: []string{"f: Cycle Font"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := cache.Frame(tt.in)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("footer missing %q", want)
				}
			}
			for _, ex := range tt.exclude {
				if strings.Contains(out, ex) {
					t.Errorf("footer unexpectedly contains %q", ex)
				}
			}
		})
	}
}

func TestFrame_BlockLeftEdgeStable(t *testing.T) {
	cache := NewCache()

	in := clockInput(domain.StyleText)
	in.Label = "a much wider label than the clock text"
	out := cache.Frame(in)

	var contentLines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			contentLines = append(contentLines, line)
		}
	}
	if len(contentLines) < 2 {
		t.Fatal("expected label and body lines")
	}

	// The shorter time line centers inside the label's block, so it must
	// start further right than the label.
	labelStart := indent(contentLines[0])
	timeStart := indent(contentLines[1])
	if timeStart <= labelStart {
		t.Errorf("time line indent %d, want greater than label indent %d", timeStart, labelStart)
	}
}

func indent(line string) int {
	return lipgloss.Width(line) - lipgloss.Width(strings.TrimLeft(line, " "))
}
