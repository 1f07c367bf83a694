// Package tui provides the terminal user interface for tock using the
// Bubbletea framework.
package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/palvaren/tock-cli/internal/domain"
	"github.com/palvaren/tock-cli/internal/render"
)

// tickInterval is the repaint cadence. One synchronous render per tick,
// never overlapping.
const tickInterval = 100 * time.Millisecond

// tickMsg is sent on every repaint tick.
type tickMsg time.Time

// Model is the TUI state: the requested display settings plus the countdown
// when running in timer mode. Rendering itself is stateless; the render
// cache is the only thing carried between frames.
type Model struct {
	cache  *render.Cache
	style  domain.Style
	font   render.Font
	glyphs domain.GlyphSet
	label  string

	countdown *domain.Countdown
	completed bool

	width  int
	height int

	// onComplete is called once when a countdown reaches zero, before the
	// program quits.
	onComplete func(*domain.Countdown)
}

// Options configures a new Model.
type Options struct {
	Style      domain.Style
	Font       render.Font
	Glyphs     domain.GlyphSet
	Label      string
	Countdown  *domain.Countdown
	OnComplete func(*domain.Countdown)
}

// NewModel creates a TUI model. The initial terminal size is queried
// directly so the first frame is centered before the first WindowSizeMsg
// arrives; render.Frame falls back to 80x24 when the query fails.
func NewModel(opts Options) Model {
	m := Model{
		cache:      render.NewCache(),
		style:      opts.Style,
		font:       opts.Font,
		glyphs:     opts.Glyphs,
		label:      opts.Label,
		countdown:  opts.Countdown,
		onComplete: opts.OnComplete,
	}
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		m.width = w
		m.height = h
	}
	return m
}

// Style returns the currently selected style.
func (m Model) Style() domain.Style { return m.style }

// Font returns the currently selected font.
func (m Model) Font() render.Font { return m.font }

// Glyphs returns the currently selected glyph set.
func (m Model) Glyphs() domain.GlyphSet { return m.glyphs }

// Completed reports whether a countdown ran to zero.
func (m Model) Completed() bool { return m.completed }

func doTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the repaint ticker.
func (m Model) Init() tea.Cmd {
	return doTick()
}

// Update handles key presses, window resizes and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		// Ticks stop entirely while paused; the resume key restarts them.
		if m.countdown != nil {
			if m.countdown.IsPaused() {
				return m, nil
			}
			if m.countdown.IsDone() {
				m.completed = true
				if m.onComplete != nil {
					m.onComplete(m.countdown)
				}
				return m, tea.Quit
			}
		}
		return m, doTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "d":
		m.style = domain.StyleDigital
	case "a":
		m.style = domain.StyleAnalog
	case "t":
		m.style = domain.StyleText
	case "f":
		if m.style == domain.StyleDigital {
			m.font = render.NextFont(m.font)
		}
	case "g":
		if m.style == domain.StyleAnalog {
			if m.glyphs == domain.GlyphsExtended {
				m.glyphs = domain.GlyphsStandard
			} else {
				m.glyphs = domain.GlyphsExtended
			}
		}
	case " ":
		if m.countdown != nil {
			wasPaused := m.countdown.IsPaused()
			m.countdown.Toggle()
			if wasPaused {
				return m, doTick()
			}
		}
	case "r":
		if m.countdown != nil {
			wasPaused := m.countdown.IsPaused()
			m.countdown.Reset()
			if wasPaused {
				return m, doTick()
			}
		}
	}
	return m, nil
}

// View renders one full frame.
func (m Model) View() string {
	if m.completed {
		return ""
	}

	point := domain.ClockPoint(time.Now())
	paused := false
	if m.countdown != nil {
		point = domain.TimerPoint(m.countdown.Remaining())
		paused = m.countdown.IsPaused()
	}

	return m.cache.Frame(render.FrameInput{
		Point:  point,
		Style:  m.style,
		Label:  m.label,
		Font:   m.font,
		Paused: paused,
		Glyphs: m.glyphs,
		Width:  m.width,
		Height: m.height,
	})
}
