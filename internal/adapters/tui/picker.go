package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerItem represents one option in the picker.
type PickerItem struct {
	Label string
	Desc  string
}

// PickerResult holds the outcome of a picker interaction.
type PickerResult struct {
	Index   int
	Aborted bool
}

type pickerModel struct {
	title   string
	items   []PickerItem
	cursor  int
	chosen  bool
	aborted bool
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B7280"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7C6FE0")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  "+m.title) + "\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			arrow := activeStyle.Render("▸")
			line := activeStyle.Render(fmt.Sprintf(" %-10s %s", item.Label, item.Desc))
			b.WriteString(fmt.Sprintf("  %s%s\n", arrow, line))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %-10s %s", item.Label, item.Desc)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ↑/↓ navigate · enter select · esc skip") + "\n")

	return b.String()
}

// RunPicker runs an arrow-key picker and returns the chosen index.
func RunPicker(title string, items []PickerItem) PickerResult {
	m := pickerModel{title: title, items: items}
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}
	fm, ok := final.(pickerModel)
	if !ok || fm.aborted || !fm.chosen {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Index: fm.cursor}
}
