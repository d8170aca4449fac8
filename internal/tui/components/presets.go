package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/airwave-cli/airwave/internal/core"
	"github.com/airwave-cli/airwave/internal/tui/styles"
)

// Presets displays a receiver's stored stations
type Presets struct {
	offset   int
	selected int
}

// NewPresets creates a new Presets component
func NewPresets() *Presets {
	return &Presets{}
}

// SelectNext moves the cursor down
func (p *Presets) SelectNext(count int) {
	if p.selected < count-1 {
		p.selected++
	}
}

// SelectPrev moves the cursor up
func (p *Presets) SelectPrev() {
	if p.selected > 0 {
		p.selected--
	}
}

// Selected returns the selected index
func (p *Presets) Selected() int {
	return p.selected
}

// Reset moves the cursor back to the top, for when the catalog changes.
func (p *Presets) Reset() {
	p.selected = 0
	p.offset = 0
}

// Render renders the presets panel
func (p *Presets) Render(presets []core.Preset, width, height int, focused bool) string {
	title := styles.PanelTitle("Presets", focused)

	var content string
	if len(presets) == 0 {
		content = styles.Muted.Render("No presets")
	} else {
		content = p.renderPresets(presets, width-4, height-4, focused)
	}

	panel := styles.Panel("", focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (p *Presets) renderPresets(presets []core.Preset, width, maxLines int, focused bool) string {
	if p.selected >= len(presets) {
		p.selected = len(presets) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}

	visibleCount := maxLines - 1 // Leave room for "more" indicator
	if visibleCount < 1 {
		visibleCount = 1
	}

	// Keep the cursor on screen
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+visibleCount {
		p.offset = p.selected - visibleCount + 1
	}

	start := p.offset
	end := start + visibleCount
	if end > len(presets) {
		end = len(presets)
	}

	lines := make([]string, 0, end-start+1)

	for i := start; i < end; i++ {
		preset := presets[i]

		num := fmt.Sprintf("%3s.", preset.RemoteID)
		name := truncate(preset.Name, width-8)

		var line string
		if i == p.selected && focused {
			line = styles.Highlight.Render(fmt.Sprintf("%s ▸ %s", num, name))
		} else {
			line = fmt.Sprintf("%s   %s", styles.Dim.Render(num), name)
		}

		lines = append(lines, line)
	}

	if end < len(presets) {
		more := styles.Dim.Render(fmt.Sprintf("     ... and %d more", len(presets)-end))
		lines = append(lines, more)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
