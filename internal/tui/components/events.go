package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/airwave-cli/airwave/internal/tui/styles"
)

// EventEntry is one line in the activity log.
type EventEntry struct {
	At   time.Time
	Text string
}

// Events displays recent playback activity across receivers
type Events struct {
	offset int
}

// NewEvents creates a new Events component
func NewEvents() *Events {
	return &Events{}
}

// ScrollDown scrolls the log down
func (e *Events) ScrollDown() {
	e.offset++
}

// ScrollUp scrolls the log up
func (e *Events) ScrollUp() {
	if e.offset > 0 {
		e.offset--
	}
}

// Render renders the events panel
func (e *Events) Render(entries []EventEntry, width, height int, focused bool) string {
	title := styles.PanelTitle("Activity", focused)

	var content string
	if len(entries) == 0 {
		content = styles.Muted.Render("No activity yet")
	} else {
		content = e.renderEntries(entries, width-4, height-4)
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

func (e *Events) renderEntries(entries []EventEntry, width, maxLines int) string {
	if e.offset >= len(entries) {
		e.offset = 0
	}

	start := e.offset
	end := start + maxLines
	if end > len(entries) {
		end = len(entries)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		entry := entries[i]
		ts := styles.Dim.Render(entry.At.Format("15:04:05"))
		lines = append(lines, ts+" "+truncate(entry.Text, width-10))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
