package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/airwave-cli/airwave/internal/core"
	"github.com/airwave-cli/airwave/internal/tui/styles"
)

// ReceiverRow pairs a configured receiver with its last known state.
type ReceiverRow struct {
	Receiver core.Receiver
	Online   bool
	State    *core.PlaybackState
}

// Receivers displays configured receivers and their reachability
type Receivers struct {
	selected int
}

// NewReceivers creates a new Receivers component
func NewReceivers() *Receivers {
	return &Receivers{selected: 0}
}

// SelectNext selects the next receiver
func (r *Receivers) SelectNext(count int) {
	if r.selected < count-1 {
		r.selected++
	}
}

// SelectPrev selects the previous receiver
func (r *Receivers) SelectPrev() {
	if r.selected > 0 {
		r.selected--
	}
}

// Selected returns the selected receiver index
func (r *Receivers) Selected() int {
	return r.selected
}

// Render renders the receivers panel
func (r *Receivers) Render(rows []ReceiverRow, width, height int, focused bool) string {
	title := styles.PanelTitle("Receivers", focused)

	var content string
	if len(rows) == 0 {
		content = styles.Muted.Render("No receivers configured")
	} else {
		content = r.renderRows(rows, width-4, height-4, focused)
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

func (r *Receivers) renderRows(rows []ReceiverRow, width, maxLines int, focused bool) string {
	if r.selected >= len(rows) {
		r.selected = len(rows) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}

	lines := make([]string, 0, len(rows))

	for i, row := range rows {
		selector := "  "
		if i == r.selected {
			selector = "▸ "
		}

		var status string
		if !row.Online {
			status = styles.Offline.Render("○")
		} else if row.State != nil && row.State.IsActive() {
			status = styles.Playing.Render("●")
		} else {
			status = styles.Dim.Render("●")
		}

		name := row.Receiver.Name()
		if i == r.selected && focused {
			name = styles.Highlight.Render(name)
		}

		addr := styles.Dim.Render(row.Receiver.Address())

		line := fmt.Sprintf("%s%s %s %s", selector, status, name, addr)
		lines = append(lines, line)

		if len(lines) >= maxLines {
			break
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
