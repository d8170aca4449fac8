package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/airwave-cli/airwave/internal/tui/styles"
)

// NowPlaying displays the selected receiver's current stream
type NowPlaying struct{}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{}
}

// Render renders the now playing panel
func (n *NowPlaying) Render(row *ReceiverRow, width, height int, focused bool) string {
	title := styles.PanelTitle("Now Playing", focused)

	var content string
	switch {
	case row == nil:
		content = styles.Muted.Render("No receiver selected")
	case !row.Online:
		content = styles.Offline.Render("Receiver is offline")
	default:
		content = n.renderState(row, width-4)
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

func (n *NowPlaying) renderState(row *ReceiverRow, width int) string {
	state := row.State
	if state == nil {
		return styles.Muted.Render("Nothing playing")
	}

	icon := styles.ModeIcon(string(state.Mode))
	headline := styles.Title.Width(width - 4).Render(state.NowPlaying())

	lines := []string{icon + " " + headline}

	// Title3 carries the previous track and is never shown as current
	// metadata.
	if state.Album != "" {
		lines = append(lines, "  "+styles.Dim.Render(state.Album))
	}

	lines = append(lines, "",
		styles.Muted.Render(row.Receiver.Name()+" · "+string(state.Mode)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
