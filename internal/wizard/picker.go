package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/airwave-cli/airwave/internal/core"
)

// PickerModel is the bubbletea model for the discovered-host picker.
type PickerModel struct {
	hosts   []core.DiscoveredHost
	cursor  int
	checked map[int]bool
	done    bool
	width   int
	height  int
}

// Styles for the host picker
var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	pickerCheckedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))

	pickerDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// NewPickerModel creates a new host picker model.
func NewPickerModel(hosts []core.DiscoveredHost) PickerModel {
	return PickerModel{
		hosts:   hosts,
		checked: make(map[int]bool),
		width:   80,
		height:  20,
	}
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.checked = make(map[int]bool)
			return m, tea.Quit

		case "enter":
			m.done = true
			return m, tea.Quit

		case " ":
			if len(m.hosts) > 0 && m.cursor < len(m.hosts) {
				m.checked[m.cursor] = !m.checked[m.cursor]
			}

		case "a":
			for i := range m.hosts {
				m.checked[i] = true
			}

		case "up", "k", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j", "ctrl+n":
			if m.cursor < len(m.hosts)-1 {
				m.cursor++
			}

		case "home", "g":
			m.cursor = 0

		case "end", "G":
			m.cursor = len(m.hosts) - 1
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("📻 Select Receivers to Add"))
	b.WriteString("\n\n")

	if len(m.hosts) == 0 {
		b.WriteString(pickerDimStyle.Render("No receivers found"))
	} else {
		for i, h := range m.hosts {
			var line strings.Builder

			if m.checked[i] {
				line.WriteString(pickerCheckedStyle.Render("[x] "))
			} else {
				line.WriteString("[ ] ")
			}

			line.WriteString(h.Name)
			if h.Model != "" {
				line.WriteString(" " + pickerDimStyle.Render("("+h.Model+")"))
			}
			line.WriteString(pickerDimStyle.Render(fmt.Sprintf(" %s:%d", h.Host, h.Port)))

			if i == m.cursor {
				b.WriteString(pickerSelectedStyle.Render("▸ " + line.String()))
			} else {
				b.WriteString(pickerItemStyle.Render("  " + line.String()))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(pickerDimStyle.Render("↑/↓ navigate • space toggle • a all • enter confirm • esc cancel"))

	return b.String()
}

// Selected returns the checked hosts in list order.
func (m PickerModel) Selected() []core.DiscoveredHost {
	if !m.done {
		return nil
	}
	var out []core.DiscoveredHost
	for i, h := range m.hosts {
		if m.checked[i] {
			out = append(out, h)
		}
	}
	return out
}

// RunHostPicker runs the picker and returns the hosts the user checked.
// A cancelled picker returns an empty slice, not an error.
func RunHostPicker(hosts []core.DiscoveredHost) ([]core.DiscoveredHost, error) {
	if !IsTerminal() {
		return nil, fmt.Errorf("interactive picker requires a terminal (use 'airwave receivers add' instead)")
	}

	model := NewPickerModel(hosts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalModel.(PickerModel).Selected(), nil
}
