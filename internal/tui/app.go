package tui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/airwave-cli/airwave/internal/config"
	"github.com/airwave-cli/airwave/internal/core"
	"github.com/airwave-cli/airwave/internal/receiver"
	"github.com/airwave-cli/airwave/internal/tui/components"
	"github.com/airwave-cli/airwave/internal/tui/styles"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelReceivers Panel = iota
	PanelNowPlaying
	PanelPresets
	PanelEvents
)

const fetchTimeout = 5 * time.Second

// App holds the TUI application state
type App struct {
	client      *receiver.Client
	receivers   []core.Receiver
	refreshRate time.Duration
}

// NewApp creates a new TUI application
func NewApp(cfg *config.Config, client *receiver.Client, refreshRate time.Duration) *App {
	return &App{
		client:      client,
		receivers:   cfg.Receivers,
		refreshRate: refreshRate,
	}
}

// Model is the main TUI model
type Model struct {
	app          *App
	width        int
	height       int
	focusedPanel Panel

	// State
	rows    []components.ReceiverRow
	presets []core.Preset
	events  []components.EventEntry

	// Components
	receiversView *components.Receivers
	nowPlaying    *components.NowPlaying
	presetsView   *components.Presets
	eventsView    *components.Events

	// Overlays
	showHelp bool

	// Preset filter state
	showFilter  bool
	filterInput textinput.Model

	// Error handling
	lastError   error
	errorExpiry time.Time

	// Quit flag
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	rows := make([]components.ReceiverRow, len(app.receivers))
	for i, r := range app.receivers {
		rows[i] = components.ReceiverRow{Receiver: r}
	}

	ti := textinput.New()
	ti.Placeholder = "Filter presets..."
	ti.CharLimit = 60
	ti.Width = 30

	return Model{
		app:           app,
		focusedPanel:  PanelReceivers,
		rows:          rows,
		receiversView: components.NewReceivers(),
		nowPlaying:    components.NewNowPlaying(),
		presetsView:   components.NewPresets(),
		eventsView:    components.NewEvents(),
		filterInput:   ti,
	}
}

// Messages
type tickMsg time.Time
type rowsMsg []components.ReceiverRow
type presetsMsg struct {
	receiver core.Receiver
	presets  []core.Preset
	err      error
}
type errMsg error
type refreshAfterActionMsg struct{}

// Commands
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.app.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchStatuses() tea.Cmd {
	receivers := m.app.receivers
	client := m.app.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		rows := make([]components.ReceiverRow, len(receivers))
		var wg sync.WaitGroup
		for i, r := range receivers {
			wg.Add(1)
			go func(i int, r core.Receiver) {
				defer wg.Done()
				state, err := client.FetchStatus(ctx, r)
				rows[i] = components.ReceiverRow{
					Receiver: r,
					Online:   err == nil,
					State:    state,
				}
			}(i, r)
		}
		wg.Wait()

		return rowsMsg(rows)
	}
}

func (m Model) fetchPresets() tea.Cmd {
	row := m.selectedRow()
	if row == nil {
		return nil
	}
	r := row.Receiver
	client := m.app.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		presets, err := client.FetchPresets(ctx, r)
		return presetsMsg{receiver: r, presets: presets, err: err}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tick(),
		m.fetchStatuses(),
		m.fetchPresets(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.tick(), m.fetchStatuses())

	case rowsMsg:
		if time.Now().After(m.errorExpiry) {
			m.lastError = nil
		}
		m.recordChanges(m.rows, msg)
		m.rows = msg
		return m, nil

	case presetsMsg:
		if msg.err != nil {
			m.lastError = msg.err
			m.errorExpiry = time.Now().Add(5 * time.Second)
			return m, nil
		}
		if row := m.selectedRow(); row != nil && row.Receiver.Address() == msg.receiver.Address() {
			m.presets = msg.presets
			m.presetsView.Reset()
		}
		return m, nil

	case errMsg:
		m.lastError = msg
		m.errorExpiry = time.Now().Add(5 * time.Second)
		return m, nil

	case refreshAfterActionMsg:
		return m, m.fetchStatuses()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.showFilter {
		switch msg.String() {
		case "esc":
			m.showFilter = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.presetsView.Reset()
			return m, nil
		case "enter":
			m.showFilter = false
			m.filterInput.Blur()
			return m, nil
		}
		var inputCmd tea.Cmd
		m.filterInput, inputCmd = m.filterInput.Update(msg)
		m.presetsView.Reset()
		return m, inputCmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "tab":
		m.focusedPanel = (m.focusedPanel + 1) % 4
		return m, nil

	case "shift+tab":
		m.focusedPanel = (m.focusedPanel + 3) % 4
		return m, nil

	case " ":
		return m, m.togglePlayPause()

	case "/":
		m.showFilter = true
		m.filterInput.Focus()
		m.focusedPanel = PanelPresets
		return m, textinput.Blink

	case "r":
		return m, tea.Batch(m.fetchStatuses(), m.fetchPresets())
	}

	switch m.focusedPanel {
	case PanelReceivers:
		switch msg.String() {
		case "j", "down":
			m.receiversView.SelectNext(len(m.rows))
			m.presets = nil
			return m, m.fetchPresets()
		case "k", "up":
			m.receiversView.SelectPrev()
			m.presets = nil
			return m, m.fetchPresets()
		}
	case PanelPresets:
		switch msg.String() {
		case "j", "down":
			m.presetsView.SelectNext(len(m.filteredPresets()))
		case "k", "up":
			m.presetsView.SelectPrev()
		case "enter":
			return m, m.playSelectedPreset()
		}
	case PanelEvents:
		switch msg.String() {
		case "j", "down":
			m.eventsView.ScrollDown()
		case "k", "up":
			m.eventsView.ScrollUp()
		}
	}

	return m, nil
}

func (m Model) togglePlayPause() tea.Cmd {
	row := m.selectedRow()
	if row == nil {
		return nil
	}
	r := row.Receiver
	client := m.app.client
	pause := row.Online && row.State != nil && row.State.IsActive()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var err error
		if pause {
			err = client.Pause(ctx, r)
		} else {
			err = client.Play(ctx, r)
		}
		if err != nil {
			return errMsg(err)
		}
		time.Sleep(200 * time.Millisecond)
		return refreshAfterActionMsg{}
	}
}

func (m Model) playSelectedPreset() tea.Cmd {
	row := m.selectedRow()
	presets := m.filteredPresets()
	idx := m.presetsView.Selected()
	if row == nil || idx < 0 || idx >= len(presets) {
		return nil
	}
	r := row.Receiver
	remoteID := presets[idx].RemoteID
	client := m.app.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if err := client.SelectPreset(ctx, r, remoteID); err != nil {
			return errMsg(err)
		}
		time.Sleep(200 * time.Millisecond)
		return refreshAfterActionMsg{}
	}
}

// filteredPresets applies the preset name filter, if one is set.
func (m Model) filteredPresets() []core.Preset {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		return m.presets
	}
	var out []core.Preset
	for _, p := range m.presets {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) selectedRow() *components.ReceiverRow {
	idx := m.receiversView.Selected()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}
	return &m.rows[idx]
}

// recordChanges diffs two status sweeps and appends activity entries.
func (m *Model) recordChanges(prev, curr []components.ReceiverRow) {
	prevByAddr := make(map[string]components.ReceiverRow, len(prev))
	for _, row := range prev {
		prevByAddr[row.Receiver.Address()] = row
	}

	for _, row := range curr {
		old, seen := prevByAddr[row.Receiver.Address()]
		name := row.Receiver.Name()

		switch {
		case seen && old.Online && !row.Online:
			m.addEvent(name + " went offline")
		case seen && !old.Online && row.Online:
			m.addEvent(name + " is back online")
		case row.Online && row.State != nil:
			oldLabel := ""
			if seen && old.State != nil {
				oldLabel = old.State.NowPlaying()
			}
			if label := row.State.NowPlaying(); label != oldLabel && row.State.IsActive() {
				m.addEvent(name + ": " + label)
			}
		}
	}
}

func (m *Model) addEvent(text string) {
	entry := components.EventEntry{At: time.Now(), Text: text}

	// Newest first, keep max 50 entries
	m.events = append([]components.EventEntry{entry}, m.events...)
	if len(m.events) > 50 {
		m.events = m.events[:50]
	}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	// Main layout: two columns
	// Left: Receivers (top), Presets (bottom)
	// Right: Now Playing (top), Activity (bottom)

	leftWidth := m.width * 45 / 100
	rightWidth := m.width - leftWidth - 2
	topHeight := m.height * 40 / 100
	bottomHeight := m.height - topHeight - 2

	receiversView := m.receiversView.Render(m.rows, leftWidth-2, topHeight-2, m.focusedPanel == PanelReceivers)
	presetsView := m.presetsView.Render(m.filteredPresets(), leftWidth-2, bottomHeight-2, m.focusedPanel == PanelPresets)
	nowPlaying := m.nowPlaying.Render(m.selectedRow(), rightWidth-2, topHeight-2, m.focusedPanel == PanelNowPlaying)
	eventsView := m.eventsView.Render(m.events, rightWidth-2, bottomHeight-2, m.focusedPanel == PanelEvents)

	leftCol := lipgloss.JoinVertical(lipgloss.Left, receiversView, presetsView)
	rightCol := lipgloss.JoinVertical(lipgloss.Left, nowPlaying, eventsView)

	main := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render("q:quit  ?:help  space:play/pause  /:filter  r:refresh  enter:play preset  tab:switch panel")

	if m.showFilter {
		status = m.filterInput.View()
	} else if v := strings.TrimSpace(m.filterInput.Value()); v != "" {
		status = styles.Muted.Render("filter: "+v) + "  " + status
	}

	if m.lastError != nil {
		status = styles.Paused.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "Airwave UI - Keyboard Shortcuts"
	divider := styles.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Ctrl+C    Quit
  ?            Toggle help
  Tab          Next panel
  Shift+Tab    Previous panel
  r            Refresh
  Space        Play/Pause selected receiver

  Receivers Panel
  ───────────────
  j/↓          Select next
  k/↑          Select previous

  Presets Panel
  ─────────────
  j/↓          Select next
  k/↑          Select previous
  Enter        Play selected preset
  /            Filter by name

  Activity Panel
  ──────────────
  j/↓          Scroll down
  k/↑          Scroll up

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

// Run starts the TUI application
func Run(cfg *config.Config, client *receiver.Client, refreshRate time.Duration) error {
	app := NewApp(cfg, client, refreshRate)

	model := NewModel(app)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
