package tail

import (
	"bytes"
	"strings"
	"text/template"
)

// Formatter formats events for output.
type Formatter struct {
	showEmoji     bool
	showTimestamp bool
	template      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji enables emoji output.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showEmoji = enabled
	}
}

// WithTimestamp enables timestamp output.
func WithTimestamp(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTimestamp = enabled
	}
}

// WithTemplate sets a custom format template.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if tmpl != "" {
			t, err := template.New("format").Parse(tmpl)
			if err == nil {
				f.template = t
			}
		}
	}
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		showEmoji:     true,
		showTimestamp: false,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format formats an event as a string.
func (f *Formatter) Format(e Event) string {
	if f.template != nil {
		return f.formatTemplate(e)
	}
	return f.formatLine(e)
}

// formatLine formats an event as a simple line.
func (f *Formatter) formatLine(e Event) string {
	var parts []string

	if f.showTimestamp {
		parts = append(parts, e.Timestamp.Format("15:04:05"))
	}

	if f.showEmoji {
		parts = append(parts, eventEmoji(e.Type))
	}

	parts = append(parts, "["+e.Receiver.Name()+"]")
	parts = append(parts, eventText(e))

	return strings.Join(parts, " ")
}

// formatTemplate renders the event through the custom template.
func (f *Formatter) formatTemplate(e Event) string {
	data := map[string]interface{}{
		"Receiver":   e.Receiver.Name(),
		"Event":      eventName(e.Type),
		"Timestamp":  e.Timestamp.Format("15:04:05"),
		"NowPlaying": e.Current.NowPlaying(),
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return f.formatLine(e)
	}
	return buf.String()
}

func eventEmoji(t EventType) string {
	switch t {
	case EventTrackChange:
		return "🎵"
	case EventPause:
		return "⏸"
	case EventResume:
		return "▶"
	case EventStop:
		return "⏹"
	case EventOffline:
		return "🔌"
	case EventOnline:
		return "📻"
	default:
		return "•"
	}
}

func eventName(t EventType) string {
	switch t {
	case EventTrackChange:
		return "track"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventStop:
		return "stop"
	case EventOffline:
		return "offline"
	case EventOnline:
		return "online"
	default:
		return "unknown"
	}
}

func eventText(e Event) string {
	switch e.Type {
	case EventTrackChange:
		return e.Current.NowPlaying()
	case EventPause:
		return "Paused"
	case EventResume:
		return "Resumed: " + e.Current.NowPlaying()
	case EventStop:
		return "Stopped"
	case EventOffline:
		return "Receiver went offline"
	case EventOnline:
		return "Receiver is online"
	default:
		return ""
	}
}
