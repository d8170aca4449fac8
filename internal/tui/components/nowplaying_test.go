package components

import (
	"strings"
	"testing"

	"github.com/airwave-cli/airwave/internal/core"
)

func TestNowPlayingRender(t *testing.T) {
	kitchen := core.Receiver{Host: "192.168.1.40", Port: 8080, Label: "Kitchen"}
	np := NewNowPlaying()

	t.Run("no receiver selected", func(t *testing.T) {
		out := np.Render(nil, 60, 10, false)
		if !strings.Contains(out, "No receiver selected") {
			t.Errorf("missing placeholder, got:\n%s", out)
		}
	})

	t.Run("offline receiver", func(t *testing.T) {
		row := &ReceiverRow{Receiver: kitchen}
		out := np.Render(row, 60, 10, false)
		if !strings.Contains(out, "Receiver is offline") {
			t.Errorf("missing offline notice, got:\n%s", out)
		}
	})

	t.Run("previous track stays hidden", func(t *testing.T) {
		row := &ReceiverRow{
			Receiver: kitchen,
			Online:   true,
			State: &core.PlaybackState{
				Mode:   core.ModeStreaming,
				Title1: "Jazz24",
				Title3: "Yesterday's Show",
			},
		}
		out := np.Render(row, 60, 10, false)
		if !strings.Contains(out, "Jazz24") {
			t.Errorf("missing headline, got:\n%s", out)
		}
		if strings.Contains(out, "Yesterday's Show") {
			t.Errorf("previous track leaked into panel:\n%s", out)
		}
	})

	t.Run("album shown under headline", func(t *testing.T) {
		row := &ReceiverRow{
			Receiver: kitchen,
			Online:   true,
			State: &core.PlaybackState{
				Mode:   core.ModePlaying,
				Title1: "So What",
				Artist: "Miles Davis",
				Album:  "Kind of Blue",
			},
		}
		out := np.Render(row, 60, 10, false)
		if !strings.Contains(out, "Kind of Blue") {
			t.Errorf("missing album line, got:\n%s", out)
		}
	})
}
