package cli

import (
	"fmt"
	"testing"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
)

func TestStatusRow(t *testing.T) {
	kitchen := core.Receiver{Host: "192.168.1.40", Port: 8080, Label: "Kitchen"}

	tests := []struct {
		name           string
		status         receiverStatus
		wantState      string
		wantNowPlaying string
	}{
		{
			name: "streaming receiver shows mode and station",
			status: receiverStatus{
				Receiver: kitchen,
				Online:   true,
				State: &core.PlaybackState{
					Mode:   core.ModeStreaming,
					Title1: "Jazz24",
					Title2: "Miles Davis - So What",
				},
			},
			wantState:      "streaming",
			wantNowPlaying: "Jazz24 - Miles Davis - So What",
		},
		{
			name: "paused receiver",
			status: receiverStatus{
				Receiver: kitchen,
				Online:   true,
				State:    &core.PlaybackState{Mode: core.ModePaused},
			},
			wantState:      "paused",
			wantNowPlaying: "Paused",
		},
		{
			name: "stopped receiver",
			status: receiverStatus{
				Receiver: kitchen,
				Online:   true,
				State:    &core.PlaybackState{Mode: core.ModeStopped},
			},
			wantState:      "stopped",
			wantNowPlaying: "-",
		},
		{
			name: "offline receiver",
			status: receiverStatus{
				Receiver: kitchen,
				err:      awerr.ErrUnreachable,
			},
			wantState:      "offline",
			wantNowPlaying: "-",
		},
		{
			name: "timed-out receiver",
			status: receiverStatus{
				Receiver: kitchen,
				err:      fmt.Errorf("fetch status: %w", awerr.ErrTimeout),
			},
			wantState:      "offline (timeout)",
			wantNowPlaying: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, state, nowPlaying := statusRow(tt.status)
			if name != "Kitchen" {
				t.Errorf("name = %q, want %q", name, "Kitchen")
			}
			if state != tt.wantState {
				t.Errorf("state = %q, want %q", state, tt.wantState)
			}
			if nowPlaying != tt.wantNowPlaying {
				t.Errorf("now playing = %q, want %q", nowPlaying, tt.wantNowPlaying)
			}
		})
	}
}
