package tail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/airwave-cli/airwave/internal/core"
)

func playing(title1, title2 string) *core.PlaybackState {
	return &core.PlaybackState{Mode: core.ModePlaying, Title1: title1, Title2: title2}
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func TestDiffStates(t *testing.T) {
	tests := []struct {
		name      string
		prev      *core.PlaybackState
		curr      *core.PlaybackState
		wasOnline bool
		isOnline  bool
		want      []EventType
	}{
		{
			name:      "went offline",
			prev:      playing("Jazz24", "So What"),
			wasOnline: true,
			isOnline:  false,
			want:      []EventType{EventOffline},
		},
		{
			name:      "still offline",
			wasOnline: false,
			isOnline:  false,
			want:      nil,
		},
		{
			name:      "came online idle",
			curr:      &core.PlaybackState{Mode: core.ModeStopped},
			wasOnline: false,
			isOnline:  true,
			want:      []EventType{EventOnline},
		},
		{
			name:      "came online playing",
			curr:      playing("Jazz24", "So What"),
			wasOnline: false,
			isOnline:  true,
			want:      []EventType{EventOnline, EventTrackChange},
		},
		{
			name:      "track change",
			prev:      playing("Jazz24", "So What"),
			curr:      playing("Jazz24", "Blue in Green"),
			wasOnline: true,
			isOnline:  true,
			want:      []EventType{EventTrackChange},
		},
		{
			name:      "no change",
			prev:      playing("Jazz24", "So What"),
			curr:      playing("Jazz24", "So What"),
			wasOnline: true,
			isOnline:  true,
			want:      nil,
		},
		{
			name:      "paused",
			prev:      playing("Jazz24", "So What"),
			curr:      &core.PlaybackState{Mode: core.ModePaused, Title1: "Jazz24"},
			wasOnline: true,
			isOnline:  true,
			want:      []EventType{EventPause},
		},
		{
			name:      "resumed",
			prev:      &core.PlaybackState{Mode: core.ModePaused, Title1: "Jazz24"},
			curr:      playing("Jazz24", ""),
			wasOnline: true,
			isOnline:  true,
			want:      []EventType{EventTrackChange, EventResume},
		},
		{
			name:      "stopped",
			prev:      playing("Jazz24", "So What"),
			curr:      &core.PlaybackState{Mode: core.ModeStopped},
			wasOnline: true,
			isOnline:  true,
			want:      []EventType{EventStop},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eventTypes(diffStates(tt.prev, tt.curr, tt.wasOnline, tt.isOnline))
			if len(got) != len(tt.want) {
				t.Fatalf("events = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWatcherEmitsEvents(t *testing.T) {
	states := make(chan *core.PlaybackState, 4)
	states <- playing("Jazz24", "So What")
	states <- playing("Jazz24", "So What")
	states <- playing("Jazz24", "Blue in Green")

	fetch := func(ctx context.Context) (*core.PlaybackState, error) {
		select {
		case s := <-states:
			return s, nil
		default:
			return nil, errors.New("off")
		}
	}

	r := core.Receiver{Host: "192.168.1.40", Port: 8080, Label: "Kitchen"}
	w := NewWatcher(r, fetch, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go func() { _ = w.Start(ctx) }()

	var got []Event
	deadline := time.After(500 * time.Millisecond)
	for len(got) < 2 {
		select {
		case e := <-w.Events():
			got = append(got, e)
		case <-deadline:
			t.Fatalf("timed out with events %v", eventTypes(got))
		}
	}
	w.Stop()

	if got[0].Type != EventTrackChange {
		t.Errorf("first event = %v, want track change", got[0].Type)
	}
	if got[0].Receiver.Label != "Kitchen" {
		t.Errorf("event receiver = %+v", got[0].Receiver)
	}
	if got[1].Type != EventOffline {
		t.Errorf("second event = %v, want offline", got[1].Type)
	}
}
