package tail

import (
	"context"
	"time"

	"github.com/airwave-cli/airwave/internal/core"
)

// EventType represents the type of playback event.
type EventType int

const (
	EventTrackChange EventType = iota
	EventPause
	EventResume
	EventStop
	EventOffline
	EventOnline
)

// Event represents a receiver state change.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Receiver  core.Receiver
	Previous  *core.PlaybackState
	Current   *core.PlaybackState
}

// StatusFunc fetches a fresh playback snapshot for one receiver.
type StatusFunc func(ctx context.Context) (*core.PlaybackState, error)

// Watcher polls a receiver for state changes and emits events.
type Watcher struct {
	receiver core.Receiver
	fetch    StatusFunc
	interval time.Duration
	events   chan Event
	done     chan struct{}
}

// NewWatcher creates a new state watcher.
func NewWatcher(r core.Receiver, fetch StatusFunc, interval time.Duration) *Watcher {
	if interval == 0 {
		interval = time.Second
	}
	return &Watcher{
		receiver: r,
		fetch:    fetch,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events returns the channel of playback events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins polling for state changes. A fetch failure is an expected
// outcome (receiver powered off) and surfaces as an offline event, not an
// error.
func (w *Watcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.events)

	prev, online := w.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-ticker.C:
			curr, currOnline := w.poll(ctx)

			events := diffStates(prev, curr, online, currOnline)
			for i := range events {
				events[i].Receiver = w.receiver
				select {
				case w.events <- events[i]:
				default:
					// Drop event if channel is full
				}
			}

			if currOnline {
				prev = curr
			}
			online = currOnline
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
}

func (w *Watcher) poll(ctx context.Context) (*core.PlaybackState, bool) {
	state, err := w.fetch(ctx)
	if err != nil || state == nil {
		return nil, false
	}
	return state, true
}

// diffStates compares two polls and returns detected events.
func diffStates(prev, curr *core.PlaybackState, wasOnline, isOnline bool) []Event {
	now := time.Now()
	var events []Event

	if wasOnline && !isOnline {
		return []Event{{Type: EventOffline, Timestamp: now, Previous: prev}}
	}
	if !isOnline {
		return nil
	}
	if !wasOnline {
		events = append(events, Event{Type: EventOnline, Timestamp: now, Current: curr})
		if curr.IsActive() {
			events = append(events, Event{Type: EventTrackChange, Timestamp: now, Current: curr})
		}
		return events
	}

	// Track change: the derived now-playing label is the identity we
	// have; receivers report no track ids.
	if curr.IsActive() && curr.NowPlaying() != prev.NowPlaying() {
		events = append(events, Event{
			Type:      EventTrackChange,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// Pause/Resume/Stop detection
	switch {
	case prev.IsActive() && curr.Mode == core.ModePaused:
		events = append(events, Event{Type: EventPause, Timestamp: now, Previous: prev, Current: curr})
	case prev.Mode == core.ModePaused && curr.IsActive():
		events = append(events, Event{Type: EventResume, Timestamp: now, Previous: prev, Current: curr})
	case prev.Mode != core.ModeStopped && curr.Mode == core.ModeStopped:
		events = append(events, Event{Type: EventStop, Timestamp: now, Previous: prev, Current: curr})
	}

	return events
}
