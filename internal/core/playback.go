package core

import "strings"

// PlayMode classifies what a receiver is currently doing.
type PlayMode string

const (
	ModePlaying   PlayMode = "playing"
	ModePaused    PlayMode = "paused"
	ModeStopped   PlayMode = "stopped"
	ModeStreaming PlayMode = "streaming"
)

// ParsePlayMode maps a raw protocol state token onto a PlayMode. The
// vocabulary is closed; anything unrecognized is treated as stopped so
// that display logic stays on the safe side.
func ParsePlayMode(token string) PlayMode {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "play":
		return ModePlaying
	case "stream":
		return ModeStreaming
	case "pause":
		return ModePaused
	case "stop":
		return ModeStopped
	default:
		return ModeStopped
	}
}

// PlaybackState is a transient snapshot of a receiver's playback. A fresh
// value is fetched on every query; nothing here is cached.
type PlaybackState struct {
	Mode    PlayMode `json:"mode"`
	RawMode string   `json:"raw_mode"`
	Title1  string   `json:"title1"`
	Title2  string   `json:"title2"`
	// Title3 historically carries the previous track and is never used
	// for display.
	Title3 string `json:"title3"`
	Artist string `json:"artist,omitempty"`
	Album  string `json:"album,omitempty"`
}

// IsActive returns true if the receiver is playing or streaming.
func (s *PlaybackState) IsActive() bool {
	return s != nil && (s.Mode == ModePlaying || s.Mode == ModeStreaming)
}

// NowPlaying derives a human label for the current state. The fallback
// order is a contract: station + track, then track alone, then
// artist + station, then station alone.
func (s *PlaybackState) NowPlaying() string {
	if s == nil {
		return "-"
	}

	switch s.Mode {
	case ModePaused:
		return "Paused"
	case ModePlaying, ModeStreaming:
		switch {
		case s.Title1 != "" && s.Title2 != "":
			return s.Title1 + " - " + s.Title2
		case s.Title2 != "":
			return s.Title2
		case s.Artist != "" && s.Title1 != "":
			return s.Artist + " - " + s.Title1
		case s.Title1 != "":
			return s.Title1
		}
	}

	return "-"
}
