package core

import "testing"

func TestParsePlayMode(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  PlayMode
	}{
		{"play", "play", ModePlaying},
		{"stream", "stream", ModeStreaming},
		{"pause", "pause", ModePaused},
		{"stop", "stop", ModeStopped},
		{"uppercase", "PLAY", ModePlaying},
		{"whitespace", "  stream  ", ModeStreaming},
		{"unknown token", "buffering", ModeStopped},
		{"empty", "", ModeStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePlayMode(tt.token); got != tt.want {
				t.Errorf("ParsePlayMode(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNowPlaying(t *testing.T) {
	tests := []struct {
		name  string
		state *PlaybackState
		want  string
	}{
		{
			name:  "nil state",
			state: nil,
			want:  "-",
		},
		{
			name:  "paused always shows paused",
			state: &PlaybackState{Mode: ModePaused, Title1: "Jazz24", Title2: "Miles Davis - So What"},
			want:  "Paused",
		},
		{
			name:  "station and track",
			state: &PlaybackState{Mode: ModePlaying, Title1: "Jazz24", Title2: "Miles Davis - So What"},
			want:  "Jazz24 - Miles Davis - So What",
		},
		{
			name:  "track only",
			state: &PlaybackState{Mode: ModeStreaming, Title2: "Miles Davis - So What"},
			want:  "Miles Davis - So What",
		},
		{
			name:  "artist and station",
			state: &PlaybackState{Mode: ModePlaying, Title1: "Jazz24", Artist: "Miles Davis"},
			want:  "Miles Davis - Jazz24",
		},
		{
			name:  "station only",
			state: &PlaybackState{Mode: ModeStreaming, Title1: "Jazz24"},
			want:  "Jazz24",
		},
		{
			name:  "active but empty titles",
			state: &PlaybackState{Mode: ModePlaying},
			want:  "-",
		},
		{
			name:  "stopped ignores titles",
			state: &PlaybackState{Mode: ModeStopped, Title1: "Jazz24", Title2: "So What"},
			want:  "-",
		},
		{
			name:  "title3 never displayed",
			state: &PlaybackState{Mode: ModePlaying, Title3: "Previous Track"},
			want:  "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.NowPlaying(); got != tt.want {
				t.Errorf("NowPlaying() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name  string
		state *PlaybackState
		want  bool
	}{
		{"nil", nil, false},
		{"playing", &PlaybackState{Mode: ModePlaying}, true},
		{"streaming", &PlaybackState{Mode: ModeStreaming}, true},
		{"paused", &PlaybackState{Mode: ModePaused}, false},
		{"stopped", &PlaybackState{Mode: ModeStopped}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}
