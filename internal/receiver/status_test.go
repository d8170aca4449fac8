package receiver

import (
	"testing"

	"github.com/airwave-cli/airwave/internal/core"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
		want core.PlaybackState
	}{
		{
			name: "streaming with titles",
			body: `<status>
				<state>stream</state>
				<title1>Jazz24</title1>
				<title2>Miles Davis - So What</title2>
				<title3>Previous Song</title3>
			</status>`,
			want: core.PlaybackState{
				Mode:    core.ModeStreaming,
				RawMode: "stream",
				Title1:  "Jazz24",
				Title2:  "Miles Davis - So What",
				Title3:  "Previous Song",
			},
		},
		{
			name: "paused with artist and album",
			body: `<status><state>pause</state><artist>Miles Davis</artist><album>Kind of Blue</album></status>`,
			want: core.PlaybackState{
				Mode:    core.ModePaused,
				RawMode: "pause",
				Artist:  "Miles Davis",
				Album:   "Kind of Blue",
			},
		},
		{
			name: "unknown token preserved in raw",
			body: `<status><state>buffering</state></status>`,
			want: core.PlaybackState{
				Mode:    core.ModeStopped,
				RawMode: "buffering",
			},
		},
		{
			name: "empty body",
			body: ``,
			want: core.PlaybackState{
				Mode: core.ModeStopped,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStatus(tt.body)
			if *got != tt.want {
				t.Errorf("parseStatus() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
