package resolver

import "testing"

func TestPlaylistKind(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://s.example.com/station.pls", "pls"},
		{"http://s.example.com/station.PLS?x=1", "pls"},
		{"http://s.example.com/station.m3u", "m3u"},
		{"http://s.example.com/station.mp3", ""},
		{"http://s.example.com/live", ""},
	}

	for _, tt := range tests {
		if got := playlistKind(tt.url); got != tt.want {
			t.Errorf("playlistKind(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestFirstPlaylistEntry(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind string
		want string
	}{
		{
			name: "pls",
			body: "[playlist]\nNumberOfEntries=2\nFile1=http://a.example.com/live.mp3\nFile2=http://b.example.com/live.mp3\n",
			kind: "pls",
			want: "http://a.example.com/live.mp3",
		},
		{
			name: "pls case insensitive key",
			body: "file1 = http://a.example.com/live.mp3\n",
			kind: "pls",
			want: "http://a.example.com/live.mp3",
		},
		{
			name: "m3u skips comments",
			body: "#EXTM3U\n#EXTINF:-1,Station\nhttp://a.example.com/live.mp3\n",
			kind: "m3u",
			want: "http://a.example.com/live.mp3",
		},
		{
			name: "empty body",
			body: "",
			kind: "m3u",
			want: "",
		},
		{
			name: "pls without file keys",
			body: "[playlist]\nTitle1=Nope\n",
			kind: "pls",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstPlaylistEntry(tt.body, tt.kind); got != tt.want {
				t.Errorf("firstPlaylistEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasRecognizedScheme(t *testing.T) {
	tests := []struct {
		entry string
		want  bool
	}{
		{"http://a.example.com/live.mp3", true},
		{"https://a.example.com/live.mp3", true},
		{"mms://a.example.com/live", true},
		{"rtsp://a.example.com/live", false},
		{"relative/path.mp3", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hasRecognizedScheme(tt.entry); got != tt.want {
			t.Errorf("hasRecognizedScheme(%q) = %v, want %v", tt.entry, got, tt.want)
		}
	}
}
