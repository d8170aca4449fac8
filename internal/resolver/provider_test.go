package resolver

import "testing"

func TestParseCandidates(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "asx markup",
			body: `<asx version="3.0">
				<entry><ref href="http://a.example.com/64.mp3"/></entry>
				<entry><ref href="http://a.example.com/128.mp3"/></entry>
			</asx>`,
			want: []string{"http://a.example.com/64.mp3", "http://a.example.com/128.mp3"},
		},
		{
			name: "newline list",
			body: "http://a.example.com/one.mp3\nhttp://a.example.com/two.mp3\n",
			want: []string{"http://a.example.com/one.mp3", "http://a.example.com/two.mp3"},
		},
		{
			name: "newline list skips junk lines",
			body: "error: not found\nhttp://a.example.com/one.mp3\n\n",
			want: []string{"http://a.example.com/one.mp3"},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
		{
			name: "asx with no refs falls back to lines",
			body: "<asx version=\"3.0\"></asx>\nhttp://a.example.com/fallback.mp3",
			want: []string{"http://a.example.com/fallback.mp3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCandidates(tt.body)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("candidate %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSelectCandidate(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{
			name: "highest bitrate wins",
			candidates: []string{
				"http://s.example.com/station.64.pls",
				"http://s.example.com/station.128.pls",
				"http://s.example.com/station.32.pls",
			},
			want: "http://s.example.com/station.128.pls",
		},
		{
			name: "bitrate before query string",
			candidates: []string{
				"http://s.example.com/station.64.mp3?token=a",
				"http://s.example.com/station.96.mp3?token=b",
			},
			want: "http://s.example.com/station.96.mp3?token=b",
		},
		{
			name: "no parseable bitrates falls back to first",
			candidates: []string{
				"http://s.example.com/live",
				"http://s.example.com/other",
			},
			want: "http://s.example.com/live",
		},
		{
			name: "mixed takes parseable one",
			candidates: []string{
				"http://s.example.com/live",
				"http://s.example.com/station.48.aac",
			},
			want: "http://s.example.com/station.48.aac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectCandidate(tt.candidates); got != tt.want {
				t.Errorf("selectCandidate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractCredentials(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPartner string
		wantSerial  string
	}{
		{
			name:        "partnerId and serial",
			body:        `<Item URL="http%3A%2F%2Fr.example.com%2F%3FpartnerId%3Dabc%26serial%3D0011"/>`,
			wantPartner: "abc",
			wantSerial:  "0011",
		},
		{
			name:        "partner and mac aliases",
			body:        `<Item URL="http%3A%2F%2Fr.example.com%2F%3Fpartner%3Dxyz%26mac%3Daabbcc"/>`,
			wantPartner: "xyz",
			wantSerial:  "aabbcc",
		},
		{
			name:        "unencoded url",
			body:        `<Item URL="http://r.example.com/?partnerId=plain"/>`,
			wantPartner: "plain",
			wantSerial:  "",
		},
		{
			name: "no url attribute",
			body: `<Item OTHER="x"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partner, serial := extractCredentials(tt.body)
			if partner != tt.wantPartner {
				t.Errorf("partner = %q, want %q", partner, tt.wantPartner)
			}
			if serial != tt.wantSerial {
				t.Errorf("serial = %q, want %q", serial, tt.wantSerial)
			}
		})
	}
}

func TestStageExtractRef(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantStep  stepResult
		wantRef   string
		wantFinal string
	}{
		{
			name:     "plain reference",
			ref:      "s12345",
			wantStep: stepAdvance,
			wantRef:  "s12345",
		},
		{
			name:      "percent encoded url short circuits",
			ref:       "http%3A%2F%2Fexample.com%2Fa.mp3",
			wantStep:  stepDone,
			wantFinal: "http://example.com/a.mp3",
		},
		{
			name:     "embedded url after slash trimmed",
			ref:      "s123/http://junk.example.com/x",
			wantStep: stepAdvance,
			wantRef:  "s123",
		},
		{
			name:     "empty reference stops",
			ref:      "  ",
			wantStep: stepStop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &resolution{ref: tt.ref}
			got := stageExtractRef(nil, nil, st)
			if got != tt.wantStep {
				t.Fatalf("step = %v, want %v", got, tt.wantStep)
			}
			if tt.wantRef != "" && st.ref != tt.wantRef {
				t.Errorf("ref = %q, want %q", st.ref, tt.wantRef)
			}
			if tt.wantFinal != "" && st.final != tt.wantFinal {
				t.Errorf("final = %q, want %q", st.final, tt.wantFinal)
			}
		})
	}
}
