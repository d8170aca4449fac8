package resolver

import (
	"context"
	"net/url"
	"path"
	"strings"
)

// stageDereference fetches the selected candidate if it is a playlist
// file and extracts its first entry. The dereferenced result only becomes
// the final URL if it carries a recognized scheme; otherwise the chain
// stops. Non-playlist candidates pass through untouched.
func stageDereference(ctx context.Context, r *Resolver, st *resolution) stepResult {
	kind := playlistKind(st.selected)
	if kind == "" {
		st.final = st.selected
		return stepDone
	}

	body, err := r.client.GetURL(ctx, st.selected)
	if err != nil {
		return stepStop
	}

	entry := firstPlaylistEntry(string(body), kind)
	if !hasRecognizedScheme(entry) {
		return stepStop
	}

	st.final = entry
	return stepDone
}

// playlistKind reports "pls" or "m3u" for playlist URLs and "" for raw
// audio.
func playlistKind(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".pls":
		return "pls"
	case ".m3u":
		return "m3u"
	default:
		return ""
	}
}

// firstPlaylistEntry extracts the first entry from the two well-known
// playlist text formats: key=value lines for PLS, the first plain line
// for M3U.
func firstPlaylistEntry(body, kind string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch kind {
		case "pls":
			lower := strings.ToLower(line)
			if strings.HasPrefix(lower, "file") {
				if _, value, found := strings.Cut(line, "="); found {
					return strings.TrimSpace(value)
				}
			}
		case "m3u":
			if !strings.HasPrefix(line, "#") {
				return line
			}
		}
	}
	return ""
}

// hasRecognizedScheme reports whether the entry is a URL we can hand to a
// player.
func hasRecognizedScheme(entry string) bool {
	u, err := url.Parse(entry)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mms":
		return true
	default:
		return false
	}
}
