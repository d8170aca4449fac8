package resolver

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/airwave-cli/airwave/internal/receiver"
)

// stageCredentials queries the owning receiver's provider-integration
// browse endpoint and pulls the partner identifier (and optional serial)
// out of the encoded URL embedded in the response. Without a partner id
// the provider cannot be queried, so the chain stops.
func stageCredentials(ctx context.Context, r *Resolver, st *resolution) stepResult {
	body, err := r.client.Get(ctx, st.owner, receiver.BrowsePath+"?service="+url.QueryEscape(r.cfg.Service))
	if err != nil {
		return stepStop
	}

	partner, serial := extractCredentials(string(body))
	if partner == "" {
		return stepStop
	}

	st.partner = partner
	st.serial = serial
	return stepAdvance
}

// extractCredentials finds the URL="..." attribute in a browse response
// and reads the partner and serial query parameters from the
// percent-encoded URL it carries.
func extractCredentials(body string) (partner, serial string) {
	encoded, ok := receiver.ExtractAttribute(body, "URL")
	if !ok {
		return "", ""
	}

	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		decoded = encoded
	}

	u, err := url.Parse(decoded)
	if err != nil {
		return "", ""
	}

	q := u.Query()
	partner = firstNonEmpty(q.Get("partnerId"), q.Get("partner"))
	serial = firstNonEmpty(q.Get("serial"), q.Get("mac"))
	return partner, serial
}

// stageQueryProvider calls the upstream resolution endpoint and selects
// the best candidate stream URL from the response.
func stageQueryProvider(ctx context.Context, r *Resolver, st *resolution) stepResult {
	q := url.Values{}
	q.Set("id", st.ref)
	q.Set("partnerId", st.partner)
	if st.serial != "" {
		q.Set("serial", st.serial)
	}
	q.Set("formats", r.cfg.Formats)

	body, err := r.client.GetURL(ctx, r.cfg.ProviderURL+"?"+q.Encode())
	if err != nil {
		return stepStop
	}

	candidates := parseCandidates(string(body))
	if len(candidates) == 0 {
		return stepStop
	}

	st.selected = selectCandidate(candidates)
	return stepAdvance
}

// parseCandidates handles both provider response shapes: ASX-style markup
// with explicit audio entries, or a bare newline list of URLs. The
// structured form wins when both are present.
func parseCandidates(body string) []string {
	var candidates []string

	if strings.Contains(strings.ToLower(body), "<asx") {
		for _, rec := range receiver.ExtractElements(body, "ref", "href") {
			if href := rec["href"]; href != "" {
				candidates = append(candidates, href)
			}
		}
	}
	if len(candidates) > 0 {
		return candidates
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			candidates = append(candidates, line)
		}
	}
	return candidates
}

// A bitrate is only recognized as a numeric token immediately preceding
// one of a fixed set of extensions; URLs using other conventions fall
// back to "first candidate".
var bitrateRe = regexp.MustCompile(`(?i)(\d+)\.(?:m3u|pls|mp3|aac|wma)(?:$|[?#])`)

// selectCandidate prefers the candidate advertising the highest bitrate;
// if no bitrate is parseable from any candidate, the first one wins.
func selectCandidate(candidates []string) string {
	best := ""
	bestRate := -1

	for _, c := range candidates {
		m := bitrateRe.FindStringSubmatch(c)
		if m == nil {
			continue
		}
		rate, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if rate > bestRate {
			bestRate = rate
			best = c
		}
	}

	if best == "" {
		return candidates[0]
	}
	return best
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
