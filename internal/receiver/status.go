package receiver

import (
	"context"

	"github.com/airwave-cli/airwave/internal/core"
)

// FetchStatus queries a receiver for its current playback snapshot.
// A nil state with an error is a common, expected outcome: the receiver
// is powered off, unreachable, or answered with a non-success status.
func (c *Client) FetchStatus(ctx context.Context, r core.Receiver) (*core.PlaybackState, error) {
	body, err := c.Get(ctx, r, StatusPath)
	if err != nil {
		return nil, err
	}
	return parseStatus(string(body)), nil
}

// parseStatus maps a /Status body onto a PlaybackState. Missing fields
// stay empty; an unrecognized state token classifies as stopped while
// the raw token is preserved for callers that need it.
func parseStatus(body string) *core.PlaybackState {
	raw, _ := ExtractTag(body, "state")

	state := &core.PlaybackState{
		Mode:    core.ParsePlayMode(raw),
		RawMode: raw,
	}
	state.Title1, _ = ExtractTag(body, "title1")
	state.Title2, _ = ExtractTag(body, "title2")
	state.Title3, _ = ExtractTag(body, "title3")
	state.Artist, _ = ExtractTag(body, "artist")
	state.Album, _ = ExtractTag(body, "album")

	return state
}
