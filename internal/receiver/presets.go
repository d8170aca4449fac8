package receiver

import (
	"context"
	"fmt"
	"strings"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
)

// FetchPresets retrieves the receiver's stored preset catalog in device
// order. The returned error is the signal that distinguishes a failed
// sync from a receiver that legitimately has zero presets - callers use
// replace-wholesale semantics, so they must never treat an empty list
// alone as failure.
func (c *Client) FetchPresets(ctx context.Context, r core.Receiver) ([]core.Preset, error) {
	body, err := c.Get(ctx, r, PresetsPath)
	if err != nil {
		return nil, err
	}
	return parsePresets(r, string(body))
}

// parsePresets extracts every preset element from the listing body.
// Entries without a remote id cannot be played back and are dropped
// rather than emitted half-formed.
func parsePresets(r core.Receiver, body string) ([]core.Preset, error) {
	records := ExtractElements(body, "preset", "id", "name", "url", "image")
	if len(records) == 0 {
		if !strings.Contains(strings.ToLower(body), "<preset") {
			return nil, fmt.Errorf("preset listing: %w", awerr.ErrUnparseable)
		}
		return nil, nil
	}

	presets := make([]core.Preset, 0, len(records))
	for _, rec := range records {
		id := rec["id"]
		if id == "" {
			continue
		}
		presets = append(presets, core.Preset{
			ID:       core.PresetID(r, id),
			RemoteID: id,
			Name:     rec["name"],
			URL:      rec["url"],
			ImageURL: rec["image"],
		})
	}

	return presets, nil
}
