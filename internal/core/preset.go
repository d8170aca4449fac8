package core

// Preset is a saved station or input entry stored on a receiver. Presets
// are replaced wholesale on each catalog sync; the composite ID keeps
// entries from different receivers from colliding.
type Preset struct {
	// ID is the composite identifier: receiver address + remote id.
	ID string `json:"id"`
	// RemoteID is the receiver-assigned preset id, needed to trigger
	// playback of the preset on the device.
	RemoteID string `json:"remote_id"`
	Name     string `json:"name"`
	// URL is either a directly playable URI, an input/capture reference,
	// or an opaque provider reference requiring resolution.
	URL      string `json:"url"`
	ImageURL string `json:"image_url,omitempty"`
}

// PresetID builds the composite identifier for a preset on a receiver.
func PresetID(r Receiver, remoteID string) string {
	return r.Address() + "/" + remoteID
}

// ResolutionOutcome tags the result of a stream resolution pass.
type ResolutionOutcome string

const (
	// OutcomeResolved means the preset URL was rewritten to a playable
	// stream URL.
	OutcomeResolved ResolutionOutcome = "resolved"
	// OutcomeUnresolved means an upstream lookup failed; the original
	// URL is kept.
	OutcomeUnresolved ResolutionOutcome = "unresolved-upstream-lookup-failed"
	// OutcomeIgnored means the URL is intentionally non-exportable
	// (input capture or aggregator scheme) and no lookup was attempted.
	OutcomeIgnored ResolutionOutcome = "ignored-non-exportable-scheme"
)

// ResolvedPreset is a Preset after a resolution pass. The original URL is
// always retained so an unresolved preset stays fully reportable.
type ResolvedPreset struct {
	Preset      `json:"preset"`
	OriginalURL string            `json:"original_url"`
	Outcome     ResolutionOutcome `json:"outcome"`
	// FailedStage names the lookup hop that stopped an unresolved
	// chain, for diagnostics. Empty unless Outcome is unresolved.
	FailedStage string `json:"failed_stage,omitempty"`
}

// Playable returns true if the preset ended up with a playable URL.
func (r ResolvedPreset) Playable() bool {
	return r.Outcome == OutcomeResolved
}
