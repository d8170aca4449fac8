package resolver

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/airwave-cli/airwave/internal/core"
	"github.com/airwave-cli/airwave/internal/receiver"
)

// Preset URL markers. A provider reference points into the upstream radio
// directory; the other prefixes name sources that cannot be exported as
// streams at all.
const (
	providerMarker   = "vTuner:"
	captureMarker    = "Capture:"
	aggregatorMarker = "Airable:"
)

const (
	// DefaultProviderURL is the upstream directory's public resolution
	// endpoint.
	DefaultProviderURL = "http://radio.vtuner.com/dynamOD.asp"
	// DefaultService is the provider integration queried on the receiver
	// for credentials.
	DefaultService = "vTuner"
	// DefaultFormats is the audio format list requested from the
	// provider.
	DefaultFormats = "mp3,wma,aac"
)

// Config tunes the resolution chain. Zero fields select defaults.
type Config struct {
	ProviderURL string
	Service     string
	Formats     string
}

func (c Config) withDefaults() Config {
	if c.ProviderURL == "" {
		c.ProviderURL = DefaultProviderURL
	}
	if c.Service == "" {
		c.Service = DefaultService
	}
	if c.Formats == "" {
		c.Formats = DefaultFormats
	}
	return c
}

// Resolver turns opaque provider references into concrete stream URLs via
// a bounded chain of lookups: receiver-mediated credential discovery,
// provider query, candidate selection, playlist dereference.
type Resolver struct {
	client *receiver.Client
	cfg    Config
}

// New creates a resolver using the given transport client.
func New(client *receiver.Client, cfg Config) *Resolver {
	return &Resolver{
		client: client,
		cfg:    cfg.withDefaults(),
	}
}

// resolution carries intermediate results between stages.
type resolution struct {
	owner    core.Receiver
	ref      string
	partner  string
	serial   string
	selected string
	final    string
}

type stepResult int

const (
	// stepAdvance moves on to the next stage.
	stepAdvance stepResult = iota
	// stepDone short-circuits the remaining lookup stages with a final
	// URL already in hand.
	stepDone
	// stepStop abandons the chain; the original preset is returned.
	stepStop
)

type stage struct {
	name string
	run  func(ctx context.Context, r *Resolver, st *resolution) stepResult
}

// The chain is an explicit ordered list so the fallback order stays a
// visible, testable structure.
var stages = []stage{
	{"extract reference", stageExtractRef},
	{"discover credentials", stageCredentials},
	{"query provider", stageQueryProvider},
	{"dereference playlist", stageDereference},
}

// Resolve executes the chain for one preset. The owning receiver is
// consulted for provider credentials. Failure at any hop - network,
// parse, dead end - stops the chain and returns the preset with its
// original URL intact; nothing here ever escapes to abort a batch.
func (r *Resolver) Resolve(ctx context.Context, preset core.Preset, owner core.Receiver) core.ResolvedPreset {
	resolved := core.ResolvedPreset{
		Preset:      preset,
		OriginalURL: preset.URL,
	}

	if isNonExportable(preset.URL) {
		resolved.Outcome = core.OutcomeIgnored
		return resolved
	}

	if !strings.HasPrefix(preset.URL, providerMarker) {
		// Already a concrete URI; nothing to look up.
		resolved.Outcome = core.OutcomeResolved
		return resolved
	}

	st := &resolution{
		owner: owner,
		ref:   strings.TrimPrefix(preset.URL, providerMarker),
	}

	for _, s := range stages {
		result := s.run(ctx, r, st)
		if result == stepStop {
			resolved.Outcome = core.OutcomeUnresolved
			resolved.FailedStage = s.name
			return resolved
		}
		if result == stepDone {
			break
		}
	}

	if st.final == "" {
		resolved.Outcome = core.OutcomeUnresolved
		resolved.FailedStage = stages[len(stages)-1].name
		return resolved
	}

	resolved.Preset.URL = st.final
	resolved.Outcome = core.OutcomeResolved
	return resolved
}

// resolveAllConcurrency bounds parallel preset chains. Each chain stays
// strictly sequential internally; only independent presets overlap.
const resolveAllConcurrency = 4

// ResolveAll resolves a batch of presets against their owning receiver.
// Results keep the input order. Unresolvable presets are reported with
// their original reference, never dropped.
func (r *Resolver) ResolveAll(ctx context.Context, presets []core.Preset, owner core.Receiver) []core.ResolvedPreset {
	resolved := make([]core.ResolvedPreset, len(presets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveAllConcurrency)
	for i, p := range presets {
		g.Go(func() error {
			resolved[i] = r.Resolve(ctx, p, owner)
			return nil
		})
	}
	_ = g.Wait()

	return resolved
}

// isNonExportable reports URLs that must not be resolved at all: local
// input captures and aggregator entries tied to the device.
func isNonExportable(rawURL string) bool {
	return strings.HasPrefix(rawURL, captureMarker) ||
		strings.HasPrefix(rawURL, aggregatorMarker)
}

// stageExtractRef normalizes the provider reference. Two historical
// quirks are handled here: some entries store a percent-encoded stream
// URL disguised as a reference, and some malformed entries append a full
// URL after a slash.
func stageExtractRef(_ context.Context, _ *Resolver, st *resolution) stepResult {
	ref := strings.TrimSpace(st.ref)
	if ref == "" {
		return stepStop
	}

	if direct := percentDecodedURL(ref); direct != "" {
		st.final = direct
		return stepDone
	}

	if i := strings.Index(ref, "/"); i >= 0 && strings.Contains(ref[i+1:], "://") {
		ref = ref[:i]
	}
	if ref == "" {
		return stepStop
	}

	st.ref = ref
	return stepAdvance
}

// percentDecodedURL returns the decoded URL if the reference is itself a
// percent-encoded absolute URL, and "" otherwise.
func percentDecodedURL(ref string) string {
	decoded, err := url.QueryUnescape(ref)
	if err != nil || decoded == ref {
		return ""
	}
	u, err := url.Parse(decoded)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return decoded
}
