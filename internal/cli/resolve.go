package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/airwave-cli/airwave/internal/core"
	"github.com/airwave-cli/airwave/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [receiver]",
	Short: "Resolve preset references into playable stream URLs",
	Long: `Fetches a receiver's presets and resolves any provider references
into direct stream URLs. Presets that already carry a direct URL pass
through unchanged; presets whose upstream lookup fails keep their
original URL and are marked unresolved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	identifier := ""
	if len(args) == 1 {
		identifier = args[0]
	}
	r, err := receiverFromArg(identifier)
	if err != nil {
		return err
	}

	resolved, err := resolvePresets(ctx, r)
	if err != nil {
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(resolved)
	}

	table := NewTable("#", "NAME", "OUTCOME", "URL")
	for _, p := range resolved {
		table.Row(p.RemoteID, p.Name, resolveLabel(p), TruncateString(p.URL, 50))
	}
	table.Flush()
	return nil
}

// resolveLabel tags unresolved rows with the lookup hop that failed.
func resolveLabel(p core.ResolvedPreset) string {
	label := outcomeLabel(p.Outcome)
	if p.Outcome == core.OutcomeUnresolved && p.FailedStage != "" {
		return label + " (" + p.FailedStage + ")"
	}
	return label
}

// resolvePresets fetches the catalog and runs every preset through the
// resolution chain.
func resolvePresets(ctx context.Context, r core.Receiver) ([]core.ResolvedPreset, error) {
	client := newClient()

	presets, err := client.FetchPresets(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch presets from %s: %w", r.Name(), err)
	}

	res := resolver.New(client, resolver.Config{
		ProviderURL: cfg.Resolver.ProviderURL,
		Service:     cfg.Resolver.Service,
		Formats:     cfg.Resolver.Formats,
	})
	return res.ResolveAll(ctx, presets, r), nil
}

func outcomeLabel(o core.ResolutionOutcome) string {
	switch o {
	case core.OutcomeResolved:
		return "resolved"
	case core.OutcomeIgnored:
		return "skipped"
	default:
		return "unresolved"
	}
}
