package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airwave-cli/airwave/internal/core"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [receiver]",
	Short: "Export resolved presets as an M3U playlist",
	Long: `Resolves a receiver's presets and writes the playable ones as an
extended M3U playlist. Presets that could not be resolved or point at
non-exportable sources are skipped with a note on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write playlist to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	playlist, skipped := buildM3U(resolved)
	for _, p := range skipped {
		fmt.Fprintf(os.Stderr, "skipping %q: %s\n", p.Name, outcomeLabel(p.Outcome))
	}

	if exportOutput == "" {
		fmt.Print(playlist)
		return nil
	}

	if err := os.WriteFile(exportOutput, []byte(playlist), 0o644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOutput)
	return nil
}

// buildM3U renders playable presets as an extended M3U document and
// returns the ones left out.
func buildM3U(resolved []core.ResolvedPreset) (string, []core.ResolvedPreset) {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")

	var skipped []core.ResolvedPreset
	for _, p := range resolved {
		if !p.Playable() || p.URL == "" {
			skipped = append(skipped, p)
			continue
		}
		fmt.Fprintf(&b, "#EXTINF:-1,%s\n%s\n", p.Name, p.URL)
	}
	return b.String(), skipped
}
