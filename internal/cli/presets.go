package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [receiver]",
	Short: "List the presets stored on a receiver",
	Long: `Fetches the preset catalog from a receiver and lists each slot with
its name and stream URL. The catalog is read fresh from the device on
every call.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	identifier := ""
	if len(args) == 1 {
		identifier = args[0]
	}
	r, err := receiverFromArg(identifier)
	if err != nil {
		return err
	}

	presets, err := newClient().FetchPresets(ctx, r)
	if err != nil {
		return fmt.Errorf("fetch presets from %s: %w", r.Name(), err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(presets)
	}

	if len(presets) == 0 {
		fmt.Printf("%s has no presets\n", r.Name())
		return nil
	}

	table := NewTable("#", "NAME", "URL")
	for _, p := range presets {
		table.Row(p.RemoteID, p.Name, TruncateString(p.URL, 60))
	}
	table.Flush()
	return nil
}
