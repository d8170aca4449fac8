package cli

import (
	"time"

	"github.com/spf13/cobra"

	awerr "github.com/airwave-cli/airwave/internal/errors"
	"github.com/airwave-cli/airwave/internal/tui"
)

var tuiRefresh int

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard provides a live view with:
  • Receivers - configured devices and their reachability
  • Now Playing - current stream and titles
  • Presets - the selected receiver's stored stations

Keyboard shortcuts:
  q, Ctrl+C    Quit
  ?            Help
  Enter        Play selected preset
  Space        Play/Pause
  r            Refresh now
  Tab          Switch panel`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&tuiRefresh, "refresh", 0, "Refresh interval in milliseconds (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if len(cfg.Receivers) == 0 {
		return awerr.WithSuggestion(awerr.ErrNotConfigured,
			"Run 'airwave scan --add' to find and save receivers")
	}

	refresh := tuiRefresh
	if refresh == 0 {
		refresh = cfg.TUI.RefreshInterval
	}
	refreshRate := time.Duration(refresh) * time.Millisecond

	return tui.Run(cfg, newClient(), refreshRate)
}
