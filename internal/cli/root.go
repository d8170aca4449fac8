package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/airwave-cli/airwave/internal/config"
	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
	"github.com/airwave-cli/airwave/internal/receiver"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "airwave",
	Short: "Discover and control network media receivers",
	Long: `Airwave finds media receivers on your local network, syncs their
stored presets, and resolves preset references into playable stream URLs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.airwaverc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if msg := awerr.GetSuggestion(err); msg != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", msg)
		}
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}

// newClient builds the shared transport client from configured timeouts.
func newClient() *receiver.Client {
	return receiver.NewClient(
		time.Duration(cfg.Protocol.ConnectTimeoutMS)*time.Millisecond,
		time.Duration(cfg.Protocol.ReadTimeoutMS)*time.Millisecond,
	)
}

// receiverFromArg resolves a receiver argument. An empty identifier is
// allowed when exactly one receiver is configured.
func receiverFromArg(identifier string) (core.Receiver, error) {
	if len(cfg.Receivers) == 0 {
		return core.Receiver{}, awerr.ErrNotConfigured
	}

	if identifier == "" {
		if len(cfg.Receivers) == 1 {
			return cfg.Receivers[0], nil
		}
		return core.Receiver{}, awerr.WithSuggestion(
			awerr.ErrNoSuchReceiver,
			"Multiple receivers configured; name one (label, host, or host:port)")
	}

	if r, ok := cfg.FindReceiver(identifier); ok {
		return r, nil
	}
	return core.Receiver{}, fmt.Errorf("%w: %q", awerr.ErrNoSuchReceiver, identifier)
}
