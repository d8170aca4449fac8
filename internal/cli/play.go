package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var playReceiver string

var playCmd = &cobra.Command{
	Use:   "play [preset|url]",
	Short: "Start playback on a receiver",
	Long: `Resumes playback, or starts a preset or stream. A numeric argument
selects the preset with that slot number; an http(s) argument is played
directly; with no argument playback resumes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback on a receiver",
	Args:  cobra.NoArgs,
	RunE:  runPause,
}

func init() {
	playCmd.Flags().StringVarP(&playReceiver, "receiver", "r", "", "receiver to control (label, host, or host:port)")
	pauseCmd.Flags().StringVarP(&playReceiver, "receiver", "r", "", "receiver to control (label, host, or host:port)")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pauseCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	r, err := receiverFromArg(playReceiver)
	if err != nil {
		return err
	}
	client := newClient()

	if len(args) == 0 {
		if err := client.Play(ctx, r); err != nil {
			return fmt.Errorf("resume on %s: %w", r.Name(), err)
		}
		fmt.Printf("Resumed playback on %s\n", r.Name())
		return nil
	}

	target := args[0]
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		if err := client.PlayURL(ctx, r, target); err != nil {
			return fmt.Errorf("play stream on %s: %w", r.Name(), err)
		}
		fmt.Printf("Playing %s on %s\n", TruncateString(target, 60), r.Name())
		return nil
	}

	if err := client.SelectPreset(ctx, r, target); err != nil {
		return fmt.Errorf("select preset %s on %s: %w", target, r.Name(), err)
	}
	fmt.Printf("Playing preset %s on %s\n", target, r.Name())
	return nil
}

func runPause(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	r, err := receiverFromArg(playReceiver)
	if err != nil {
		return err
	}

	if err := newClient().Pause(ctx, r); err != nil {
		return fmt.Errorf("pause on %s: %w", r.Name(), err)
	}
	fmt.Printf("Paused %s\n", r.Name())
	return nil
}
