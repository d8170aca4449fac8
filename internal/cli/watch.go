package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/airwave-cli/airwave/internal/core"
	"github.com/airwave-cli/airwave/internal/tail"
)

var (
	watchAll       bool
	watchNoEmoji   bool
	watchTimestamp bool
	watchFormat    string
	watchInterval  time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [receiver]",
	Short: "Follow playback changes in real-time",
	Long: `Polls a receiver and prints playback changes as they happen.

Events tracked:
  - Track changes (new stream or title)
  - Pause/Resume
  - Stop
  - Receiver going offline or coming back`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchAll, "all", "a", false, "watch all configured receivers")
	watchCmd.Flags().BoolVar(&watchNoEmoji, "no-emoji", false, "disable emoji output")
	watchCmd.Flags().BoolVarP(&watchTimestamp, "timestamp", "t", false, "show timestamps")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "custom format template")
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 0, "poll interval (default from config)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	targets, err := watchTargets(args)
	if err != nil {
		return err
	}

	interval := watchInterval
	if interval == 0 {
		interval = time.Duration(cfg.TUI.RefreshInterval) * time.Millisecond
	}

	formatter := tail.NewFormatter(
		tail.WithEmoji(!watchNoEmoji),
		tail.WithTimestamp(watchTimestamp),
		tail.WithTemplate(watchFormat),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	client := newClient()
	merged := make(chan tail.Event, 16)
	errCh := make(chan error, len(targets))

	for _, r := range targets {
		r := r
		watcher := tail.NewWatcher(r, func(ctx context.Context) (*core.PlaybackState, error) {
			return client.FetchStatus(ctx, r)
		}, interval)

		go func() {
			errCh <- watcher.Start(ctx)
		}()
		go func() {
			for e := range watcher.Events() {
				select {
				case merged <- e:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	remaining := len(targets)
	for {
		select {
		case event := <-merged:
			fmt.Println(formatter.Format(event))

		case err := <-errCh:
			if err != nil && err != context.Canceled {
				return err
			}
			remaining--
			if remaining == 0 {
				return nil
			}
		}
	}
}

func watchTargets(args []string) ([]core.Receiver, error) {
	if watchAll {
		if len(cfg.Receivers) == 0 {
			return nil, fmt.Errorf("no receivers configured")
		}
		return cfg.Receivers, nil
	}

	identifier := ""
	if len(args) == 1 {
		identifier = args[0]
	}
	r, err := receiverFromArg(identifier)
	if err != nil {
		return nil, err
	}
	return []core.Receiver{r}, nil
}
