package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
)

var statusCmd = &cobra.Command{
	Use:   "status [receiver]",
	Short: "Show what each receiver is playing",
	Long: `Shows the current playback state of one receiver, or of every
configured receiver when none is named. Unreachable receivers are
reported as offline rather than failing the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type receiverStatus struct {
	Receiver core.Receiver       `json:"receiver"`
	Online   bool                `json:"online"`
	State    *core.PlaybackState `json:"state,omitempty"`
	Error    string              `json:"error,omitempty"`

	err error
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	targets := cfg.Receivers
	if len(args) == 1 {
		r, err := receiverFromArg(args[0])
		if err != nil {
			return err
		}
		targets = []core.Receiver{r}
	}
	if len(targets) == 0 {
		return awerr.WithSuggestion(awerr.ErrNotConfigured,
			"Run 'airwave scan --add' to find and save receivers")
	}

	client := newClient()
	statuses := make([]receiverStatus, len(targets))

	var wg sync.WaitGroup
	for i, r := range targets {
		wg.Add(1)
		go func(i int, r core.Receiver) {
			defer wg.Done()
			state, err := client.FetchStatus(ctx, r)
			statuses[i] = receiverStatus{Receiver: r, Online: err == nil, State: state, err: err}
			if err != nil {
				statuses[i].Error = err.Error()
			}
		}(i, r)
	}
	wg.Wait()

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(statuses)
	}

	table := NewTable("RECEIVER", "STATE", "NOW PLAYING")
	for _, s := range statuses {
		name, state, nowPlaying := statusRow(s)
		table.Row(name, state, nowPlaying)
	}
	table.Flush()
	return nil
}

func statusRow(s receiverStatus) (name, state, nowPlaying string) {
	if !s.Online {
		return s.Receiver.Name(), offlineLabel(s), "-"
	}
	return s.Receiver.Name(), string(s.State.Mode), s.State.NowPlaying()
}

func offlineLabel(s receiverStatus) string {
	if errors.Is(s.err, awerr.ErrTimeout) {
		return "offline (timeout)"
	}
	return "offline"
}
