package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
	"github.com/airwave-cli/airwave/internal/wizard"
)

var receiversCmd = &cobra.Command{
	Use:   "receivers",
	Short: "Manage configured receivers",
	RunE:  runReceiversList,
}

var receiversAddLabel string

var receiversAddCmd = &cobra.Command{
	Use:   "add [host[:port]]",
	Short: "Add a receiver to the configuration",
	Long: `Adds a receiver by address. With no argument an interactive form
asks for the details. The device is probed before saving so typos are
caught early.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReceiversAdd,
}

var receiversRemoveCmd = &cobra.Command{
	Use:   "remove <receiver>",
	Short: "Remove a receiver from the configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runReceiversRemove,
}

var receiversRenameCmd = &cobra.Command{
	Use:   "rename <receiver> <label>",
	Short: "Set the label of a configured receiver",
	Args:  cobra.ExactArgs(2),
	RunE:  runReceiversRename,
}

func init() {
	receiversAddCmd.Flags().StringVarP(&receiversAddLabel, "label", "l", "", "label for the receiver")
	receiversCmd.AddCommand(receiversAddCmd)
	receiversCmd.AddCommand(receiversRemoveCmd)
	receiversCmd.AddCommand(receiversRenameCmd)
	rootCmd.AddCommand(receiversCmd)
}

func runReceiversList(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(cfg.Receivers)
	}

	if len(cfg.Receivers) == 0 {
		fmt.Println("No receivers configured. Run 'airwave scan --add' to find some.")
		return nil
	}

	table := NewTable("LABEL", "ADDRESS", "NETWORK")
	for _, r := range cfg.Receivers {
		label := r.Label
		if label == "" {
			label = "-"
		}
		table.Row(label, r.Address(), r.Network)
	}
	table.Flush()
	return nil
}

func runReceiversAdd(cmd *cobra.Command, args []string) error {
	var r core.Receiver

	if len(args) == 0 {
		var err error
		r, err = wizard.RunAddReceiverForm()
		if err != nil {
			return err
		}
	} else {
		var err error
		r, err = parseReceiverAddress(args[0])
		if err != nil {
			return err
		}
		r.Label = receiversAddLabel
	}

	info, err := newClient().Identify(context.Background(), r.Host, r.Port)
	if err != nil {
		return awerr.WithSuggestion(
			fmt.Errorf("probe %s: %w", r.Address(), err),
			"Check the address and that the receiver is powered on")
	}
	if r.Label == "" {
		r.Label = info.Name
	}

	cfg.AddReceiver(r)
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s)\n", r.Name(), r.Address())
	return nil
}

func runReceiversRemove(cmd *cobra.Command, args []string) error {
	if !cfg.RemoveReceiver(args[0]) {
		return fmt.Errorf("%w: %q", awerr.ErrNoSuchReceiver, args[0])
	}
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", args[0])
	return nil
}

func runReceiversRename(cmd *cobra.Command, args []string) error {
	r, ok := cfg.FindReceiver(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", awerr.ErrNoSuchReceiver, args[0])
	}

	r.Label = args[1]
	cfg.AddReceiver(r)
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}

	fmt.Printf("Renamed %s to %q\n", r.Address(), args[1])
	return nil
}

// parseReceiverAddress accepts "host" or "host:port".
func parseReceiverAddress(addr string) (core.Receiver, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return core.Receiver{Host: addr, Port: core.DefaultPort}, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return core.Receiver{}, fmt.Errorf("%w: bad port in %q", awerr.ErrInvalidAddress, addr)
	}
	return core.Receiver{Host: host, Port: port}, nil
}
