package wizard

import (
	"fmt"
	"net"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/airwave-cli/airwave/internal/core"
)

// RunAddReceiverForm asks for a receiver's address and label.
func RunAddReceiverForm() (core.Receiver, error) {
	if !IsTerminal() {
		return core.Receiver{}, fmt.Errorf("interactive form requires a terminal")
	}

	var (
		host  string
		port  = strconv.Itoa(core.DefaultPort)
		label string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Host").
				Description("IP address or hostname of the receiver").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("host is required")
					}
					if net.ParseIP(s) == nil && len(s) > 253 {
						return fmt.Errorf("not a valid host")
					}
					return nil
				}).
				Value(&host),
			huh.NewInput().
				Title("Port").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 65535 {
						return fmt.Errorf("port must be 1-65535")
					}
					return nil
				}).
				Value(&port),
			huh.NewInput().
				Title("Label").
				Description("Optional friendly name").
				Value(&label),
		),
	)

	if err := form.Run(); err != nil {
		return core.Receiver{}, fmt.Errorf("cancelled: %w", err)
	}

	portNum, _ := strconv.Atoi(port)
	return core.Receiver{Host: host, Port: portNum, Label: label}, nil
}
