package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/airwave-cli/airwave/internal/core"
	"github.com/airwave-cli/airwave/internal/discovery"
	"github.com/airwave-cli/airwave/internal/wizard"
)

var (
	scanIP   string
	scanMask string
	scanAdd  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the local subnet for receivers",
	Long: `Probes every host on the local subnet for the receiver control
protocol and lists the devices that answer.

The local address and netmask are detected automatically; use --ip and
--mask to override them. With --add, found receivers can be picked
interactively and saved to the configuration.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanIP, "ip", "", "local IPv4 address to scan from")
	scanCmd.Flags().StringVar(&scanMask, "mask", "", "netmask of the local subnet (default: interface netmask, or /24)")
	scanCmd.Flags().BoolVarP(&scanAdd, "add", "a", false, "interactively add found receivers to the config")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	localIP, netmask := scanIP, scanMask
	if localIP == "" {
		detectedIP, detectedMask, err := detectLocalAddress()
		if err != nil {
			return fmt.Errorf("detect local address: %w (use --ip)", err)
		}
		localIP = detectedIP
		if netmask == "" {
			netmask = detectedMask
		}
	}

	Verbosef("scanning from %s mask %s on port %d", localIP, netmask, cfg.Scan.Port)

	scanner := discovery.NewScanner(newClient(), discovery.Config{
		Port:         cfg.Scan.Port,
		ProbeTimeout: time.Duration(cfg.Scan.ProbeTimeoutMS) * time.Millisecond,
		Concurrency:  cfg.Scan.Concurrency,
		MaxHosts:     cfg.Scan.MaxHosts,
		Budget:       time.Duration(cfg.Scan.BudgetSeconds) * time.Second,
	})

	hosts, err := scanner.Scan(ctx, localIP, netmask)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(hosts) == 0 {
		if JSONOutput() {
			return json.NewEncoder(os.Stdout).Encode([]interface{}{})
		}
		fmt.Println("No receivers found")
		return nil
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(hosts)
	}

	if scanAdd {
		return addScannedHosts(hosts)
	}

	table := NewTable("NAME", "MODEL", "ADDRESS")
	for _, h := range hosts {
		table.Row(h.Name, h.Model, net.JoinHostPort(h.Host, fmt.Sprint(h.Port)))
	}
	table.Flush()
	return nil
}

func addScannedHosts(hosts []core.DiscoveredHost) error {
	picked, err := wizard.RunHostPicker(hosts)
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		fmt.Println("Nothing added")
		return nil
	}

	for _, h := range picked {
		cfg.AddReceiver(h.Receiver())
	}
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}

	fmt.Printf("Added %d receiver(s)\n", len(picked))
	return nil
}

// detectLocalAddress finds the first usable non-loopback IPv4 address and
// its netmask.
func detectLocalAddress() (ip, mask string, err error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", "", err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok || ipNet.IP.To4() == nil {
				continue
			}
			return ipNet.IP.String(), net.IP(ipNet.Mask).String(), nil
		}
	}

	return "", "", fmt.Errorf("no usable IPv4 interface found")
}
