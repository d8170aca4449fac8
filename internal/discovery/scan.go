package discovery

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
	"github.com/airwave-cli/airwave/internal/receiver"
)

const (
	defaultProbeTimeout = 1500 * time.Millisecond
	defaultConcurrency  = 32
	defaultMaxHosts     = 254
	defaultBudget       = 30 * time.Second
	reachabilityWait    = 400 * time.Millisecond
)

// Swappable for tests.
var isReachableAddress = defaultReachableAddress

// Config tunes a subnet scan. Zero fields select defaults.
type Config struct {
	// Port is the control port probed on every candidate host.
	Port int
	// ProbeTimeout bounds one host's probe; a probe that does not finish
	// in time is abandoned, not awaited.
	ProbeTimeout time.Duration
	// Concurrency caps in-flight probes to protect socket limits on
	// constrained devices.
	Concurrency int
	// MaxHosts caps the candidate set even when the computed range is
	// larger.
	MaxHosts int
	// Budget is the wall-clock ceiling for the whole scan.
	Budget time.Duration
}

func (c Config) withDefaults() Config {
	if c.Port <= 0 {
		c.Port = core.DefaultPort
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = defaultProbeTimeout
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.MaxHosts <= 0 {
		c.MaxHosts = defaultMaxHosts
	}
	if c.Budget <= 0 {
		c.Budget = defaultBudget
	}
	return c
}

// Scanner probes the local subnet for receivers that answer the protocol
// identity query.
type Scanner struct {
	client *receiver.Client
	cfg    Config
}

// NewScanner creates a scanner using the given transport client.
func NewScanner(client *receiver.Client, cfg Config) *Scanner {
	return &Scanner{
		client: client,
		cfg:    cfg.withDefaults(),
	}
}

// Scan probes every candidate host computed from the local address and
// netmask and returns the ones that identified as receivers. The result
// order is not meaningful. Scan always finishes within the configured
// budget and individual probe failures never abort it; the only error
// returned is an unusable local address.
func (s *Scanner) Scan(ctx context.Context, localAddr, netmask string) ([]core.DiscoveredHost, error) {
	candidates, err := HostRange(localAddr, netmask, s.cfg.MaxHosts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Budget)
	defer cancel()

	var (
		mu    sync.Mutex
		found []core.DiscoveredHost
	)

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)

	for _, host := range candidates {
		host := host
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if d, ok := s.probe(ctx, host); ok {
				mu.Lock()
				found = append(found, d)
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()
	return found, nil
}

// probe checks one host. Any failure - unreachable, timeout, non-matching
// response, malformed body - yields "not found" for that host.
func (s *Scanner) probe(ctx context.Context, host string) (core.DiscoveredHost, bool) {
	probeCtx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	addr := net.JoinHostPort(host, fmt.Sprint(s.cfg.Port))
	if !isReachableAddress(addr, reachabilityWait) {
		return core.DiscoveredHost{}, false
	}

	d, err := s.client.Identify(probeCtx, host, s.cfg.Port)
	if err != nil {
		return core.DiscoveredHost{}, false
	}
	return d, true
}

// HostRange computes the probe candidates for a local IPv4 address and
// dotted netmask: every host address between the network and broadcast
// addresses, capped at max. An absent or zero mask falls back to a /24
// assumption - a best-effort heuristic, not a guaranteed-correct
// calculation.
func HostRange(localAddr, netmask string, max int) ([]string, error) {
	ip := net.ParseIP(localAddr)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("%w: %q", awerr.ErrInvalidAddress, localAddr)
	}

	mask := parseMask(netmask)
	ones, bits := mask.Size()
	if bits != 32 {
		return nil, fmt.Errorf("%w: mask %q", awerr.ErrInvalidAddress, netmask)
	}

	base := binary.BigEndian.Uint32(ip.To4().Mask(mask))
	hostCount := 1 << (32 - ones)
	if hostCount <= 2 {
		return nil, nil
	}

	count := hostCount - 2
	if count > max {
		count = max
	}

	hosts := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], base+uint32(i))
		hosts = append(hosts, net.IP(b[:]).String())
	}
	return hosts, nil
}

// parseMask returns the netmask, assuming /24 when it is missing, zero,
// or not a valid IPv4 mask.
func parseMask(netmask string) net.IPMask {
	fallback := net.CIDRMask(24, 32)

	m := net.ParseIP(netmask)
	if m == nil || m.To4() == nil {
		return fallback
	}
	mask := net.IPMask(m.To4())
	if ones, bits := mask.Size(); bits != 32 || ones == 0 {
		return fallback
	}
	return mask
}

func defaultReachableAddress(addr string, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
