package core

import (
	"fmt"
	"strings"
)

// DefaultPort is the control port receivers listen on unless configured
// otherwise.
const DefaultPort = 8080

// Receiver identifies one controllable media receiver on the network.
// Its address is its identity; the label is cosmetic and may be renamed.
type Receiver struct {
	Host    string `json:"host" toml:"host"`
	Port    int    `json:"port" toml:"port"`
	Label   string `json:"label" toml:"label"`
	Network string `json:"network,omitempty" toml:"network,omitempty"`
}

// Address returns the host:port identity of the receiver.
func (r Receiver) Address() string {
	port := r.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("%s:%d", r.Host, port)
}

// BaseURL returns the control protocol base URL.
func (r Receiver) BaseURL() string {
	return "http://" + r.Address()
}

// Name returns the display label, falling back to the address.
func (r Receiver) Name() string {
	if strings.TrimSpace(r.Label) != "" {
		return r.Label
	}
	return r.Address()
}

// Matches reports whether the identifier refers to this receiver.
// Identifiers may be a label, host, or host:port.
func (r Receiver) Matches(identifier string) bool {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return false
	}
	return strings.EqualFold(r.Label, id) ||
		strings.EqualFold(r.Host, id) ||
		strings.EqualFold(r.Address(), id)
}

// DiscoveredHost is the result of one successful discovery probe. It is
// ephemeral: a scan produces candidates, the caller decides which become
// configured Receivers.
type DiscoveredHost struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Name  string `json:"name"`
	Model string `json:"model,omitempty"`
}

// Receiver converts a discovered host into a Receiver value, using the
// advertised name as the initial label.
func (d DiscoveredHost) Receiver() Receiver {
	return Receiver{
		Host:  d.Host,
		Port:  d.Port,
		Label: d.Name,
	}
}
