package receiver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
)

// Control protocol endpoints. Receivers answer plain HTTP GETs with
// loosely-formed XML bodies.
const (
	InfoPath    = "/Info"
	StatusPath  = "/Status"
	PresetsPath = "/Presets"
	BrowsePath  = "/RadioBrowse"
	PresetPath  = "/Preset"
	PlayPath    = "/Play"
	PausePath   = "/Pause"
)

const (
	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 2 * time.Second
	// DefaultReadTimeout bounds the whole request, headers and body.
	DefaultReadTimeout = 5 * time.Second

	// Receivers send small XML bodies; anything larger is garbage.
	maxBodySize = 256 * 1024
)

// Client makes bounded-timeout HTTP GET requests against receivers and
// upstream services. There are no retries at this layer; callers that
// want retry semantics own that policy.
type Client struct {
	httpClient  *http.Client
	readTimeout time.Duration
}

// NewClient creates a client with the given connect and read timeouts.
// Zero values select the defaults.
func NewClient(connectTimeout, readTimeout time.Duration) *Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: connectTimeout}).DialContext,
				ResponseHeaderTimeout: readTimeout,
			},
		},
		readTimeout: readTimeout,
	}
}

// Get fetches a control path from a receiver.
func (c *Client) Get(ctx context.Context, r core.Receiver, path string) ([]byte, error) {
	return c.GetURL(ctx, r.BaseURL()+path)
}

// GetURL fetches a raw URL and returns the response body. Failures map
// onto the transport error taxonomy: unreachable, timeout, or
// non-success status. The body is fully read and the connection released
// on every path.
func (c *Client) GetURL(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.readTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &awerr.StatusError{Code: resp.StatusCode, URL: rawURL}
	}

	return body, nil
}

// Identify issues the protocol identity query against a host. A host is
// only considered a receiver if the response carries a parseable name.
func (c *Client) Identify(ctx context.Context, host string, port int) (core.DiscoveredHost, error) {
	raw := fmt.Sprintf("http://%s%s", net.JoinHostPort(host, fmt.Sprint(port)), InfoPath)
	body, err := c.GetURL(ctx, raw)
	if err != nil {
		return core.DiscoveredHost{}, err
	}

	name, ok := ExtractTag(string(body), "name")
	if !ok || name == "" {
		return core.DiscoveredHost{}, fmt.Errorf("identity query: %w", awerr.ErrUnparseable)
	}

	model, _ := ExtractTag(string(body), "model")
	return core.DiscoveredHost{
		Host:  host,
		Port:  port,
		Name:  name,
		Model: model,
	}, nil
}

// SelectPreset tells the receiver to play one of its stored presets.
// Fire-and-forget: the body is ignored beyond the success check.
func (c *Client) SelectPreset(ctx context.Context, r core.Receiver, remoteID string) error {
	_, err := c.Get(ctx, r, PresetPath+"?id="+url.QueryEscape(remoteID))
	return err
}

// PlayURL tells the receiver to play an arbitrary stream URL.
func (c *Client) PlayURL(ctx context.Context, r core.Receiver, streamURL string) error {
	_, err := c.Get(ctx, r, PlayPath+"?url="+url.QueryEscape(streamURL))
	return err
}

// Play resumes playback.
func (c *Client) Play(ctx context.Context, r core.Receiver) error {
	_, err := c.Get(ctx, r, PlayPath)
	return err
}

// Pause pauses playback.
func (c *Client) Pause(ctx context.Context, r core.Receiver) error {
	_, err := c.Get(ctx, r, PausePath)
	return err
}

// classifyTransportError maps low-level request failures onto the
// taxonomy sentinels while keeping the underlying detail.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", awerr.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", awerr.ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", awerr.ErrUnreachable, err)
}
