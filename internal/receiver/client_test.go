package receiver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
)

// testServerReceiver points a Receiver at an httptest server.
func testServerReceiver(t *testing.T, srv *httptest.Server) core.Receiver {
	t.Helper()
	host, portStr, err := net.SplitHostPort(srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("split server addr: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	return core.Receiver{Host: host, Port: port}
}

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != StatusPath {
			t.Errorf("path = %q, want %q", r.URL.Path, StatusPath)
		}
		_, _ = w.Write([]byte(`<status><state>play</state></status>`))
	}))
	defer srv.Close()

	client := NewClient(0, 0)
	body, err := client.Get(context.Background(), testServerReceiver(t, srv), StatusPath)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(body) != `<status><state>play</state></status>` {
		t.Errorf("body = %q", body)
	}
}

func TestClientGetNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(0, 0)
	_, err := client.Get(context.Background(), testServerReceiver(t, srv), StatusPath)

	var statusErr *awerr.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("status code = %d, want 500", statusErr.Code)
	}
}

func TestClientGetUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the port refuses connections

	client := NewClient(0, 0)
	_, err := client.Get(context.Background(), testServerReceiver(t, srv), StatusPath)
	if !errors.Is(err, awerr.ErrUnreachable) {
		t.Errorf("error = %v, want ErrUnreachable", err)
	}
}

func TestIdentify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != InfoPath {
			t.Errorf("path = %q, want %q", r.URL.Path, InfoPath)
		}
		_, _ = w.Write([]byte(`<info><name>Kitchen Radio</name><model>NP-2500</model></info>`))
	}))
	defer srv.Close()

	r := testServerReceiver(t, srv)
	client := NewClient(0, 0)

	host, err := client.Identify(context.Background(), r.Host, r.Port)
	if err != nil {
		t.Fatalf("Identify() error = %v", err)
	}
	if host.Name != "Kitchen Radio" {
		t.Errorf("name = %q", host.Name)
	}
	if host.Model != "NP-2500" {
		t.Errorf("model = %q", host.Model)
	}
	if host.Host != r.Host || host.Port != r.Port {
		t.Errorf("address = %s:%d, want %s:%d", host.Host, host.Port, r.Host, r.Port)
	}
}

func TestIdentifyRejectsNonReceiver(t *testing.T) {
	// A web server that answers 200 but is not a receiver must not be
	// reported as one.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>router admin page</body></html>`))
	}))
	defer srv.Close()

	r := testServerReceiver(t, srv)
	client := NewClient(0, 0)

	_, err := client.Identify(context.Background(), r.Host, r.Port)
	if !errors.Is(err, awerr.ErrUnparseable) {
		t.Errorf("error = %v, want ErrUnparseable", err)
	}
}

func TestSelectPresetEscapesID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`<ok/>`))
	}))
	defer srv.Close()

	client := NewClient(0, 0)
	if err := client.SelectPreset(context.Background(), testServerReceiver(t, srv), "3 a"); err != nil {
		t.Fatalf("SelectPreset() error = %v", err)
	}
	if gotQuery != "id=3+a" {
		t.Errorf("query = %q, want escaped id", gotQuery)
	}
}

func TestPlayURLEscapesStream(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		_, _ = w.Write([]byte(`<ok/>`))
	}))
	defer srv.Close()

	client := NewClient(0, 0)
	stream := "http://example.com/stream.mp3?bitrate=128"
	if err := client.PlayURL(context.Background(), testServerReceiver(t, srv), stream); err != nil {
		t.Fatalf("PlayURL() error = %v", err)
	}
	if gotURL != stream {
		t.Errorf("url param = %q, want %q", gotURL, stream)
	}
}
