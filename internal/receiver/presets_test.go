package receiver

import (
	"errors"
	"testing"

	"github.com/airwave-cli/airwave/internal/core"
	awerr "github.com/airwave-cli/airwave/internal/errors"
)

var testReceiver = core.Receiver{Host: "192.168.1.40", Port: 8080, Label: "Kitchen"}

func TestParsePresets(t *testing.T) {
	body := `<presets>
		<preset id="1" name="Jazz24" url="http://example.com/jazz.mp3" image="http://example.com/jazz.png"/>
		<preset id="2" name="Classic FM" url="vTuner:s12345"/>
		<preset id="3" name="Aux In" url="Capture:aux"/>
	</presets>`

	presets, err := parsePresets(testReceiver, body)
	if err != nil {
		t.Fatalf("parsePresets() error = %v", err)
	}
	if len(presets) != 3 {
		t.Fatalf("got %d presets, want 3", len(presets))
	}

	first := presets[0]
	if first.ID != "192.168.1.40:8080/1" {
		t.Errorf("composite ID = %q", first.ID)
	}
	if first.RemoteID != "1" || first.Name != "Jazz24" {
		t.Errorf("first preset = %+v", first)
	}
	if first.URL != "http://example.com/jazz.mp3" {
		t.Errorf("first URL = %q", first.URL)
	}
	if first.ImageURL != "http://example.com/jazz.png" {
		t.Errorf("first image = %q", first.ImageURL)
	}

	// Device order preserved
	if presets[1].RemoteID != "2" || presets[2].RemoteID != "3" {
		t.Errorf("order not preserved: %v, %v", presets[1].RemoteID, presets[2].RemoteID)
	}
}

func TestParsePresetsSkipsEntriesWithoutID(t *testing.T) {
	body := `<presets>
		<preset id="1" name="Jazz24"/>
		<preset name="Broken"/>
	</presets>`

	presets, err := parsePresets(testReceiver, body)
	if err != nil {
		t.Fatalf("parsePresets() error = %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("got %d presets, want 1", len(presets))
	}
	if presets[0].Name != "Jazz24" {
		t.Errorf("kept preset = %+v", presets[0])
	}
}

func TestParsePresetsEmptyCatalog(t *testing.T) {
	// A listing with no entries is a valid empty catalog, not a failure.
	presets, err := parsePresets(testReceiver, `<presets></presets>`)
	if err != nil {
		t.Fatalf("parsePresets() error = %v, want nil for empty catalog", err)
	}
	if len(presets) != 0 {
		t.Errorf("got %d presets, want 0", len(presets))
	}
}

func TestParsePresetsUnparseableBody(t *testing.T) {
	_, err := parsePresets(testReceiver, `<html><body>Internal Server Error</body></html>`)
	if !errors.Is(err, awerr.ErrUnparseable) {
		t.Errorf("error = %v, want ErrUnparseable", err)
	}
}
