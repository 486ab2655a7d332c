package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	if len(cfg.Bridges) != 0 || cfg.Logger {
		t.Errorf("expected zero config for missing file, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	in := Config{
		Bridges: []BridgeEndpoint{
			{Name: "Bridge A", URL: "ws://127.0.0.1:8546", Active: true},
			{Name: "Bridge B", URL: "ws://127.0.0.1:9546", Active: false},
		},
		Logger: true,
	}
	Save(path, in)

	out := Load(path)
	if len(out.Bridges) != 2 {
		t.Fatalf("expected 2 bridges, got %d", len(out.Bridges))
	}
	if out.Bridges[0].Name != "Bridge A" || !out.Bridges[0].Active {
		t.Errorf("first bridge mismatch: %+v", out.Bridges[0])
	}
	if !out.Logger {
		t.Error("Logger flag not round-tripped")
	}
}

func TestLoadOrCreateWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := LoadOrCreate(path)
	if len(cfg.Bridges) == 0 {
		t.Fatal("default config has no bridges")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config was not written: %v", err)
	}

	// Second call reads the file it just wrote
	again := LoadOrCreate(path)
	if again.Bridges[0].URL != cfg.Bridges[0].URL {
		t.Errorf("reloaded config differs: %q vs %q", again.Bridges[0].URL, cfg.Bridges[0].URL)
	}
}

func TestLoadOrCreateInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadOrCreate(path)
	if len(cfg.Bridges) == 0 {
		t.Error("expected default config for invalid JSON")
	}
}

func TestActiveBridgeURL(t *testing.T) {
	cfg := Config{Bridges: []BridgeEndpoint{
		{Name: "A", URL: "ws://a", Active: false},
		{Name: "B", URL: "ws://b", Active: true},
	}}
	if got := cfg.ActiveBridgeURL(); got != "ws://b" {
		t.Errorf("ActiveBridgeURL() = %q, want ws://b", got)
	}

	if got := (Config{}).ActiveBridgeURL(); got != "" {
		t.Errorf("empty config ActiveBridgeURL() = %q, want empty", got)
	}
}
