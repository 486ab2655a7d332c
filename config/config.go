package config

import (
	"encoding/json"
	"os"
)

// Page identifies one of the application's views
type Page int

const (
	PageHome Page = iota
	PageListings
	PageDetails
	PageFavorites
	PageDashboard
)

// ClickableArea represents a clickable region for mouse support
type ClickableArea struct {
	X, Y          int
	Width, Height int
	ListingID     string
}

// Config represents the application configuration
type Config struct {
	Bridges []BridgeEndpoint `json:"bridges"`
	Logger  bool             `json:"logger"`
}

// BridgeEndpoint represents a wallet bridge RPC endpoint
type BridgeEndpoint struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Bridges: []BridgeEndpoint{
			{
				Name:   "Local MetaMask Bridge",
				URL:    "ws://127.0.0.1:8546",
				Active: true,
			},
		},
		Logger: false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	// Try to read existing config
	data, err := os.ReadFile(path)
	if err != nil {
		// File doesn't exist, create default
		cfg := DefaultConfig()
		Save(path, cfg)
		return cfg
	}

	// Parse existing config
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid config, return default
		return DefaultConfig()
	}

	return cfg
}

// ActiveBridgeURL returns the URL of the active bridge endpoint, or ""
func (c Config) ActiveBridgeURL() string {
	for _, b := range c.Bridges {
		if b.Active {
			return b.URL
		}
	}
	return ""
}
