// Package portal wires the almanac provider, catalog, and locale bundles
// into the HTTP gateway.
package portal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Config represents the configuration for the almanac portal.
type Config struct {
	// Server settings
	Port      int    `json:"port"`       // HTTP port for the gateway
	StaticDir string `json:"static_dir"` // Directory served at / (dashboard assets)

	// Ephemeris source settings
	CustomAPIURL      string        `json:"custom_api_url"`      // Operator endpoint speaking the almanac record shape (optional)
	USNOURL           string        `json:"usno_url"`            // Override for the public rise/set endpoint (optional)
	SwissEphemerisURL string        `json:"swiss_ephemeris_url"` // Swiss-ephemeris-style endpoint (optional)
	UseLocalAstronomy bool          `json:"use_local_astronomy"` // Compute observational data locally before falling back
	UseFallback       bool          `json:"use_fallback"`        // Keep the arithmetic fallback at the end of the chain
	APITimeout        time.Duration `json:"api_timeout"`         // Timeout for outbound source calls

	// Default location when a request carries no coordinates
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Live update settings
	BroadcastInterval time.Duration `json:"broadcast_interval"` // How often to push the current record to websocket clients

	// Logging settings
	LogLevel  string `json:"log_level"`  // Log level: debug, info, warn, error
	LogFormat string `json:"log_format"` // Log format: text, json
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Port:              8080,
		StaticDir:         "./web",
		CustomAPIURL:      "",
		USNOURL:           "",
		SwissEphemerisURL: "",
		UseLocalAstronomy: false,
		UseFallback:       true,
		APITimeout:        30 * time.Second,
		Latitude:          55.7558, // Moscow
		Longitude:         37.6173, // Moscow
		BroadcastInterval: 1 * time.Minute,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", c.Port)
	}

	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be greater than 0, got: %s", c.APITimeout)
	}

	if c.BroadcastInterval <= 0 {
		return fmt.Errorf("broadcast_interval must be greater than 0, got: %s", c.BroadcastInterval)
	}

	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got: %f", c.Latitude)
	}

	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got: %f", c.Longitude)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s, must be one of: debug, info, warn, error", c.LogLevel)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log_format: %s, must be one of: text, json", c.LogFormat)
	}

	return nil
}
