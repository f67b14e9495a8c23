package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds runtime configuration for scanning and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Barcode symbologies the decoder is told to look for. The decoder and
	// this allow-list are rebuilt on every session start, never cached.
	Formats []string `json:"formats"`

	// Camera constraints applied when a video input is opened.
	PreferredFacingMode string `json:"preferred_facing_mode"` // "environment" or "user"
	IdealWidth          int    `json:"ideal_width"`
	IdealHeight         int    `json:"ideal_height"`

	// Milliseconds between decode attempts while a camera session runs.
	FrameIntervalMs int `json:"frame_interval_ms"`

	// StopOnMatch ends the camera session after a successful decode.
	// Off by default: the session keeps scanning after a hit.
	StopOnMatch bool `json:"stop_on_match"`

	// Path to a roster JSON file. Empty means the embedded roster.
	RosterPath string `json:"roster_path"`
}

// DefaultFormats is the symbology allow-list used when none is configured.
var DefaultFormats = []string{"qr", "code128", "ean13", "code39", "upca", "datamatrix"}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:               false,
		Formats:             append([]string(nil), DefaultFormats...),
		PreferredFacingMode: "environment",
		IdealWidth:          1280,
		IdealHeight:         720,
		FrameIntervalMs:     100,
		StopOnMatch:         false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if len(c.Formats) == 0 {
		c.Formats = append([]string(nil), DefaultFormats...)
	}
	if c.PreferredFacingMode != "environment" && c.PreferredFacingMode != "user" {
		c.PreferredFacingMode = "environment"
	}
	if c.IdealWidth <= 0 {
		c.IdealWidth = 1280
	}
	if c.IdealHeight <= 0 {
		c.IdealHeight = 720
	}
	if c.FrameIntervalMs < 20 {
		c.FrameIntervalMs = 100
	}
	return nil
}

// FrameInterval returns the decode-loop pacing as a duration.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
