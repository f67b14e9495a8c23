package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_PassesValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Formats) == 0 {
		t.Fatal("default config has empty format allow-list")
	}
	if cfg.StopOnMatch {
		t.Fatal("stop-on-match must default to off")
	}
}

func TestValidate_ClampsBadValues(t *testing.T) {
	cfg := &Config{
		Formats:             nil,
		PreferredFacingMode: "sideways",
		IdealWidth:          -1,
		IdealHeight:         0,
		FrameIntervalMs:     1,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(cfg.Formats) == 0 {
		t.Fatal("expected format allow-list restored to defaults")
	}
	if cfg.PreferredFacingMode != "environment" {
		t.Fatalf("facing mode not normalized: %q", cfg.PreferredFacingMode)
	}
	if cfg.IdealWidth <= 0 || cfg.IdealHeight <= 0 {
		t.Fatalf("resolution not clamped: %dx%d", cfg.IdealWidth, cfg.IdealHeight)
	}
	if cfg.FrameIntervalMs < 20 {
		t.Fatalf("frame interval not clamped: %d", cfg.FrameIntervalMs)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.FrameIntervalMs != DefaultConfig().FrameIntervalMs {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scanner.json")
	cfg := DefaultConfig()
	cfg.StopOnMatch = true
	cfg.Formats = []string{"qr"}
	cfg.FrameIntervalMs = 250
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.StopOnMatch || loaded.FrameIntervalMs != 250 {
		t.Fatalf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Formats) != 1 || loaded.Formats[0] != "qr" {
		t.Fatalf("round trip lost formats: %v", loaded.Formats)
	}
}

func TestLoad_BadJSONReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
