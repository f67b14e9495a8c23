package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/classkit/badge-scan-go/app"
	"github.com/classkit/badge-scan-go/assets"
	"github.com/classkit/badge-scan-go/config"
	"github.com/classkit/badge-scan-go/domain/attendance"
)

func main() {
	cfgPath := flag.String("config", "badge-scan.json", "path to the config file")
	debug := flag.Bool("debug", false, "enable debug metric loggers")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// Defaults are still usable; report and continue.
		slog.Warn("config load failed, using defaults", slog.String("path", *cfgPath), slog.String("err", err.Error()))
	}
	if *debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	roster, err := loadRoster(cfg)
	if err != nil {
		logger.Error("roster load failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	application := app.NewApp("Badge Scan", 900, 700, cfg, logger, roster)
	application.Start()
}

// loadRoster reads the configured roster file, falling back to the embedded
// sample roster when no path is set.
func loadRoster(cfg *config.Config) ([]attendance.Student, error) {
	if cfg.RosterPath != "" {
		return attendance.LoadRoster(cfg.RosterPath)
	}
	return assets.Roster()
}
