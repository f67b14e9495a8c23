// Command badgegen renders one QR badge PNG per roster entry. The encoded
// payload is the student ID, which the scanner matches against the roster.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/classkit/badge-scan-go/assets"
	"github.com/classkit/badge-scan-go/domain/attendance"
)

func main() {
	rosterPath := flag.String("roster", "", "roster JSON file (empty: embedded sample roster)")
	outDir := flag.String("out", "badges", "output directory for badge PNGs")
	size := flag.Int("size", 512, "badge size in pixels")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var (
		roster []attendance.Student
		err    error
	)
	if *rosterPath != "" {
		roster, err = attendance.LoadRoster(*rosterPath)
	} else {
		roster, err = assets.Roster()
	}
	if err != nil {
		logger.Error("roster load failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("output dir", slog.String("err", err.Error()))
		os.Exit(1)
	}

	failed := 0
	for _, s := range roster {
		path := filepath.Join(*outDir, s.ID+".png")
		if err := qrcode.WriteFile(s.ID, qrcode.Medium, *size, path); err != nil {
			logger.Error("badge write failed", slog.String("id", s.ID), slog.String("err", err.Error()))
			failed++
			continue
		}
		logger.Info("badge written", slog.String("id", s.ID), slog.String("path", path))
	}
	if failed > 0 {
		os.Exit(1)
	}
}
