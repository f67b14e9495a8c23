package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// ScanStats displays session/total scanning durations and the decode count.
type ScanStats interface {
	SetStats(session, total time.Duration, hits int)
}

type scanStats struct {
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
	hitsLbl    *LabelWidget
}

// NewScanStats creates the stat labels on one grid row starting at startCol.
func NewScanStats(row, startCol int) ScanStats {
	s := &scanStats{
		sessionLbl: Label(Width(14)),
		totalLbl:   Label(Width(14)),
		hitsLbl:    Label(Width(12)),
	}
	Grid(s.sessionLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	Grid(s.hitsLbl, Row(row), Column(startCol+2), Sticky("w"), Padx("0.2m"))
	s.SetStats(0, 0, 0)
	return s
}

func (s *scanStats) SetStats(session, total time.Duration, hits int) {
	if s == nil {
		return
	}
	if s.sessionLbl != nil {
		s.sessionLbl.Configure(Txt("Session: " + clock(session)))
	}
	if s.totalLbl != nil {
		s.totalLbl.Configure(Txt("Total: " + clock(total)))
	}
	if s.hitsLbl != nil {
		s.hitsLbl.Configure(Txt(fmt.Sprintf("Scans: %d", hits)))
	}
}

func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
