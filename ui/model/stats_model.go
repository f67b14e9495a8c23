package model

import (
	"time"
)

// StatsModel tracks the current camera-session duration, the accumulated
// scanning time across sessions and the number of successful decodes. It is
// decoupled from the UI; presenters poll it and update views. The zero value
// is ready to use.
type StatsModel struct {
	scanning     bool
	sessionStart time.Time
	sessionDur   time.Duration
	accumulated  time.Duration
	hits         int
}

func NewStatsModel() *StatsModel { return &StatsModel{} }

// OnTick updates the model using the current scanning state and timestamp.
func (m *StatsModel) OnTick(scanning bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case scanning && !m.scanning:
		m.scanning = true
		m.sessionStart = now
		m.sessionDur = 0
	case scanning:
		m.sessionDur = now.Sub(m.sessionStart)
	case m.scanning:
		m.sessionDur = now.Sub(m.sessionStart)
		m.accumulated += m.sessionDur
		m.scanning = false
	}
}

// RecordHit counts one successful decode.
func (m *StatsModel) RecordHit() {
	if m == nil {
		return
	}
	m.hits++
}

// Durations returns the current session duration and the total scanning
// time. The total includes the ongoing session when active.
func (m *StatsModel) Durations() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.sessionDur
	total = m.accumulated
	if m.scanning {
		total += session
	}
	return
}

// Hits returns the number of successful decodes so far.
func (m *StatsModel) Hits() int {
	if m == nil {
		return 0
	}
	return m.hits
}
