package model

import (
	"sync/atomic"
)

// CameraModel tracks whether a camera session is wanted. The zero value is
// inactive and usable. Concurrency-safe via atomic Bool because UI callbacks
// and FSM listeners may race.
type CameraModel struct{ active atomic.Bool }

// Active reports whether the camera is currently toggled on.
func (m *CameraModel) Active() bool {
	if m == nil {
		return false
	}
	return m.active.Load()
}

// SetActive stores the active flag.
func (m *CameraModel) SetActive(b bool) {
	if m == nil {
		return
	}
	prev := m.active.Load()
	if prev == b { // no change
		return
	}
	m.active.Store(b)
}
