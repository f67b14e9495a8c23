package presenter

import (
	"sync"
	"time"

	"github.com/classkit/badge-scan-go/domain/scan"
)

// StateSource provides the scan session methods the presenter requires.
type StateSource interface {
	Current() scan.SessionState
}

// StateView sets the session-state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives session transitions from the FSM listener and
// reflects the most recent one onto the view on each UI tick. It also
// reconciles the camera toggle when the session ends on its own (stop-on-
// match, camera errors), which no button press initiated.
type StatePresenter struct {
	eng     StateSource
	view    StateView
	camera  CameraStateModel
	camView CameraView
	latest  scan.SessionState
	seeded  bool

	// pending is appended from the FSM goroutine and drained on the Tk
	// thread tick.
	mu      sync.Mutex
	pending []scan.SessionState
}

func NewStatePresenter(eng StateSource, view StateView, camera CameraStateModel, camView CameraView) *StatePresenter {
	return &StatePresenter{eng: eng, view: view, camera: camera, camView: camView}
}

// OnState queues a transitioned state from the FSM listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *StatePresenter) OnState(s scan.SessionState) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, s)
	p.mu.Unlock()
}

// Tick processes queued states and updates the view with the most recent
// state. It clears the pending queue after processing.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.eng == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.mu.Unlock()
	if p.seeded && last == p.latest {
		return
	}
	p.latest = last
	p.seeded = true
	p.view.SetStateLabel("State: " + last.String())
	p.reconcileCamera(last)
}

func (p *StatePresenter) reconcileCamera(s scan.SessionState) {
	if p.camera == nil || p.camView == nil {
		return
	}
	active := false
	switch s {
	case scan.StateCameraStarting, scan.StateCameraActive, scan.StateScanning:
		active = true
	}
	if p.camera.Active() == active {
		return
	}
	p.camera.SetActive(active)
	p.camView.ShowCameraActive(active)
	if !active {
		p.camView.PreviewReset()
	}
}
