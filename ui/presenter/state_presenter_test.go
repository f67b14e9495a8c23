package presenter

import (
	"sync"
	"testing"
	"time"

	"github.com/classkit/badge-scan-go/domain/scan"
)

type mockStateSource struct{ state scan.SessionState }

func (m *mockStateSource) Current() scan.SessionState { return m.state }

type mockStateView struct{ labels []string }

func (v *mockStateView) SetStateLabel(s string) { v.labels = append(v.labels, s) }

func TestStatePresenter_FlushesLatestPendingState(t *testing.T) {
	src := &mockStateSource{}
	view := &mockStateView{}
	p := NewStatePresenter(src, view, nil, nil)

	p.OnState(scan.StateCameraStarting)
	p.OnState(scan.StateCameraActive)
	p.OnState(scan.StateScanning)
	p.Tick(time.Now())

	if len(view.labels) != 1 || view.labels[0] != "State: scanning" {
		t.Fatalf("labels = %v", view.labels)
	}

	// No pending states, no extra update.
	p.Tick(time.Now())
	if len(view.labels) != 1 {
		t.Fatalf("redundant label update: %v", view.labels)
	}
}

func TestStatePresenter_ReconcilesCameraOnExternalStop(t *testing.T) {
	src := &mockStateSource{}
	view := &mockStateView{}
	camModel := &mockModel{active: true}
	camView := &mockView{}
	p := NewStatePresenter(src, view, camModel, camView)

	// Session ended by stop-on-match, no button press involved.
	p.OnState(scan.StateIdle)
	p.Tick(time.Now())

	if camModel.Active() {
		t.Fatal("camera toggle not reconciled")
	}
	if len(camView.shownActive) == 0 || camView.shownActive[len(camView.shownActive)-1] {
		t.Fatalf("buttons not swapped back: %v", camView.shownActive)
	}
	if camView.reset == 0 {
		t.Fatal("preview not reset")
	}
}

func TestStatePresenter_ConcurrentOnStateAndTick(t *testing.T) {
	src := &mockStateSource{}
	p := NewStatePresenter(src, &mockStateView{}, nil, nil)

	// OnState arrives from the session goroutine while Tick runs on the UI
	// thread; both must be safe to interleave.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			p.OnState(scan.SessionState(i % 4))
		}
	}()
	for i := 0; i < 200; i++ {
		p.Tick(time.Now())
	}
	wg.Wait()
	p.Tick(time.Now()) // drain the tail
}

func TestStatePresenter_ErrorStateDeactivatesCamera(t *testing.T) {
	src := &mockStateSource{}
	camModel := &mockModel{active: true}
	camView := &mockView{}
	p := NewStatePresenter(src, &mockStateView{}, camModel, camView)

	p.OnState(scan.StateError)
	p.Tick(time.Now())

	if camModel.Active() {
		t.Fatal("camera toggle active after session error")
	}
}
