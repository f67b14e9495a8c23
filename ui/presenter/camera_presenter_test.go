package presenter

import (
	"testing"

	"github.com/classkit/badge-scan-go/domain/scan"
)

type mockModel struct{ active bool }

func (m *mockModel) Active() bool     { return m.active }
func (m *mockModel) SetActive(b bool) { m.active = b }

// mockSession implements the full session contract used by the container.
type mockSession struct {
	opened, stopped int
	decoded         []string
}

func (s *mockSession) OpenCamera()                     { s.opened++ }
func (s *mockSession) Stop()                           { s.stopped++ }
func (s *mockSession) DecodeImage(path string)         { s.decoded = append(s.decoded, path) }
func (s *mockSession) Current() scan.SessionState      { return scan.StateIdle }
func (s *mockSession) LatestFrame() scan.FrameSnapshot { return scan.FrameSnapshot{} }
func (s *mockSession) AddListener(scan.StateListener)  {}
func (s *mockSession) Close()                          {}

var _ scan.SessionContract = (*mockSession)(nil)

type mockView struct {
	reset       int
	shownActive []bool
}

func (v *mockView) ShowCameraActive(b bool) { v.shownActive = append(v.shownActive, b) }
func (v *mockView) PreviewReset()           { v.reset++ }

func TestCameraPresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockModel{}
	sess := &mockSession{}
	view := &mockView{}
	p := NewCameraPresenter(m, sess, view)

	p.Enable()
	p.Enable()
	if sess.opened != 1 {
		t.Fatalf("opened = %d, want 1", sess.opened)
	}
	if !m.Active() {
		t.Fatal("model not active after enable")
	}

	p.Disable()
	p.Disable()
	if sess.stopped != 1 {
		t.Fatalf("stopped = %d, want 1", sess.stopped)
	}
	if m.Active() {
		t.Fatal("model active after disable")
	}
	if view.reset != 1 {
		t.Fatalf("preview reset %d times, want 1", view.reset)
	}
}

func TestCameraPresenter_DecodeImageDropsCameraUI(t *testing.T) {
	m := &mockModel{}
	sess := &mockSession{}
	view := &mockView{}
	p := NewCameraPresenter(m, sess, view)

	p.Enable()
	p.DecodeImage("  /tmp/badge.png ")

	if m.Active() {
		t.Fatal("camera toggle still active during image decode")
	}
	if len(sess.decoded) != 1 || sess.decoded[0] != "/tmp/badge.png" {
		t.Fatalf("decoded = %v", sess.decoded)
	}
	if view.reset == 0 {
		t.Fatal("preview not reset on source switch")
	}
}

func TestCameraPresenter_DecodeImageIgnoresEmptyPath(t *testing.T) {
	m := &mockModel{}
	sess := &mockSession{}
	p := NewCameraPresenter(m, sess, &mockView{})

	p.DecodeImage("   ")
	if len(sess.decoded) != 0 {
		t.Fatalf("empty path forwarded: %v", sess.decoded)
	}
}
