package presenter

import (
	"strings"

	"github.com/classkit/badge-scan-go/domain/scan"
)

// CameraStateModel provides camera toggle state access.
type CameraStateModel interface {
	Active() bool
	SetActive(bool)
}

// SessionControl narrows what the presenter needs from the scan session.
type SessionControl interface {
	OpenCamera()
	Stop()
	DecodeImage(path string)
}

// CameraView updates UI elements affected by source switching. Button
// visibility is owned here; the status/state labels belong to StatePresenter
// and RosterPresenter.
type CameraView interface {
	ShowCameraActive(bool)
	PreviewReset()
}

// CameraPresenter owns presentation logic for starting and stopping scan
// sources. Camera and image upload are mutually exclusive; requesting an
// image decode always drops the camera first.
type CameraPresenter struct {
	model   CameraStateModel
	session SessionControl
	view    CameraView
}

func NewCameraPresenter(model CameraStateModel, session scan.SessionContract, view CameraView) *CameraPresenter {
	return &CameraPresenter{model: model, session: session, view: view}
}

// Enable requests a camera session. Idempotent.
func (c *CameraPresenter) Enable() {
	if c == nil || c.model == nil || c.session == nil || c.view == nil {
		return
	}
	if c.model.Active() { // already on
		return
	}
	c.session.OpenCamera()
	c.model.SetActive(true)
	c.view.ShowCameraActive(true)
}

// Disable stops the camera session and resets the preview. Idempotent.
func (c *CameraPresenter) Disable() {
	if c == nil || c.model == nil || c.session == nil || c.view == nil {
		return
	}
	if !c.model.Active() { // already off
		return
	}
	c.session.Stop()
	c.model.SetActive(false)
	c.view.ShowCameraActive(false)
	c.view.PreviewReset()
}

// DecodeImage requests a one-shot decode of the given file. The camera UI is
// reset immediately; the session handles stream teardown on its side.
func (c *CameraPresenter) DecodeImage(path string) {
	if c == nil || c.model == nil || c.session == nil || c.view == nil {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	c.model.SetActive(false)
	c.view.ShowCameraActive(false)
	c.view.PreviewReset()
	c.session.DecodeImage(path)
}
