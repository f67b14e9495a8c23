package presenter

import (
	"image"

	"github.com/classkit/badge-scan-go/domain/scan"
)

// PreviewSource supplies the most recent frame pulled from the camera stream.
type PreviewSource interface {
	LatestFrame() scan.FrameSnapshot
}

// PreviewView describes the frame surface updated by the presenter.
type PreviewView interface {
	UpdatePreview(img image.Image)
}

// PreviewPresenter throttles camera frames into the UI preview. Frames are
// skipped while the camera is off or no new capture arrived.
type PreviewPresenter struct {
	camera CameraStateModel
	source PreviewSource
	view   PreviewView
	last   scan.FrameSnapshot
}

func NewPreviewPresenter(camera CameraStateModel, source PreviewSource, view PreviewView) *PreviewPresenter {
	return &PreviewPresenter{camera: camera, source: source, view: view}
}

// Tick pushes the latest frame to the view when one is available.
func (p *PreviewPresenter) Tick() {
	if p == nil || p.camera == nil || p.source == nil || p.view == nil {
		return
	}
	if !p.camera.Active() {
		return
	}
	snap := p.source.LatestFrame()
	if snap.Image == nil || snap.CapturedAt.Equal(p.last.CapturedAt) {
		return
	}
	p.last = snap
	p.view.UpdatePreview(snap.Image)
}
