package view

import (
	"image"

	"github.com/classkit/badge-scan-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CameraPreview shows the latest frame pulled from the active stream.
type CameraPreview interface {
	UpdatePreview(img image.Image)
	Reset()
}

type cameraPreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance, deleted before replacement
}

const (
	maxPreviewW = 400
	maxPreviewH = 225
)

// NewCameraPreview creates the preview label at the given grid position.
func NewCameraPreview(row, col, colspan int) CameraPreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 120))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(col), Columnspan(colspan), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &cameraPreview{label: label, prevPhoto: photo}
}

func (v *cameraPreview) UpdatePreview(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	scaled := images.Thumbnail(img, maxPreviewW, maxPreviewH)
	pngBytes := images.EncodePNG(scaled)
	// Replace the previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

func (v *cameraPreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 120))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.label.Configure(Image(v.prevPhoto))
}
