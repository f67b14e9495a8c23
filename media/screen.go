package media

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
)

const screenDeviceID = "screen:0"

// ScreenProvider treats the primary display as a video input: frames are
// screen captures of a centered region sized by the constraints. It lets the
// scanner pick up barcodes shown anywhere on the operator's screen. The
// capture backend is build-tagged: GDI on Windows, vova616/screenshot
// elsewhere.
type ScreenProvider struct {
	logger *slog.Logger
}

// NewScreenProvider returns a provider backed by the primary display.
func NewScreenProvider(logger *slog.Logger) *ScreenProvider {
	return &ScreenProvider{logger: logger}
}

// VideoInputs reports the primary display as a single device. A display that
// cannot be queried behaves like missing camera hardware.
func (p *ScreenProvider) VideoInputs() ([]Device, error) {
	if _, err := displayBounds(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	return []Device{{ID: screenDeviceID, Label: "Primary display"}}, nil
}

// Open acquires a stream over the screen region described by the constraints.
// The region is centered and clipped to the display bounds.
func (p *ScreenProvider) Open(c Constraints) (Stream, error) {
	if c.DeviceID != "" && c.DeviceID != screenDeviceID {
		return nil, fmt.Errorf("media: unknown device %q", c.DeviceID)
	}
	screen, err := displayBounds()
	if err != nil {
		return nil, fmt.Errorf("media: acquire display: %w", err)
	}
	rect := centeredRegion(screen, c.IdealWidth, c.IdealHeight)
	if p.logger != nil {
		p.logger.Debug("screen stream opened", "region", rect.String(), "facing", c.FacingMode)
	}
	return &screenStream{rect: rect, logger: p.logger}, nil
}

func centeredRegion(screen image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || w > screen.Dx() {
		w = screen.Dx()
	}
	if h <= 0 || h > screen.Dy() {
		h = screen.Dy()
	}
	x := screen.Min.X + (screen.Dx()-w)/2
	y := screen.Min.Y + (screen.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

type screenStream struct {
	rect     image.Rectangle
	released atomic.Bool
	logger   *slog.Logger
}

func (s *screenStream) Frame() (image.Image, error) {
	if s.released.Load() {
		return nil, ErrReleased
	}
	img, err := grabRect(s.rect)
	if err != nil {
		return nil, fmt.Errorf("media: capture frame: %w", err)
	}
	return img, nil
}

// Release marks the stream dead. Idempotent; later Frame calls fail with
// ErrReleased so a stale decode loop cannot keep capturing.
func (s *screenStream) Release() {
	if s.released.Swap(true) {
		return
	}
	if s.logger != nil {
		s.logger.Debug("screen stream released", "region", s.rect.String())
	}
}
