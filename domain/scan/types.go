package scan

import (
	"image"
	"time"

	"github.com/classkit/badge-scan-go/decode"
)

// SessionState enumerates finite states of a decode session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateCameraStarting
	StateCameraActive
	StateScanning
	StateImageProcessing
	StateError
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCameraStarting:
		return "camera-starting"
	case StateCameraActive:
		return "camera-active"
	case StateScanning:
		return "scanning"
	case StateImageProcessing:
		return "image-processing"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// StateListener is called on each successful state transition.
type StateListener func(prev, next SessionState)

// Callbacks externalize session side effects: forwarding decode hits to the
// attendance store and pushing status text to the UI. An empty message
// clears the status line.
type Callbacks struct {
	OnResult  func(decode.Result)
	OnMessage func(msg string)
}

// FrameSnapshot is the latest frame pulled from the active stream, kept for
// the UI preview.
type FrameSnapshot struct {
	Image      image.Image
	CapturedAt time.Time
}

// Interface slices for consumers (presenters).
type StateSource interface{ Current() SessionState }
type CameraControl interface {
	OpenCamera()
	Stop()
}
type ImageControl interface{ DecodeImage(path string) }
type FrameSource interface{ LatestFrame() FrameSnapshot }

// SessionContract aggregate for DI.
type SessionContract interface {
	StateSource
	CameraControl
	ImageControl
	FrameSource
	AddListener(StateListener)
	Close()
}
