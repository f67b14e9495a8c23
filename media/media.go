// Package media abstracts video input acquisition: enumerate devices, open a
// stream under constraints, pull frames, release tracks. Failures here are
// user-visible availability errors, not decode noise.
package media

import (
	"errors"
	"image"
)

// ErrNoDevice indicates no video input device could be enumerated.
var ErrNoDevice = errors.New("media: no video input device found")

// ErrReleased is returned by Frame after the stream's tracks were released.
var ErrReleased = errors.New("media: stream released")

// Device identifies one enumerable video input.
type Device struct {
	ID    string
	Label string
}

// Constraints are the camera settings applied when opening a stream. They
// are built from config once per session, not hardcoded per call site.
type Constraints struct {
	DeviceID    string
	FacingMode  string // "environment" or "user"
	IdealWidth  int
	IdealHeight int
}

// Stream is an open video source. Release must be safe to call more than
// once; every session teardown path goes through it.
type Stream interface {
	Frame() (image.Image, error)
	Release()
}

// Provider enumerates video inputs and opens streams on them.
type Provider interface {
	VideoInputs() ([]Device, error)
	Open(c Constraints) (Stream, error)
}
