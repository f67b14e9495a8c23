//go:build !windows

package media

import (
	"image"

	"github.com/vova616/screenshot"
)

// displayBounds returns the bounds of the primary display.
func displayBounds() (image.Rectangle, error) {
	return screenshot.ScreenRect()
}

// grabRect captures the given screen region.
func grabRect(r image.Rectangle) (image.Image, error) {
	return screenshot.CaptureRect(r)
}
