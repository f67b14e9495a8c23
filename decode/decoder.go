// Package decode wraps the external barcode decoding library behind a small
// boundary: a Decoder turns an image into decoded text, a Factory rebuilds a
// Decoder for each scan session with the configured symbology allow-list.
package decode

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"time"
)

// Symbology is a barcode encoding standard the decoder is told to look for.
type Symbology string

const (
	QRCode     Symbology = "qr"
	Code128    Symbology = "code128"
	EAN13      Symbology = "ean13"
	Code39     Symbology = "code39"
	UPCA       Symbology = "upca"
	DataMatrix Symbology = "datamatrix"
)

// ErrNotFound signals that no barcode was visible in the frame. It is
// expected per-frame noise during a camera session and is never surfaced.
var ErrNotFound = errors.New("decode: no barcode found")

// Result is the transient value produced by one successful decode attempt.
type Result struct {
	Text   string
	Format Symbology
	At     time.Time
}

// Decoder extracts barcode text from a single image.
type Decoder interface {
	Decode(img image.Image) (Result, error)
}

// Factory builds a fresh Decoder for the given allow-list. Scan sessions
// call it on every start so no decoder state survives between sessions.
type Factory func(hints []Symbology) (Decoder, error)

// ParseSymbologies maps config strings to symbologies. Unknown names error
// rather than being silently dropped.
func ParseSymbologies(names []string) ([]Symbology, error) {
	out := make([]Symbology, 0, len(names))
	for _, name := range names {
		s := Symbology(strings.ToLower(strings.TrimSpace(name)))
		switch s {
		case QRCode, Code128, EAN13, Code39, UPCA, DataMatrix:
			out = append(out, s)
		default:
			return nil, fmt.Errorf("decode: unknown symbology %q", name)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("decode: empty symbology allow-list")
	}
	return out, nil
}
