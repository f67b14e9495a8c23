package decode

import (
	"fmt"
	"image"
	"time"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// zxingDecoder runs the gozxing readers for the session's allow-list against
// each frame, first hit wins. Reader order follows the allow-list order.
type zxingDecoder struct {
	readers []gozxing.Reader
	formats []Symbology
	hints   map[gozxing.DecodeHintType]interface{}
}

// NewZXing is the Factory for the gozxing-backed decoder.
func NewZXing(hints []Symbology) (Decoder, error) {
	if len(hints) == 0 {
		return nil, fmt.Errorf("decode: zxing needs at least one symbology")
	}
	d := &zxingDecoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
	for _, s := range hints {
		r, err := readerFor(s)
		if err != nil {
			return nil, err
		}
		d.readers = append(d.readers, r)
		d.formats = append(d.formats, s)
	}
	return d, nil
}

func readerFor(s Symbology) (gozxing.Reader, error) {
	switch s {
	case QRCode:
		return qrcode.NewQRCodeReader(), nil
	case Code128:
		return oned.NewCode128Reader(), nil
	case EAN13:
		return oned.NewEAN13Reader(), nil
	case Code39:
		return oned.NewCode39Reader(), nil
	case UPCA:
		return oned.NewUPCAReader(), nil
	case DataMatrix:
		return datamatrix.NewDataMatrixReader(), nil
	default:
		return nil, fmt.Errorf("decode: no zxing reader for symbology %q", s)
	}
}

func (d *zxingDecoder) Decode(img image.Image) (Result, error) {
	if img == nil {
		return Result{}, fmt.Errorf("decode: nil image")
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return Result{}, fmt.Errorf("decode: binarize frame: %w", err)
	}
	for i, r := range d.readers {
		res, err := r.Decode(bmp, d.hints)
		if err != nil {
			if isNoise(err) {
				continue
			}
			return Result{}, fmt.Errorf("decode: %s reader: %w", d.formats[i], err)
		}
		return Result{Text: res.GetText(), Format: d.formats[i], At: time.Now()}, nil
	}
	return Result{}, ErrNotFound
}

// isNoise classifies reader errors that just mean "nothing recognizable in
// this frame": not found, and near-miss checksum/format failures.
func isNoise(err error) bool {
	switch err.(type) {
	case gozxing.NotFoundException, gozxing.ChecksumException, gozxing.FormatException:
		return true
	}
	return false
}
