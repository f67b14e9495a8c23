package decode

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	qr "github.com/skip2/go-qrcode"
)

func TestParseSymbologies(t *testing.T) {
	got, err := ParseSymbologies([]string{"QR", " code128 ", "ean13"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Symbology{QRCode, Code128, EAN13}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parse[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseSymbologies_Errors(t *testing.T) {
	if _, err := ParseSymbologies([]string{"qr", "pdf417"}); err == nil {
		t.Fatal("expected error for unsupported symbology")
	}
	if _, err := ParseSymbologies(nil); err == nil {
		t.Fatal("expected error for empty allow-list")
	}
}

func TestNewZXing_RejectsEmptyHints(t *testing.T) {
	if _, err := NewZXing(nil); err == nil {
		t.Fatal("expected error for empty hints")
	}
}

func TestZXing_DecodesGeneratedQR(t *testing.T) {
	raw, err := qr.Encode("S1", qr.Medium, 256)
	if err != nil {
		t.Fatalf("encode qr: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	d, err := NewZXing([]Symbology{QRCode, Code128})
	if err != nil {
		t.Fatalf("new decoder: %v", err)
	}
	res, err := d.Decode(img)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Text != "S1" {
		t.Fatalf("decoded text = %q, want %q", res.Text, "S1")
	}
	if res.Format != QRCode {
		t.Fatalf("decoded format = %v, want %v", res.Format, QRCode)
	}
}

func TestZXing_BlankFrameIsNotFound(t *testing.T) {
	blank := image.NewRGBA(image.Rect(0, 0, 64, 64))
	d, err := NewZXing([]Symbology{QRCode})
	if err != nil {
		t.Fatalf("new decoder: %v", err)
	}
	if _, err := d.Decode(blank); err != ErrNotFound {
		t.Fatalf("blank frame error = %v, want ErrNotFound", err)
	}
}
