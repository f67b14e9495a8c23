package images

import (
	"image"
	"testing"
)

func TestThumbnail_PreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	out := Thumbnail(src, 200, 200)
	b := out.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("scaled to %dx%d, want 200x100", b.Dx(), b.Dy())
	}
}

func TestThumbnail_SmallSourceUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 40))
	out := Thumbnail(src, 200, 200)
	if out != image.Image(src) {
		t.Fatal("small source should be returned unchanged")
	}
}

func TestEncodePNG_NilIsEmpty(t *testing.T) {
	if got := EncodePNG(nil); got != nil {
		t.Fatalf("EncodePNG(nil) = %d bytes", len(got))
	}
}
