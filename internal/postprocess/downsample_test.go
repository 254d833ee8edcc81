package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 80, 60))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}

	dst := Downsample(src, 40, 30)
	if b := dst.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("Downsample size %dx%d; expected 40x30", b.Dx(), b.Dy())
	}
	if a := dst.NRGBAAt(20, 15).A; a < 250 {
		t.Errorf("alpha %d after downsampling an opaque image; expected ~255", a)
	}
}

func TestDownsampleKeepsLineColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	cyan := color.NRGBA{0, 255, 255, 255}
	for x := 0; x < 40; x++ {
		src.SetNRGBA(x, 20, cyan)
		src.SetNRGBA(x, 21, cyan)
	}

	dst := Downsample(src, 20, 20)
	c := dst.NRGBAAt(10, 10)
	if c.A == 0 {
		t.Fatal("line vanished after downsampling")
	}
	if c.R > 16 || c.G < 200 || c.B < 200 {
		t.Errorf("line color %v drifted from cyan", c)
	}
}

func TestDownsampleNoop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if dst := Downsample(src, 10, 10); dst != src {
		t.Error("Downsample copied an image that was already small enough")
	}
}
