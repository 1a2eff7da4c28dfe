package dotgrid

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("size %dx%d, want 4x3", pm.Width(), pm.Height())
	}

	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	pm.SetPixel(2, 1, c)
	got := pm.GetPixel(2, 1)

	// Roundtrip quantizes to 8 bits per channel.
	const eps = 1.0 / 255
	if math.Abs(got.R-c.R) > eps || math.Abs(got.G-c.G) > eps ||
		math.Abs(got.B-c.B) > eps || math.Abs(got.A-c.A) > eps {
		t.Errorf("roundtrip = %+v, want ~%+v", got, c)
	}
}

func TestPixmapOutOfRange(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(-1, 0, RGB(1, 0, 0))
	pm.SetPixel(2, 0, RGB(1, 0, 0))
	pm.SetPixel(0, 5, RGB(1, 0, 0))

	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("out-of-range SetPixel wrote into the buffer")
		}
	}
	if got := pm.GetPixel(7, 7); got != (RGBA{}) {
		t.Errorf("out-of-range GetPixel = %+v, want zero", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(RGB(1, 1, 1))
	for _, b := range pm.Data() {
		if b != 255 {
			t.Fatal("Clear did not fill every byte")
		}
	}
}

func TestPixmapToImageCopies(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, RGB(1, 0, 0))
	img := pm.ToImage()

	// The image must not alias the pixmap's storage.
	pm.SetPixel(0, 0, RGB(0, 1, 0))
	if img.Pix[0] != 255 || img.Pix[1] != 0 {
		t.Error("ToImage shares storage with the pixmap")
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(8, 6)
	pm.Clear(RGB(0.5, 0.5, 0.5))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded size %dx%d, want 8x6", b.Dx(), b.Dy())
	}
}
