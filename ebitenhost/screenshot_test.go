package ebitenhost

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	cases := map[string]string{
		"":                "unlabeled",
		"  ":              "unlabeled",
		"hero":            "hero",
		"services/card 2": "services_card_2",
		"v1.2-final":      "v1.2-final",
		"ünïcode":         "_n_code",
	}
	for in, want := range cases {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	px := []byte{
		128, 64, 0, 128, // half-alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(px, 3, 1)
	want := []byte{255, 127, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Pix[3] = 255
	if err := writePNG(path, src); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("width = %d, want 2", img.Bounds().Dx())
	}
}
