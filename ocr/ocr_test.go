//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// blankPage creates a white PNG with one dark bar.
func blankPage(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognizeRuns_BlankPage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}

	runs, err := client.RecognizeRuns(blankPage(200, 100))
	if err != nil {
		t.Skipf("Tesseract could not process the image: %v", err)
	}
	for _, r := range runs {
		if r.Text == "" {
			t.Error("Expected runs to carry text")
		}
	}
}

func TestNewTesseractSource_Language(t *testing.T) {
	src, err := NewTesseractSource(1, "eng", blankPage(200, 100))
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 1 {
		t.Errorf("Expected 1 page, got %d", src.PageCount())
	}
}
