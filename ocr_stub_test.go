//go:build !ocr

package folio

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/folio/ocr"
)

func TestOpen_ImageWithoutOCR(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_, _, err := Open(path).Document()
	if !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got %v", err)
	}

	_, _, err = Open(path).OCRLanguage("eng+fra").OCRScale(1).Document()
	if !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled with a language set, got %v", err)
	}
}
