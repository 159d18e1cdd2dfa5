package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	// Decoders for the formats scanners commonly produce
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PreparedImage is a page image ready for recognition
type PreparedImage struct {
	PNG    []byte  // Re-encoded image data
	Width  float64 // Original width in pixels
	Height float64 // Original height in pixels
	Scale  float64 // Factor applied to the original before encoding
}

// Prepare decodes a PNG, JPEG, TIFF or BMP page image and re-encodes it as
// PNG, upscaling by scale first when scale > 1. Small scans recognize
// noticeably better at twice their size.
func Prepare(data []byte, scale float64) (*PreparedImage, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	out := src
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0,
			int(float64(bounds.Dx())*scale),
			int(float64(bounds.Dy())*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		out = dst
	} else {
		scale = 1
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &PreparedImage{
		PNG:    buf.Bytes(),
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
		Scale:  scale,
	}, nil
}
