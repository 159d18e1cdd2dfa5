package ocr

import (
	"context"
	"fmt"
	"sync"

	"github.com/tsawler/folio/model"
)

// Recognizer turns an encoded image into positioned text runs.
// *Client implements it.
type Recognizer interface {
	RecognizeRuns(imageData []byte) ([]model.TextRun, error)
}

// Source serves scanned page images as raw pages. It implements
// source.Source; recognized runs are reported in original image pixels.
// Recognition is serialized because a Tesseract client is not safe for
// concurrent use.
type Source struct {
	mu         sync.Mutex
	images     [][]byte
	recognizer Recognizer
	scale      float64
	closer     func() error
}

// NewSource creates a source over page images using recognizer.
// scale is passed to Prepare for every page.
func NewSource(recognizer Recognizer, scale float64, images ...[]byte) *Source {
	return &Source{images: images, recognizer: recognizer, scale: scale}
}

// NewTesseractSource creates a source backed by a new Tesseract client,
// which is closed by Close. lang selects the Tesseract language data
// ("eng+fra" for several); an empty lang keeps the engine default.
func NewTesseractSource(scale float64, lang string, images ...[]byte) (*Source, error) {
	client, err := New()
	if err != nil {
		return nil, err
	}
	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set OCR language %q: %w", lang, err)
		}
	}
	s := NewSource(client, scale, images...)
	s.closer = client.Close
	return s, nil
}

// PageCount returns the number of page images
func (s *Source) PageCount() int {
	return len(s.images)
}

// Page recognizes the page image at index
func (s *Source) Page(ctx context.Context, index int) (*model.RawPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.images) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(s.images))
	}

	img, err := Prepare(s.images[index], s.scale)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", index+1, err)
	}

	s.mu.Lock()
	runs, err := s.recognizer.RecognizeRuns(img.PNG)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", index+1, err)
	}

	for i := range runs {
		runs[i].BBox = model.NewBBox(
			runs[i].BBox.X0/img.Scale, runs[i].BBox.Y0/img.Scale,
			runs[i].BBox.X1/img.Scale, runs[i].BBox.Y1/img.Scale,
		)
		runs[i].FontSize /= img.Scale
	}

	return &model.RawPage{
		Number: index + 1,
		Width:  img.Width,
		Height: img.Height,
		Runs:   runs,
	}, nil
}

// Close releases the recognizer if this source owns it
func (s *Source) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}
