// Package format identifies the kind of input handed to folio.Open.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported input kind.
type Format int

const (
	// Unknown indicates an unrecognized input.
	Unknown Format = iota
	// Geometry indicates a JSON geometry dump.
	Geometry
	// PNG indicates a scanned page stored as PNG.
	PNG
	// JPEG indicates a scanned page stored as JPEG.
	JPEG
	// TIFF indicates a scanned page stored as TIFF.
	TIFF
	// BMP indicates a scanned page stored as BMP.
	BMP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Geometry:
		return "Geometry"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// IsImage reports whether the format is a raster page image that needs OCR.
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG || f == TIFF || f == BMP
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return Geometry
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine the format.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return Geometry
	}
	return Unknown
}

// Resolve prefers the magic bytes and falls back to the extension.
func Resolve(filename string, head []byte) Format {
	if f := DetectFromMagic(head); f != Unknown {
		return f
	}
	return Detect(filename)
}
