package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"factsheet.json", Geometry},
		{"FACTSHEET.JSON", Geometry},
		{"scan.png", PNG},
		{"scan.jpg", JPEG},
		{"scan.jpeg", JPEG},
		{"scan.tif", TIFF},
		{"scan.tiff", TIFF},
		{"scan.bmp", BMP},
		{"report.pdf", Unknown},
		{"noext", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), PNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, JPEG},
		{"tiff little endian", []byte("II*\x00...."), TIFF},
		{"tiff big endian", []byte("MM\x00*...."), TIFF},
		{"bmp", []byte("BM6\x00\x00"), BMP},
		{"json", []byte("  \n{\"pages\": []}"), Geometry},
		{"pdf", []byte("%PDF-1.7"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	// magic bytes win over a misleading extension
	if got := Resolve("scan.json", []byte("\x89PNG\r\n\x1a\n")); got != PNG {
		t.Errorf("Expected PNG, got %v", got)
	}
	if got := Resolve("scan.tif", []byte("garbage")); got != TIFF {
		t.Errorf("Expected TIFF, got %v", got)
	}
}

func TestFormat_IsImage(t *testing.T) {
	for _, f := range []Format{PNG, JPEG, TIFF, BMP} {
		if !f.IsImage() {
			t.Errorf("%v should be an image format", f)
		}
	}
	if Geometry.IsImage() || Unknown.IsImage() {
		t.Error("Geometry and Unknown are not image formats")
	}
}
