// MODUL: formats
// ZWECK: Bildformat-Erkennung und Validierung
// INPUT: Bild-Bytes oder Format-String
// OUTPUT: ImageFormat, Fehler bei ungueltigem Format
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Magic-Bytes-basierte Erkennung, JPEG/PNG/WebP/BMP/TIFF

package vision

import (
	"bytes"
	"errors"
)

// ImageFormat repraesentiert ein unterstuetztes Bildformat
type ImageFormat string

const (
	FormatJPEG    ImageFormat = "jpeg"
	FormatPNG     ImageFormat = "png"
	FormatWebP    ImageFormat = "webp"
	FormatBMP     ImageFormat = "bmp"
	FormatTIFF    ImageFormat = "tiff"
	FormatUnknown ImageFormat = "unknown"
)

var (
	ErrUnknownFormat     = errors.New("vision: unknown image format")
	ErrUnsupportedFormat = errors.New("vision: unsupported image format")
)

// formatInfo beschreibt Signatur und Metadaten eines Formats
type formatInfo struct {
	format ImageFormat
	magic  [][]byte
	mime   string
	ext    string
}

// Reihenfolge ist die Pruefreihenfolge in DetectFormat
var formats = []formatInfo{
	{FormatJPEG, [][]byte{{0xFF, 0xD8, 0xFF}}, "image/jpeg", ".jpg"},
	{FormatPNG, [][]byte{{0x89, 'P', 'N', 'G'}}, "image/png", ".png"},
	{FormatWebP, [][]byte{[]byte("RIFF")}, "image/webp", ".webp"},
	{FormatBMP, [][]byte{[]byte("BM")}, "image/bmp", ".bmp"},
	{FormatTIFF, [][]byte{{'I', 'I', 0x2A, 0x00}, {'M', 'M', 0x00, 0x2A}}, "image/tiff", ".tiff"},
}

func lookup(f ImageFormat) (formatInfo, bool) {
	for _, info := range formats {
		if info.format == f {
			return info, true
		}
	}
	return formatInfo{}, false
}

// DetectFormat erkennt das Bildformat anhand der Magic-Bytes
func DetectFormat(data []byte) ImageFormat {
	if len(data) < 4 {
		return FormatUnknown
	}

	for _, info := range formats {
		for _, magic := range info.magic {
			if !bytes.HasPrefix(data, magic) {
				continue
			}
			// RIFF ist ein Container, WebP erst ab "WEBP" an Offset 8
			if info.format == FormatWebP && (len(data) < 12 || !bytes.Equal(data[8:12], []byte("WEBP"))) {
				continue
			}
			return info.format
		}
	}

	return FormatUnknown
}

// ValidateFormat prueft ob ein Format unterstuetzt wird
func ValidateFormat(format ImageFormat) error {
	if format == FormatUnknown {
		return ErrUnknownFormat
	}
	if _, ok := lookup(format); !ok {
		return ErrUnsupportedFormat
	}
	return nil
}

// MimeType gibt den MIME-Type fuer ein Format zurueck
func (f ImageFormat) MimeType() string {
	if info, ok := lookup(f); ok {
		return info.mime
	}
	return "application/octet-stream"
}

// Extension gibt die Dateiendung fuer ein Format zurueck
func (f ImageFormat) Extension() string {
	if info, ok := lookup(f); ok {
		return info.ext
	}
	return ".bin"
}

func (f ImageFormat) String() string {
	return string(f)
}
