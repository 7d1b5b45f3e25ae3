// MODUL: image
// ZWECK: Bild-Lade- und Zuschneidefunktionen vor der Blockumordnung
// INPUT: Dateipfad, Bytes oder io.Reader
// OUTPUT: ImageInput Struktur mit dekodiertem RGBA-Bild
// NEBENEFFEKTE: Dateisystem-Lesezugriff bei LoadImage
// ABHAENGIGKEITEN: golang.org/x/image (draw, webp, bmp, tiff), image/jpeg, image/png
// HINWEISE: Alle Bilder werden als RGBA mit Ursprung (0,0) gespeichert

package vision

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// Standard-Decoder registrieren
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageInput enthaelt ein dekodiertes Bild mit Metadaten
type ImageInput struct {
	Image  *image.RGBA
	Width  int
	Height int
	Format ImageFormat
}

// LoadImage laedt ein Bild von einem Dateipfad
func LoadImage(path string) (*ImageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vision: read image: %w", err)
	}
	return LoadImageFromBytes(data)
}

// LoadImageFromBytes dekodiert ein Bild aus Byte-Daten
func LoadImageFromBytes(data []byte) (*ImageInput, error) {
	format := DetectFormat(data)
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("vision: decode %s: %w", format, err)
	}

	return newImageInput(toRGBA(img), format), nil
}

// DecodeImage dekodiert ein Bild aus einem io.Reader
func DecodeImage(r io.Reader) (*ImageInput, error) {
	// Erst puffern, Format-Erkennung braucht die ersten Bytes
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("vision: read image: %w", err)
	}
	return LoadImageFromBytes(data)
}

func newImageInput(rgba *image.RGBA, format ImageFormat) *ImageInput {
	b := rgba.Bounds()
	return &ImageInput{Image: rgba, Width: b.Dx(), Height: b.Dy(), Format: format}
}

// toRGBA konvertiert ein beliebiges image.Image zu *image.RGBA mit Ursprung (0,0)
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// CenterCrop schneidet einen zentrierten Bereich aus
func CenterCrop(img *ImageInput, width, height int) (*ImageInput, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vision: invalid crop size %dx%d", width, height)
	}
	if width > img.Width || height > img.Height {
		return nil, fmt.Errorf("vision: crop %dx%d larger than image %dx%d", width, height, img.Width, img.Height)
	}

	offsetX := (img.Width - width) / 2
	offsetY := (img.Height - height) / 2
	src := img.Image.Bounds().Min.Add(image.Pt(offsetX, offsetY))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img.Image, src, draw.Src)

	return newImageInput(dst, img.Format), nil
}

// CropToMultiple schneidet zentriert auf die groesste Breite und Hoehe zu,
// die durch blockSize teilbar sind
func CropToMultiple(img *ImageInput, blockSize int) (*ImageInput, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("vision: invalid block size %d", blockSize)
	}

	w := img.Width - img.Width%blockSize
	h := img.Height - img.Height%blockSize
	if w == img.Width && h == img.Height {
		return img, nil
	}
	return CenterCrop(img, w, h)
}
