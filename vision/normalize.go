// MODUL: normalize
// ZWECK: Bild -> HWC Array Konvertierung mit optionaler Normalisierung
// INPUT: ImageInput, Normalisierungs-Parameter (mean, std) oder Preset-Name
// OUTPUT: layout.Array im (H, W, 3) Layout
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: layout
// HINWEISE: Alpha-Kanal wird verworfen, CHW ueber layout.ToCHW

package vision

import (
	"errors"
	"fmt"
	"slices"

	"github.com/7blacky7/s2d2s/layout"
)

var ErrUnknownNormalization = errors.New("vision: unknown normalization")

// Standard-Normalisierungswerte
var (
	// ImageNet Default (ResNet, EfficientNet, etc.)
	ImageNetMean = [3]float32{0.485, 0.456, 0.406}
	ImageNetStd  = [3]float32{0.229, 0.224, 0.225}

	// CLIP Default
	ClipMean = [3]float32{0.48145466, 0.4578275, 0.40821073}
	ClipStd  = [3]float32{0.26862954, 0.26130258, 0.27577711}

	// Keine Normalisierung (nur Skalierung auf [0,1])
	NoNormMean = [3]float32{0, 0, 0}
	NoNormStd  = [3]float32{1, 1, 1}
)

var presets = map[string][2][3]float32{
	"none":     {NoNormMean, NoNormStd},
	"imagenet": {ImageNetMean, ImageNetStd},
	"clip":     {ClipMean, ClipStd},
}

// Normalizations gibt die bekannten Preset-Namen sortiert zurueck
func Normalizations() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Normalization gibt mean und std fuer einen Preset-Namen zurueck
func Normalization(name string) (mean, std [3]float32, err error) {
	p, ok := presets[name]
	if !ok {
		return mean, std, fmt.Errorf("%w: %q", ErrUnknownNormalization, name)
	}
	return p[0], p[1], nil
}

// ToUint8Array gibt die RGB-Rohwerte als (H, W, 3) Array zurueck
func ToUint8Array(img *ImageInput) (*layout.Array[uint8], error) {
	data := make([]uint8, 0, img.Width*img.Height*3)
	rgba := img.Image
	for y := 0; y < img.Height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+img.Width*4]
		for x := 0; x < len(row); x += 4 {
			data = append(data, row[x], row[x+1], row[x+2])
		}
	}
	return layout.FromSlice(data, img.Height, img.Width, 3)
}

// NormalizeArray skaliert auf [0,1] und wendet (v - mean) / std pro Kanal an
func NormalizeArray(img *ImageInput, mean, std [3]float32) (*layout.Array[float32], error) {
	data := make([]float32, 0, img.Width*img.Height*3)
	rgba := img.Image
	for y := 0; y < img.Height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+img.Width*4]
		for x := 0; x < len(row); x += 4 {
			for c := 0; c < 3; c++ {
				v := float32(row[x+c]) / 255.0
				data = append(data, (v-mean[c])/std[c])
			}
		}
	}
	return layout.FromSlice(data, img.Height, img.Width, 3)
}

// Dimensions gibt die Bild-Dimensionen als (H, W, C) zurueck
func (img *ImageInput) Dimensions() (int, int, int) {
	return img.Height, img.Width, 3
}
