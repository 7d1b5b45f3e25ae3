// MODUL: normalize_test
// ZWECK: Tests fuer Bild -> Array Konvertierung
// INPUT: Synthetische Bilder
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, image, layout
// HINWEISE: Prueft HWC-Layout und Zusammenspiel mit SpaceToDepth

package vision

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/7blacky7/s2d2s/layout"
)

func TestToUint8Array(t *testing.T) {
	img := newImageInput(gradient(3, 2), FormatPNG)
	a, err := ToUint8Array(img)
	require.NoError(t, err)

	if !a.Shape().Equal(layout.Shape{2, 3, 3}) {
		t.Fatalf("Shape = %v, erwartet (2, 3, 3)", a.Shape())
	}
	// Pixel (x=2, y=1)
	if r, g, b := a.At(1, 2, 0), a.At(1, 2, 1), a.At(1, 2, 2); r != 2 || g != 1 || b != 7 {
		t.Errorf("Pixel = (%d, %d, %d), erwartet (2, 1, 7)", r, g, b)
	}
}

func TestNormalizeArrayNone(t *testing.T) {
	rgba := gradient(2, 2)
	rgba.Set(0, 0, color.RGBA{255, 0, 0, 255})
	a, err := NormalizeArray(newImageInput(rgba, FormatPNG), NoNormMean, NoNormStd)
	require.NoError(t, err)

	if n := a.Len(); n != 12 {
		t.Errorf("Array Laenge = %d, erwartet 12", n)
	}
	if a.At(0, 0, 0) != 1.0 || a.At(0, 0, 1) != 0.0 || a.At(0, 0, 2) != 0.0 {
		t.Errorf("Pixel (0,0) = [%f %f %f], erwartet [1 0 0]", a.At(0, 0, 0), a.At(0, 0, 1), a.At(0, 0, 2))
	}
}

func TestNormalizeArray(t *testing.T) {
	rgba := gradient(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			rgba.Set(x, y, color.RGBA{127, 127, 127, 255})
		}
	}

	// (0.498 - 0.5) / 0.5 ~ -0.004
	a, err := NormalizeArray(newImageInput(rgba, FormatPNG), [3]float32{0.5, 0.5, 0.5}, [3]float32{0.5, 0.5, 0.5})
	require.NoError(t, err)
	for _, v := range a.Data() {
		if math.Abs(float64(v)) > 0.01 {
			t.Errorf("Normalisierter Wert = %f, erwartet ~0", v)
		}
	}
}

func TestToUint8ArraySubImage(t *testing.T) {
	// SubImage teilt den Puffer, Stride > Breite*4
	sub := gradient(6, 4).SubImage(image.Rect(2, 1, 4, 3)).(*image.RGBA)
	img := newImageInput(sub, FormatPNG)

	a, err := ToUint8Array(img)
	require.NoError(t, err)
	if !a.Shape().Equal(layout.Shape{2, 2, 3}) {
		t.Fatalf("Shape = %v, erwartet (2, 2, 3)", a.Shape())
	}
	// Offset (2, 1)
	if r, g := a.At(1, 1, 0), a.At(1, 1, 1); r != 3 || g != 2 {
		t.Errorf("Pixel = (%d, %d), erwartet (3, 2)", r, g)
	}
}

func TestNormalization(t *testing.T) {
	tests := []struct {
		name      string
		mean, std [3]float32
	}{
		{"none", NoNormMean, NoNormStd},
		{"imagenet", ImageNetMean, ImageNetStd},
		{"clip", ClipMean, ClipStd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, err := Normalization(tt.name)
			require.NoError(t, err)
			if mean != tt.mean || std != tt.std {
				t.Errorf("Normalization(%q) = %v, %v, erwartet %v, %v", tt.name, mean, std, tt.mean, tt.std)
			}
		})
	}

	_, _, err := Normalization("unbekannt")
	require.ErrorIs(t, err, ErrUnknownNormalization)

	require.Equal(t, []string{"clip", "imagenet", "none"}, Normalizations())
}

func TestNormalizeArrayImageNet(t *testing.T) {
	rgba := gradient(1, 1)
	rgba.Set(0, 0, color.RGBA{255, 0, 0, 255})

	a, err := NormalizeArray(newImageInput(rgba, FormatPNG), ImageNetMean, ImageNetStd)
	require.NoError(t, err)

	want := [3]float32{
		(1 - ImageNetMean[0]) / ImageNetStd[0],
		(0 - ImageNetMean[1]) / ImageNetStd[1],
		(0 - ImageNetMean[2]) / ImageNetStd[2],
	}
	for c, w := range want {
		if got := a.At(0, 0, c); math.Abs(float64(got-w)) > 1e-5 {
			t.Errorf("Kanal %d = %f, erwartet %f", c, got, w)
		}
	}
}

func TestImageSpaceToDepth(t *testing.T) {
	img, err := CropToMultiple(newImageInput(gradient(9, 5), FormatPNG), 2)
	require.NoError(t, err)

	x, err := ToUint8Array(img)
	require.NoError(t, err)
	y, err := layout.SpaceToDepth(x, 2)
	require.NoError(t, err)

	if !y.Shape().Equal(layout.Shape{2, 4, 12}) {
		t.Fatalf("Shape = %v, erwartet (2, 4, 12)", y.Shape())
	}
	// Block (1, 1), Position (bi=1, bj=0) -> Pixel (y=3, x=2) im Ausschnitt
	if got, want := y.At(1, 1, (1*2+0)*3), x.At(3, 2, 0); got != want {
		t.Errorf("y[1, 1, 6] = %d, erwartet %d", got, want)
	}
}
