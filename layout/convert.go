// MODUL: convert
// ZWECK: Layout-Konvertierung (HWC <-> CHW) und Elementtyp-Konvertierung
// INPUT: 3-D Arrays, Konvertierungsfunktionen
// OUTPUT: Neue Arrays im Ziel-Layout bzw. Ziel-Typ
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: github.com/x448/float16 (extern)
// HINWEISE: float16 wird fuer speichersparende Zwischenpuffer verwendet

package layout

import (
	"github.com/x448/float16"
)

// ToCHW konvertiert (H, W, C) zu (C, H, W).
func ToCHW[T Element](x *Array[T]) (*Array[T], error) {
	h, w, c, err := dimsHWC("to chw", x)
	if err != nil {
		return nil, err
	}
	data := permute(x.data, []int{h, w, c}, []int{2, 0, 1})
	return &Array[T]{shape: Shape{c, h, w}, data: data}, nil
}

// ToHWC konvertiert (C, H, W) zu (H, W, C).
func ToHWC[T Element](x *Array[T]) (*Array[T], error) {
	c, h, w, err := dimsHWC("to hwc", x)
	if err != nil {
		return nil, err
	}
	data := permute(x.data, []int{c, h, w}, []int{1, 2, 0})
	return &Array[T]{shape: Shape{h, w, c}, data: data}, nil
}

// Map wendet fn elementweise an, die Shape bleibt erhalten.
func Map[S, D Element](x *Array[S], fn func(S) D) *Array[D] {
	data := make([]D, len(x.data))
	for i, v := range x.data {
		data[i] = fn(v)
	}
	return &Array[D]{shape: x.shape.Clone(), data: data}
}

// ToFloat16 konvertiert ein float32 Array nach IEEE 754 half precision.
func ToFloat16(x *Array[float32]) *Array[float16.Float16] {
	return Map(x, float16.Fromfloat32)
}

// FromFloat16 konvertiert ein half precision Array zurueck nach float32.
func FromFloat16(x *Array[float16.Float16]) *Array[float32] {
	return Map(x, func(v float16.Float16) float32 {
		return v.Float32()
	})
}
