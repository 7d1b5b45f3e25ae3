// MODUL: array
// ZWECK: Generisches N-dimensionales Array mit zusammenhaengendem Puffer
// INPUT: Shape-Angaben, optionale Daten-Slices
// OUTPUT: *Array[T] mit Row-Major Speicherlayout
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Daten werden beim Erzeugen immer kopiert, Array besitzt seinen Puffer

package layout

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Element umfasst alle numerischen Elementtypen.
// float16.Float16 (uint16) ist damit ebenfalls zulaessig.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// ============================================================================
// Shape
// ============================================================================

// Shape beschreibt die Dimensionen eines Arrays.
type Shape []int

// NumElements gibt die Anzahl der Elemente zurueck.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Strides gibt die Row-Major Schrittweiten zurueck.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

// Equal prueft zwei Shapes auf Gleichheit.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone gibt eine unabhaengige Kopie zurueck.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// String formatiert die Shape als Tupel, z.B. "(2, 2, 4)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (s Shape) validate(op string) error {
	for _, d := range s {
		if d < 0 {
			return &InvalidShapeError{Op: op, Shape: s.Clone(), Reason: "negative dimension"}
		}
	}
	return nil
}

// ============================================================================
// Array
// ============================================================================

// Array ist ein zusammenhaengender Row-Major Puffer mit expliziter Shape.
type Array[T Element] struct {
	shape Shape
	data  []T
}

// New erzeugt ein mit Nullen gefuelltes Array.
func New[T Element](shape ...int) (*Array[T], error) {
	s := Shape(shape).Clone()
	if err := s.validate("new"); err != nil {
		return nil, err
	}
	return &Array[T]{shape: s, data: make([]T, s.NumElements())}, nil
}

// FromSlice erzeugt ein Array aus einer Kopie von data.
func FromSlice[T Element](data []T, shape ...int) (*Array[T], error) {
	s := Shape(shape).Clone()
	if err := s.validate("from slice"); err != nil {
		return nil, err
	}
	if len(data) != s.NumElements() {
		return nil, &InvalidShapeError{
			Op:     "from slice",
			Shape:  s,
			Reason: fmt.Sprintf("%d elements do not fill %d", len(data), s.NumElements()),
		}
	}
	return &Array[T]{shape: s, data: slices.Clone(data)}, nil
}

// Shape gibt eine Kopie der Shape zurueck.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Dims gibt die Anzahl der Achsen zurueck.
func (a *Array[T]) Dims() int {
	return len(a.shape)
}

// Len gibt die Anzahl der Elemente zurueck.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data gibt eine Kopie des Puffers zurueck.
func (a *Array[T]) Data() []T {
	return slices.Clone(a.data)
}

// At gibt das Element an der Position idx zurueck.
// Panikt bei falscher Achsenanzahl oder Index ausserhalb der Grenzen.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.offset(idx)]
}

// Set schreibt v an die Position idx.
func (a *Array[T]) Set(v T, idx ...int) {
	a.data[a.offset(idx)] = v
}

func (a *Array[T]) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("layout: %d indices for %d-D array", len(idx), len(a.shape)))
	}
	off := 0
	for i, n := range idx {
		if n < 0 || n >= a.shape[i] {
			panic(fmt.Sprintf("layout: index %d out of range for axis %d with size %d", n, i, a.shape[i]))
		}
		off = off*a.shape[i] + n
	}
	return off
}

// Clone gibt eine tiefe Kopie zurueck.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{shape: a.shape.Clone(), data: slices.Clone(a.data)}
}

// Equal prueft Shape und Elemente auf Gleichheit.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.shape.Equal(b.shape) && slices.Equal(a.data, b.data)
}

// Reshape gibt eine Kopie mit neuer Shape zurueck.
// Die Elementanzahl muss unveraendert bleiben.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	s := Shape(shape).Clone()
	if err := s.validate("reshape"); err != nil {
		return nil, err
	}
	if s.NumElements() != len(a.data) {
		return nil, &InvalidShapeError{
			Op:     "reshape",
			Shape:  a.shape.Clone(),
			Reason: fmt.Sprintf("cannot reshape into %s", s),
		}
	}
	return &Array[T]{shape: s, data: slices.Clone(a.data)}, nil
}
