// MODUL: errors
// ZWECK: Fehlertypen fuer Shape- und Blockgroessen-Validierung
// INPUT: Operationsname, Shape, Blockgroesse
// OUTPUT: *InvalidShapeError, *InvalidBlockSizeError
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: errors.Is funktioniert ueber ErrInvalidShape / ErrInvalidBlockSize

package layout

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShape     = errors.New("layout: invalid shape")
	ErrInvalidBlockSize = errors.New("layout: invalid block size")
)

// InvalidShapeError meldet eine strukturell ungueltige Eingabe,
// z.B. ein Array mit weniger als 3 Achsen.
type InvalidShapeError struct {
	Op     string
	Shape  Shape
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("layout: %s: invalid shape %s: %s", e.Op, e.Shape, e.Reason)
}

func (e *InvalidShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// InvalidBlockSizeError meldet eine verletzte Teilbarkeitsbedingung.
type InvalidBlockSizeError struct {
	Op        string
	BlockSize int
	Shape     Shape
	Reason    string
}

func (e *InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("layout: %s: block size %d invalid for shape %s: %s", e.Op, e.BlockSize, e.Shape, e.Reason)
}

func (e *InvalidBlockSizeError) Is(target error) bool {
	return target == ErrInvalidBlockSize
}
