// MODUL: rearrange
// ZWECK: Space-to-Depth und Depth-to-Space Blockumordnung fuer (H, W, C) Arrays
// INPUT: 3-D Array, Blockgroesse
// OUTPUT: Neues Array mit umgeordneten Bloecken
// NEBENEFFEKTE: keine (Eingabe wird nie veraendert)
// ABHAENGIGKEITEN: permute.go
// HINWEISE: Validierung erfolgt vollstaendig vor jeder Allokation

package layout

import (
	"fmt"
	"math"
)

// SpaceToDepth ordnet raeumliche Bloecke der Groesse blockSize x blockSize
// in die Kanal-Achse um.
//
// Aus (H, W, D) wird (H/bs, W/bs, D*bs*bs). Fuer Blockzeile bi und
// Blockspalte bj gilt
//
//	y[i, j, (bi*bs+bj)*D : (bi*bs+bj+1)*D] == x[i*bs+bi, j*bs+bj, :]
//
// Die Patches werden also zeilenweise (Blockzeile aussen, Blockspalte innen)
// in die Tiefe gelegt.
func SpaceToDepth[T Element](x *Array[T], blockSize int) (*Array[T], error) {
	const op = "space to depth"

	h, w, d, err := dimsHWC(op, x)
	if err != nil {
		return nil, err
	}
	if blockSize < 1 {
		return nil, &InvalidBlockSizeError{Op: op, BlockSize: blockSize, Shape: x.Shape(), Reason: "must be at least 1"}
	}
	area, err := blockArea(op, x, blockSize)
	if err != nil {
		return nil, err
	}
	if h%blockSize != 0 || w%blockSize != 0 {
		return nil, &InvalidBlockSizeError{
			Op:        op,
			BlockSize: blockSize,
			Shape:     x.Shape(),
			Reason:    "height and width must be divisible by block size",
		}
	}
	if d > math.MaxInt/area {
		return nil, &InvalidBlockSizeError{Op: op, BlockSize: blockSize, Shape: x.Shape(), Reason: "output depth overflows int"}
	}

	nh, nw := h/blockSize, w/blockSize

	// (nh, bs, nw, bs, d) -> (nh, nw, bs, bs, d)
	data := permute(x.data, []int{nh, blockSize, nw, blockSize, d}, []int{0, 2, 1, 3, 4})

	return &Array[T]{shape: Shape{nh, nw, d * area}, data: data}, nil
}

// DepthToSpace ist die exakte Umkehrung von SpaceToDepth.
//
// Aus (H, W, D) wird (H*bs, W*bs, D/(bs*bs)). Mit newD = D/(bs*bs) gilt
//
//	y[i*bs+bi, j*bs+bj, :] == x[i, j, (bi*bs+bj)*newD : (bi*bs+bj+1)*newD]
func DepthToSpace[T Element](x *Array[T], blockSize int) (*Array[T], error) {
	const op = "depth to space"

	h, w, d, err := dimsHWC(op, x)
	if err != nil {
		return nil, err
	}
	if blockSize < 1 {
		return nil, &InvalidBlockSizeError{Op: op, BlockSize: blockSize, Shape: x.Shape(), Reason: "must be at least 1"}
	}
	area, err := blockArea(op, x, blockSize)
	if err != nil {
		return nil, err
	}
	if d%area != 0 {
		return nil, &InvalidBlockSizeError{
			Op:        op,
			BlockSize: blockSize,
			Shape:     x.Shape(),
			Reason:    fmt.Sprintf("depth must be divisible by block size squared (%d)", area),
		}
	}

	if h > math.MaxInt/blockSize || w > math.MaxInt/blockSize {
		return nil, &InvalidBlockSizeError{Op: op, BlockSize: blockSize, Shape: x.Shape(), Reason: "output height or width overflows int"}
	}

	nd := d / area

	// (h, w, bs, bs, nd) -> (h, bs, w, bs, nd)
	data := permute(x.data, []int{h, w, blockSize, blockSize, nd}, []int{0, 2, 1, 3, 4})

	return &Array[T]{shape: Shape{h * blockSize, w * blockSize, nd}, data: data}, nil
}

// blockArea gibt bs*bs zurueck, sofern das Produkt in ein int passt.
func blockArea[T Element](op string, x *Array[T], blockSize int) (int, error) {
	if blockSize > math.MaxInt/blockSize {
		return 0, &InvalidBlockSizeError{Op: op, BlockSize: blockSize, Shape: x.Shape(), Reason: "block size squared overflows int"}
	}
	return blockSize * blockSize, nil
}

// dimsHWC prueft auf genau 3 Achsen und gibt deren Groessen zurueck.
func dimsHWC[T Element](op string, x *Array[T]) (int, int, int, error) {
	if x == nil {
		return 0, 0, 0, &InvalidShapeError{Op: op, Reason: "nil array"}
	}
	if len(x.shape) != 3 {
		return 0, 0, 0, &InvalidShapeError{
			Op:     op,
			Shape:  x.Shape(),
			Reason: fmt.Sprintf("expected 3 dimensions, got %d", len(x.shape)),
		}
	}
	return x.shape[0], x.shape[1], x.shape[2], nil
}
