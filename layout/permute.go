// MODUL: permute
// ZWECK: Achsen-Permutation eines Row-Major Puffers
// INPUT: Quell-Puffer, Dimensionen, Achsen-Reihenfolge
// OUTPUT: Neuer Puffer in permutierter Reihenfolge
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Basis fuer SpaceToDepth, DepthToSpace, ToCHW und ToHWC

package layout

// permute kopiert src (Row-Major mit Dimensionen dims) in einen neuen Puffer,
// dessen Achsen in der Reihenfolge axes liegen.
// Iteriert ueber den Ziel-Puffer und fuehrt den Quell-Offset mit.
func permute[T Element](src []T, dims, axes []int) []T {
	strides := Shape(dims).Strides()

	outDims := make([]int, len(axes))
	outStrides := make([]int, len(axes))
	for i, a := range axes {
		outDims[i] = dims[a]
		outStrides[i] = strides[a]
	}

	dst := make([]T, len(src))
	idx := make([]int, len(axes))
	off := 0
	for i := range dst {
		dst[i] = src[off]

		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			off += outStrides[k]
			if idx[k] < outDims[k] {
				break
			}
			off -= outStrides[k] * outDims[k]
			idx[k] = 0
		}
	}

	return dst
}
