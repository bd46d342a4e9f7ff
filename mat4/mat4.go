// SPDX-License-Identifier: MIT

package mat4

import (
	"fmt"
	"strings"
)

// Size is the number of components in a 4x4 matrix.
const Size = 16

// Side is the row/column dimension of the matrix.
const Side = 4

// Flat indices with a fixed positional meaning in the row-major layout.
// External consumers (uniform uploads, vertex pipelines) address these
// components by number, so the mapping is part of the public contract.
const (
	// IdxScaleX, IdxScaleY, IdxScaleZ are the non-homogeneous diagonal
	// entries touched by Scale.
	IdxScaleX = 0
	IdxScaleY = 5
	IdxScaleZ = 10

	// IdxTransX, IdxTransY, IdxTransZ are the translation components
	// touched by Translate (row 3, columns 0..2).
	IdxTransX = 12
	IdxTransY = 13
	IdxTransZ = 14
)

// Mat4 is a 4x4 matrix of float64 values stored as a flat row-major
// array: component (row, col) lives at flat index Side*row + col.
//
// Mat4 supports both copy-returning algebra (Add, Sub, MulElem, MatMul)
// and in-place mutators (Translate, Scale, Rotate); see the package doc
// for why both families exist.
type Mat4 struct {
	data [Size]float64 // flat backing storage, row-major
}

// New creates a Mat4 from an explicit component list.
// Stage 1 (Validate): the list must be empty or exactly 16 values long.
// Stage 2 (Finalize): no values → identity; 16 values → filled row-major.
// Returns ErrValueCount for any other length.
func New(values ...float64) (*Mat4, error) {
	// No values: the identity matrix is the documented default.
	if len(values) == 0 {
		return Identity(), nil
	}
	// Validate the count before touching any storage.
	if len(values) != Size {
		return nil, ErrValueCount
	}

	m := &Mat4{}
	copy(m.data[:], values)

	return m, nil
}

// Identity returns a fresh identity matrix: 1.0 at flat indices
// 0, 5, 10, 15 and 0.0 everywhere else.
func Identity() *Mat4 {
	m := &Mat4{}
	for i := 0; i < Side; i++ {
		m.data[i*Side+i] = 1.0 // diagonal walk: 0, 5, 10, 15
	}

	return m
}

// At retrieves the component at flat index i.
// Returns ErrIndexOutOfRange if i is outside 0..15.
func (m *Mat4) At(i int) (float64, error) {
	if i < 0 || i >= Size {
		return 0, ErrIndexOutOfRange
	}

	return m.data[i], nil
}

// Set assigns value v at flat index i.
// Returns ErrIndexOutOfRange if i is outside 0..15.
func (m *Mat4) Set(i int, v float64) error {
	if i < 0 || i >= Size {
		return ErrIndexOutOfRange
	}
	m.data[i] = v

	return nil
}

// Components returns a copy of all 16 components in row-major order,
// ready to hand to a graphics API as a transform upload. Mutating the
// returned array does not affect m.
func (m *Mat4) Components() [Size]float64 {
	return m.data
}

// Row returns a copy of row r (0..3) as a 4-element array.
// Returns ErrIndexOutOfRange if r is outside 0..3.
func (m *Mat4) Row(r int) ([Side]float64, error) {
	var row [Side]float64
	if r < 0 || r >= Side {
		return row, ErrIndexOutOfRange
	}
	copy(row[:], m.data[r*Side:(r+1)*Side])

	return row, nil
}

// Clone returns a deep copy of m. Use it to detach a matrix before
// sharing it across components that may mutate it.
func (m *Mat4) Clone() *Mat4 {
	out := &Mat4{}
	out.data = m.data // array assignment copies all 16 components

	return out
}

// Equal reports whether m and other agree on all 16 components under
// exact float64 comparison. A nil other is never equal.
func (m *Mat4) Equal(other *Mat4) bool {
	if other == nil {
		return false
	}

	return m.data == other.data
}

// String implements fmt.Stringer, rendering the four rows on separate
// lines for easy debugging.
func (m *Mat4) String() string {
	var b strings.Builder
	for r := 0; r < Side; r++ {
		b.WriteString("[")
		for c := 0; c < Side; c++ {
			fmt.Fprintf(&b, "%g", m.data[r*Side+c])
			if c < Side-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
