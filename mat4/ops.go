// SPDX-License-Identifier: MIT

package mat4

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMulElem = "MulElem"
	opMatMul  = "MatMul"
)

// opErrorf wraps err with the operation tag, preserving the sentinel for
// errors.Is. Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("mat4.%s: %w", tag, err)
}

// validateOperands ensures both sides of a binary operation are non-nil.
// Go's static typing already rules out operands of a different kind, so a
// nil pointer is the only representable operand violation.
func validateOperands(m, other *Mat4) error {
	if m == nil || other == nil {
		return ErrNilMatrix
	}

	return nil
}

// addSub computes out[i] = m[i] + sign*other[i] for sign ∈ {+1, -1}.
// Shared kernel for Add and Sub: one validation path, one flat loop.
// Operands are never mutated; a fresh Mat4 is returned.
func (m *Mat4) addSub(other *Mat4, sign float64, tag string) (*Mat4, error) {
	// Validate operands before any allocation.
	if err := validateOperands(m, other); err != nil {
		return nil, opErrorf(tag, err)
	}

	out := &Mat4{}
	for i := 0; i < Size; i++ { // deterministic 0..15
		out.data[i] = m.data[i] + sign*other.data[i]
	}

	return out, nil
}

// Add returns the elementwise sum m + other as a fresh matrix.
// Returns ErrNilMatrix (wrapped) if either operand is nil.
func (m *Mat4) Add(other *Mat4) (*Mat4, error) {
	return m.addSub(other, +1, opAdd)
}

// Sub returns the elementwise difference m - other as a fresh matrix.
// Returns ErrNilMatrix (wrapped) if either operand is nil.
func (m *Mat4) Sub(other *Mat4) (*Mat4, error) {
	return m.addSub(other, -1, opSub)
}

// MulElem returns the elementwise (Hadamard) product m ∘ other as a
// fresh matrix. This is NOT the matrix product; see MatMul.
// Returns ErrNilMatrix (wrapped) if either operand is nil.
func (m *Mat4) MulElem(other *Mat4) (*Mat4, error) {
	if err := validateOperands(m, other); err != nil {
		return nil, opErrorf(opMulElem, err)
	}

	out := &Mat4{}
	for i := 0; i < Size; i++ {
		out.data[i] = m.data[i] * other.data[i]
	}

	return out, nil
}

// MatMul returns the standard 4x4 matrix product m × other as a fresh
// matrix: out(row,col) = Σ_k m(row,k) · other(k,col), with m read as
// row-major rows and other's column col taken as every 4th component
// starting at flat offset col. Neither operand is mutated.
// Returns ErrNilMatrix (wrapped) if either operand is nil.
func (m *Mat4) MatMul(other *Mat4) (*Mat4, error) {
	// Validate operands before any allocation.
	if err := validateOperands(m, other); err != nil {
		return nil, opErrorf(opMatMul, err)
	}

	out := &Mat4{}
	for row := 0; row < Side; row++ {
		base := row * Side // cache the row offset
		for col := 0; col < Side; col++ {
			var sum float64
			for k := 0; k < Side; k++ {
				sum += m.data[base+k] * other.data[k*Side+col]
			}
			out.data[base+col] = sum
		}
	}

	return out, nil
}
