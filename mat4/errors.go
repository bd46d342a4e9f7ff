// SPDX-License-Identifier: MIT

package mat4

import "errors"

var (
	// ErrValueCount indicates a constructor value list whose length is not 16.
	ErrValueCount = errors.New("mat4: constructor requires exactly 16 values")
	// ErrNilMatrix indicates a nil *Mat4 receiver or operand in a binary operation.
	ErrNilMatrix = errors.New("mat4: nil matrix operand")
	// ErrIndexOutOfRange indicates a positional index outside its valid
	// range: a component index outside 0..15, or a row index outside 0..3.
	ErrIndexOutOfRange = errors.New("mat4: index out of range")
)
