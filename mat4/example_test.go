// SPDX-License-Identifier: MIT

package mat4_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/mat4"
)

// ExampleNew shows the identity default and explicit construction.
func ExampleNew() {
	id, _ := mat4.New() // no values → identity
	fmt.Print(id)

	// Output:
	// [1, 0, 0, 0]
	// [0, 1, 0, 0]
	// [0, 0, 1, 0]
	// [0, 0, 0, 1]
}

// ExampleMat4_Translate composes an object transform in place.
func ExampleMat4_Translate() {
	m := mat4.Identity()
	m.Translate(10, 20, 30)
	m.Scale(2)
	fmt.Print(m)

	// Output:
	// [2, 0, 0, 0]
	// [0, 2, 0, 0]
	// [0, 0, 2, 0]
	// [10, 20, 30, 1]
}

// ExampleMat4_MatMul multiplies two transforms out of place.
func ExampleMat4_MatMul() {
	scale := mat4.Identity()
	scale.Scale(3)

	shift := mat4.Identity()
	shift.Translate(1, 2, 3)

	prod, _ := shift.MatMul(scale) // translate, then scale
	fmt.Print(prod)

	// Output:
	// [3, 0, 0, 0]
	// [0, 3, 0, 0]
	// [0, 0, 3, 0]
	// [3, 6, 9, 1]
}
