// SPDX-License-Identifier: MIT

package mat4_test

import (
	"testing"

	"github.com/katalvlaran/lvlmat/mat4"
)

// benchOperands builds two fully populated matrices outside the timer.
func benchOperands(b *testing.B) (*mat4.Mat4, *mat4.Mat4) {
	b.Helper()
	vals := make([]float64, mat4.Size)
	for i := range vals {
		vals[i] = float64(i) + 0.5
	}
	x, err := mat4.New(vals...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	y := x.Clone()

	return x, y
}

// BenchmarkAdd measures the elementwise sum kernel.
func BenchmarkAdd(b *testing.B) {
	x, y := benchOperands(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Add(y); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkMatMul measures the 4x4 matrix product.
func BenchmarkMatMul(b *testing.B) {
	x, y := benchOperands(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.MatMul(y); err != nil {
			b.Fatalf("MatMul failed: %v", err)
		}
	}
}

// BenchmarkTranslate measures the in-place translation fast path.
func BenchmarkTranslate(b *testing.B) {
	m := mat4.Identity()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Translate(1, 2, 3)
	}
}

// BenchmarkRotate measures axis-angle rotation including the embedded
// matrix product.
func BenchmarkRotate(b *testing.B) {
	m := mat4.Identity()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Rotate(1, 0, 0, 1)
	}
}
