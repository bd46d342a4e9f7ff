// SPDX-License-Identifier: MIT
// Package mat4 implements a fixed-size 4x4 matrix of float64 values with
// flat row-major storage, the workhorse type behind model/view/projection
// transforms in a rendering pipeline.
//
// 🚀 What is mat4?
//
//	A single value type, Mat4, with two complementary operation families:
//	  • Copy-returning algebra — Add, Sub, MulElem (elementwise) and
//	    MatMul (true matrix product) allocate a fresh result and leave
//	    both operands untouched.
//	  • In-place mutators — Translate, Scale and Rotate overwrite the
//	    receiver's components directly, the way per-frame transform
//	    composition wants to work.
//
//	This split is deliberate: callers compose camera math out-of-place
//	and drive object transforms in-place. Do not collapse one family
//	into the other.
//
// ⚙️ Usage:
//
//	m := mat4.Identity()
//	m.Translate(10, 0, 0)
//	m.Rotate(90, 0, 0, 1)
//
//	sum, err := a.Add(b)       // fresh matrix, a and b unchanged
//	prod, err := a.MatMul(b)   // standard 4x4 product
//
// Storage is row-major: flat index 4*row + col. Indices 12, 13 and 14
// hold the translation components. External consumers address components
// positionally via At/Set/Components, so this ordering is a compatibility
// contract, not an implementation detail.
//
// Errors are package-level sentinels matched via errors.Is; no operation
// panics on user input. Complexity of every operation is O(1) with the
// constant bounded by the 16 components.
package mat4
