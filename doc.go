// Package lvlmat is a small, self-contained 4x4 matrix toolkit for
// rendering pipelines — object-space transforms, generic matrix algebra
// and memoized camera-projection factories.
//
// 🚀 What is lvlmat?
//
//	A focused, dependency-light library that brings together:
//		• Mat4 value type: 16 float64 components, flat row-major storage
//		• Algebra: elementwise add/sub/mul plus true 4x4 matrix product
//		• Transforms: in-place translate, scale and axis-angle rotate
//		• Projections: orthographic & perspective factories, memoized
//		  per exact argument tuple so per-frame rebuilds cost a map hit
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Upload-ready – flat row-major layout passes straight to a graphics API
//   - Testable – the projection memo cache is injectable, not hidden state
//
// Under the hood, everything is organized under two subpackages:
//
//	mat4/       — the Mat4 value type: construction, algebra, transforms
//	projection/ — orthographic & perspective factories + memo cache
//
// Quick sketch of the component layout (flat index = 4*row + col):
//
//	    [ 0  1  2  3 ]
//	    [ 4  5  6  7 ]
//	    [ 8  9 10 11 ]
//	    [12 13 14 15 ]   — 12,13,14 carry the translation
//
// Dive into examples/ for runnable camera and transform walkthroughs.
//
//	go get github.com/katalvlaran/lvlmat
package lvlmat
