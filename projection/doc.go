// Package projection builds camera projection matrices — orthographic
// and perspective — from frustum parameters, memoizing each result on
// the exact argument tuple so that per-frame rebuilds with unchanged
// viewport parameters cost a map lookup instead of a recompute.
//
// 🚀 What is projection?
//
//	Two factories over mat4.Mat4:
//	  • Ortho        — OpenGL-style orthographic mapping of a box frustum
//	  • Perspective  — field-of-view driven perspective mapping
//
//	Both are memoized. The package-level functions share one process-wide
//	cache; NewCache gives a private, injectable instance for hosts and
//	tests that want to inspect or reset memoization state.
//
// ⚙️ Usage:
//
//	proj := projection.Ortho(-1, 1, -1, 1, 1, 100)
//	persp := projection.Perspective(-1, 1, -1, 1, 1, 100,
//		projection.WithFOV(45))
//
// 🔒 Concurrency & safety:
//
//   - Every cache is guarded by a mutex; concurrent callers are safe.
//   - Every call returns a defensive copy of the cached matrix, so the
//     returned value may be freely mutated (Translate/Rotate/...) without
//     corrupting future lookups.
//
// 📐 Semantics worth knowing:
//
//   - Cache keys compare by exact float64 equality (Go map semantics):
//     +0 and -0 collapse to one entry, and a NaN parameter never matches
//     any key — including itself — so NaN frustums always recompute.
//   - The cache is unbounded. Key cardinality is driven by viewport
//     resizes in practice, so this is fine for typical hosts; a process
//     feeding unbounded distinct frustums should hold its own Cache and
//     Reset it periodically.
//   - Perspective uses its left/right/bottom/top bounds only to derive
//     the aspect ratio; the frustum extents themselves come from the
//     field of view. See Perspective for details.
package projection
