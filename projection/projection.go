package projection

import (
	"math"

	"github.com/katalvlaran/lvlmat/mat4"
)

// defaultCache backs the package-level factory functions. Hosts that
// need isolation or inspection should construct their own Cache.
var defaultCache = NewCache()

// Ortho returns an orthographic projection matrix for the axis-aligned
// box frustum [left,right]×[bottom,top]×[znear,zfar], memoized on the
// exact argument tuple via the package-wide cache.
//
// Layout (row-major flat indices): scale terms at 0, 5, 10; translation
// terms at 12, 13, 14; 1 at 15; zero elsewhere.
func Ortho(left, right, bottom, top, znear, zfar float64) *mat4.Mat4 {
	return defaultCache.Ortho(left, right, bottom, top, znear, zfar)
}

// Perspective returns a perspective projection matrix, memoized on the
// exact argument tuple (including the field of view) via the
// package-wide cache. The vertical field of view defaults to DefaultFOV
// degrees; override with WithFOV.
//
// Note for maintainers: the frustum bounds feed only the aspect ratio —
// the extents themselves derive from the field of view, gluPerspective
// style. Substituting a textbook glFrustum construction here would
// change every produced matrix; see buildPerspective.
func Perspective(left, right, bottom, top, znear, zfar float64, opts ...Option) *mat4.Mat4 {
	o := gatherOptions(opts...)

	return defaultCache.Perspective(left, right, bottom, top, znear, zfar, o.fov)
}

// buildOrtho computes the orthographic matrix, uncached.
// Degenerate frustums (zero width/height/depth) are not validated and
// produce ±Inf components; callers own parameter sanity.
func buildOrtho(left, right, bottom, top, znear, zfar float64) *mat4.Mat4 {
	width := right - left
	height := top - bottom
	depth := zfar - znear

	sx := 2.0 / width
	sy := 2.0 / height
	sz := 2.0 / -depth

	tx := -(right + left) / width
	ty := -(top + bottom) / height
	tz := -(zfar + znear) / depth

	m, _ := mat4.New( // 16 values by construction
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		tx, ty, tz, 1,
	)

	return m
}

// buildPerspective computes the perspective matrix, uncached.
//
// The symmetric extents come from the field of view:
// xymax = znear·tan(fov·π/360); left/right/bottom/top contribute only
// the aspect ratio. w lands at flat index 0, h at 5, the depth terms
// q and qn at 10 and 14, and -1 at 11 (the perspective-divide flag).
func buildPerspective(left, right, bottom, top, znear, zfar, fov float64) *mat4.Mat4 {
	aspect := (right - left) / (top - bottom)

	xymax := znear * math.Tan(fov*math.Pi/360)
	width := 2 * xymax // xymax - xmin, with xmin = -xymax
	height := 2 * xymax
	depth := zfar - znear

	q := -(zfar + znear) / depth
	qn := -2 * zfar * znear / depth

	w := 2 * znear / width / aspect
	h := 2 * znear / height

	m, _ := mat4.New( // 16 values by construction
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, q, -1,
		0, 0, qn, 0,
	)

	return m
}
