package projection

import (
	"sync"

	"github.com/katalvlaran/lvlmat/mat4"
)

// orthoKey is the exact argument tuple of an orthographic request.
// Comparable; map lookup gives exact float64 tuple equality for free.
type orthoKey struct {
	left, right, bottom, top, znear, zfar float64
}

// perspKey extends the frustum tuple with the vertical field of view.
type perspKey struct {
	orthoKey
	fov float64
}

// Cache memoizes projection matrices keyed by their exact argument
// tuples. All methods are safe for concurrent use; lookup-or-insert runs
// under a single mutex. Entries are never evicted.
//
// Cached instances never escape: every hit and every miss returns a
// defensive copy, so callers may mutate returned matrices freely.
type Cache struct {
	mu    sync.Mutex
	ortho map[orthoKey]*mat4.Mat4
	persp map[perspKey]*mat4.Mat4
}

// NewCache returns an empty, ready-to-use projection cache.
func NewCache() *Cache {
	return &Cache{
		ortho: make(map[orthoKey]*mat4.Mat4),
		persp: make(map[perspKey]*mat4.Mat4),
	}
}

// Ortho returns the orthographic projection for the given frustum
// bounds, computing it on first use and serving a copy of the memoized
// matrix afterwards.
func (c *Cache) Ortho(left, right, bottom, top, znear, zfar float64) *mat4.Mat4 {
	key := orthoKey{left, right, bottom, top, znear, zfar}

	c.mu.Lock()
	m, ok := c.ortho[key]
	if !ok {
		m = buildOrtho(left, right, bottom, top, znear, zfar)
		c.ortho[key] = m
	}
	c.mu.Unlock()

	return m.Clone() // cached instance must not escape
}

// Perspective returns the perspective projection for the given frustum
// bounds and vertical field of view (degrees), computing it on first use
// and serving a copy of the memoized matrix afterwards.
func (c *Cache) Perspective(left, right, bottom, top, znear, zfar, fov float64) *mat4.Mat4 {
	key := perspKey{orthoKey{left, right, bottom, top, znear, zfar}, fov}

	c.mu.Lock()
	m, ok := c.persp[key]
	if !ok {
		m = buildPerspective(left, right, bottom, top, znear, zfar, fov)
		c.persp[key] = m
	}
	c.mu.Unlock()

	return m.Clone() // cached instance must not escape
}

// Len reports the total number of memoized matrices (both factories).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.ortho) + len(c.persp)
}

// Reset discards every memoized matrix, returning the cache to its
// freshly constructed state.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ortho = make(map[orthoKey]*mat4.Mat4)
	c.persp = make(map[perspKey]*mat4.Mat4)
}
