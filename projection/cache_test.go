package projection_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/projection"
)

// TestCache_LenAndReset exercises the inspection surface.
func TestCache_LenAndReset(t *testing.T) {
	c := projection.NewCache()
	assert.Equal(t, 0, c.Len())

	c.Ortho(-1, 1, -1, 1, 1, 100)
	c.Ortho(-1, 1, -1, 1, 1, 100) // hit, no new entry
	assert.Equal(t, 1, c.Len())

	c.Ortho(0, 1, 0, 1, 1, 100) // distinct tuple, new entry
	assert.Equal(t, 2, c.Len())

	c.Perspective(-1, 1, -1, 1, 1, 100, projection.DefaultFOV)
	assert.Equal(t, 3, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

// TestCache_DistinctFOV verifies the field of view participates in the
// perspective key.
func TestCache_DistinctFOV(t *testing.T) {
	c := projection.NewCache()

	a := c.Perspective(-1, 1, -1, 1, 1, 100, 60)
	b := c.Perspective(-1, 1, -1, 1, 1, 100, 90)
	assert.Equal(t, 2, c.Len())
	assert.False(t, a.Equal(b))
}

// TestCache_HitIsDetached verifies hits hand out copies: mutating one
// result never leaks into the next.
func TestCache_HitIsDetached(t *testing.T) {
	c := projection.NewCache()

	first := c.Ortho(-1, 1, -1, 1, 1, 100)
	require.NoError(t, first.Set(0, 12345))

	second := c.Ortho(-1, 1, -1, 1, 1, 100)
	got, err := second.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

// TestCache_NegativeZeroCollapses documents map-key float semantics:
// -0 and +0 compare equal, so they share one entry.
func TestCache_NegativeZeroCollapses(t *testing.T) {
	c := projection.NewCache()

	c.Ortho(math.Copysign(0, -1), 1, 0, 1, 1, 100)
	c.Ortho(0, 1, 0, 1, 1, 100)
	assert.Equal(t, 1, c.Len())
}

// TestCache_ConcurrentLookupInsert hammers one cache from many
// goroutines; the mutex discipline must keep the entry count exact and
// every returned matrix correct.
func TestCache_ConcurrentLookupInsert(t *testing.T) {
	c := projection.NewCache()
	want := c.Ortho(-1, 1, -1, 1, 1, 100)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := c.Ortho(-1, 1, -1, 1, 1, 100)
				if !want.Equal(got) {
					t.Errorf("concurrent hit returned a different matrix")

					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
}
