package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDiffersBySeed(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestStream(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 64; i++ {
		s := Stream(7, i)
		assert.False(t, seen[s], "worker %d reused a seed", i)
		seen[s] = true
		assert.Equal(t, s, Stream(7, i))
	}
}

func TestPick(t *testing.T) {
	rng := New(3)
	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, Pick(rng, items))
	}
	assert.Panics(t, func() { Pick(rng, []int{}) })
}
