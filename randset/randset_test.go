package randset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvlath-labs/matroid/randset"
)

func TestInsertContainsRemove(t *testing.T) {
	s := randset.New[int]()
	assert.Equal(t, 0, s.Len())

	s.Insert(1)
	s.Insert(2)
	s.Insert(1) // no-op on duplicate
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))

	assert.True(t, s.Remove(1))
	assert.False(t, s.Contains(1))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Remove(1), "removing an absent value reports false")
}

func TestRemove_SwapWithLastKeepsIndexConsistent(t *testing.T) {
	s := randset.New(1, 2, 3, 4)
	assert.True(t, s.Remove(2))
	assert.Equal(t, 3, s.Len())
	for _, v := range []int{1, 3, 4} {
		assert.True(t, s.Contains(v))
	}
	// every remaining value must still be removable exactly once
	for _, v := range []int{1, 3, 4} {
		assert.True(t, s.Remove(v))
	}
	assert.Equal(t, 0, s.Len())
}

func TestChoice_Deterministic(t *testing.T) {
	s := randset.New(1, 2, 3)
	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		assert.Equal(t, s.Choice(r1), s.Choice(r2))
	}
}

func TestChoice_PanicsOnEmpty(t *testing.T) {
	s := randset.New[int]()
	assert.Panics(t, func() { s.Choice(rand.New(rand.NewSource(1))) })
}

func TestNew_DeduplicatesOnInsertionOrder(t *testing.T) {
	s := randset.New(1, 2, 1, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 2, 3}, s.Values())
}
