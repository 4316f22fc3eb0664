package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Bool(), b.Bool(), "draw %d", i)
	}
}

func TestChanceClamps(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		assert.False(t, r.Chance(0))
		assert.False(t, r.Chance(-3))
		assert.True(t, r.Chance(1))
		assert.True(t, r.Chance(2.5))
	}
}
