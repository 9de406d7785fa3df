package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymmetryCountAndHas(t *testing.T) {
	s := R000L | R180R
	assert.Equal(t, 2, s.Count())
	assert.True(t, s.Has(R000L))
	assert.True(t, s.Has(R180R))
	assert.False(t, s.Has(R090L))
}

func TestSelect_SingleMember(t *testing.T) {
	s := R090L
	for r := uint32(0); r < 5; r++ {
		assert.Equal(t, R090L, s.Select(r))
	}
}

func TestSelect_PicksXthSetBitModuloCount(t *testing.T) {
	s := R000L | R090L | R180L // three members, bit positions 0,1,2
	assert.Equal(t, R000L, s.Select(0))
	assert.Equal(t, R090L, s.Select(1))
	assert.Equal(t, R180L, s.Select(2))
	assert.Equal(t, R000L, s.Select(3)) // wraps modulo 3
}

func TestSelect_EmptySetFallsBackToIdentity(t *testing.T) {
	assert.Equal(t, R000L, NONE.Select(7))
}

func TestALL_HasAllEightTransforms(t *testing.T) {
	assert.Equal(t, 8, ALL.Count())
}
