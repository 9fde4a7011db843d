package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestRangeBounds(t *testing.T) {
	r := NewRandom(42)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := Range(r, -3, 3)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}

	assert.True(t, seen[-3], "min never drawn")
	assert.True(t, seen[3], "max never drawn")
}

func TestRangeRounds(t *testing.T) {
	assert.Equal(t, 1, Range(fixed(0), 1, 6))
	assert.Equal(t, 5, Range(fixed(0.8), 1, 6))
	assert.Equal(t, 6, Range(fixed(0.99), 1, 6))
	assert.Equal(t, 4, Range(fixed(0.5), 4, 4))
}

func TestRangeSeeded(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, Range(a, 0, 100), Range(b, 0, 100))
	}
}

func TestChance(t *testing.T) {
	assert.True(t, Chance(fixed(0.51)))
	assert.False(t, Chance(fixed(0.5)))
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}

func TestGenerateLut(t *testing.T) {
	lut := GenerateLut(10)
	require.Len(t, lut, 10)
	assert.Equal(t, 0.0, lut[0])
	assert.Equal(t, 0.0, lut[9])
	for i := 0; i < 5; i++ {
		assert.Equal(t, lut[i], lut[9-i])
	}
	assert.Greater(t, lut[4], lut[1])

	odd := GenerateLut(5)
	assert.Equal(t, 1.0, odd[2])
	assert.Empty(t, GenerateLut(0))
}

func TestSampleLut(t *testing.T) {
	lut := GenerateLut(11)
	assert.Equal(t, 0.0, SampleLut(lut, -1))
	assert.Equal(t, 0.0, SampleLut(lut, 2))
	assert.Equal(t, 1.0, SampleLut(lut, 0.5))
	assert.Equal(t, 0.0, SampleLut(nil, 0.5))
}
