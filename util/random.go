package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Random is the source of uniform draws in [0, 1) used by the generators.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom creates a seeded pseudo-random source.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed reads a seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Range returns an integer in [min, max] by rounding a scaled draw.
func Range(r Random, min int, max int) int {
	return int(math.Round(r.Float64()*float64(max-min))) + min
}

// Chance is a coin flip.
func Chance(r Random) bool {
	return r.Float64() > 0.5
}
