package util

import (
	"github.com/fogleman/ease"
)

// GenerateLut builds a symmetric ease-in-out gain curve that rises to 1 at the
// middle of the table and falls back to 0 at the end.
func GenerateLut(length int) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	if length%2 == 1 {
		lut[length/2] = 1
	}
	return lut
}

// SampleLut reads the table at t in [0, 1].
func SampleLut(lut []float64, t float64) float64 {
	if len(lut) == 0 {
		return 0
	}
	if t <= 0 {
		return lut[0]
	}
	if t >= 1 {
		return lut[len(lut)-1]
	}
	return lut[int(t*float64(len(lut)-1))]
}
