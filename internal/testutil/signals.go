package testutil

import (
	"math"
	"math/rand"
)

// Ramp generates length samples rising linearly from low to high.
func Ramp(low, high, length int) []int {
	out := make([]int, length)
	if length == 1 {
		out[0] = low
		return out
	}
	span := float64(high - low)
	for i := range out {
		out[i] = low + int(math.Round(span*float64(i)/float64(length-1)))
	}
	return out
}

// NoisyRamp generates a linear ramp from low to high with uniform noise
// in [-amplitude, amplitude] added to each sample, using a fixed seed
// for reproducibility.
func NoisyRamp(seed int64, low, high, amplitude, length int) []int {
	out := Ramp(low, high, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] += rng.Intn(2*amplitude+1) - amplitude
	}
	return out
}

// NoisyConstant generates length samples of a constant level with
// uniform noise in [-amplitude, amplitude], using a fixed seed for
// reproducibility.
func NoisyConstant(seed int64, level, amplitude, length int) []int {
	out := make([]int, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = level + rng.Intn(2*amplitude+1) - amplitude
	}
	return out
}

// Transitions counts how often consecutive elements of positions
// differ.
func Transitions(positions []int) int {
	count := 0
	for i := 1; i < len(positions); i++ {
		if positions[i] != positions[i-1] {
			count++
		}
	}
	return count
}
