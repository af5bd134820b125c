package engine

import "math/rand"

// Between returns a uniformly distributed integer in [min, max].
// The bounds may be given in either order.
func Between(rng *rand.Rand, min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + rng.Intn(max-min+1)
}
