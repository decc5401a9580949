package core

import "math/rand"

// Map re-scales x from the range [inMin, inMax] to [outMin, outMax] with
// exact integer arithmetic and truncating division. Values outside the
// input range extrapolate linearly.
func Map(x, inMin, inMax, outMin, outMax int64) int64 {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Constrain limits x to the range [low, high].
func Constrain(x, low, high int64) int64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

var rng = rand.New(rand.NewSource(1))

// RandomSeed reseeds the pseudo-random generator. A zero seed is ignored.
func RandomSeed(seed int64) {
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
}

// Random returns a pseudo-random value in [0, howbig). Random(0) is 0.
func Random(howbig int64) int64 {
	if howbig <= 0 {
		return 0
	}
	return rng.Int63n(howbig)
}

// RandomBetween returns a pseudo-random value in [howsmall, howbig).
// If howsmall >= howbig it returns howsmall.
func RandomBetween(howsmall, howbig int64) int64 {
	if howsmall >= howbig {
		return howsmall
	}
	return Random(howbig-howsmall) + howsmall
}
