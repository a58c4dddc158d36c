package core

// RandomSource abstracts the random digits used for generated references
type RandomSource interface {
	// IntN returns a uniformly distributed integer in [0, n)
	IntN(n int) int
}

// IntRange returns a random integer in the closed interval [lo, hi]
func IntRange(r RandomSource, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
