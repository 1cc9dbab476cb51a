package rating

import "math"

// Probability clamp bounds. InvertProbability diverges at exactly 0 and 1,
// so inputs are pinned to this open sub-interval.
const (
	minProbability = 0.01
	maxProbability = 0.99
)

// Band is an inclusive puzzle-rating interval derived from a probability
// window at a given player rating. Derived, never persisted.
type Band struct {
	Lower int
	Upper int
}

// InvertProbability solves ExpectedScore(player, x) = p for x: the puzzle
// rating at which the player's success probability equals p. p is clamped
// into [0.01, 0.99] before inversion.
func InvertProbability(player, p float64) float64 {
	p = clampProbability(p)
	return player + 400*math.Log10(1/p-1)
}

// BandForWindow converts a success-probability window into a puzzle-rating
// band. The higher probability maps to the easier (lower-rated) boundary, so
// Lower <= Upper whenever minP < maxP.
func BandForWindow(player, minP, maxP float64) Band {
	return Band{
		Lower: int(math.Round(InvertProbability(player, maxP))),
		Upper: int(math.Round(InvertProbability(player, minP))),
	}
}

func clampProbability(p float64) float64 {
	if p < minProbability {
		return minProbability
	}
	if p > maxProbability {
		return maxProbability
	}
	return p
}
