// Package rating implements the Elo-style math behind puzzle selection:
// expected score, post-attempt rating updates, and the inversion that turns
// a target success probability into a puzzle rating bound.
package rating

import "math"

// DefaultKFactor is the rating volatility used for a single attempt.
const DefaultKFactor = 40

// ExpectedScore returns the probability that a player rated player solves a
// puzzle rated puzzle, per the logistic Elo formula. Equal ratings yield 0.5;
// the result is strictly between 0 and 1 for finite inputs.
func ExpectedScore(player, puzzle float64) float64 {
	return 1 / (1 + math.Pow(10, (puzzle-player)/400))
}

// UpdateRating returns the player's new rating after one attempt, rounded to
// the nearest integer. A solve counts as score 1, anything else as 0, so a
// win against an evenly matched puzzle moves the rating by k/2.
func UpdateRating(player, puzzle float64, solved bool, k float64) int {
	score := 0.0
	if solved {
		score = 1.0
	}
	return int(math.Round(player + k*(score-ExpectedScore(player, puzzle))))
}
