package adaptive

import "github.com/abhisek/tactix/internal/rating"

// Window is a target success-probability range used to pick puzzle
// difficulty. Both bounds are strictly inside (0, 1).
type Window struct {
	MinProb float64
	MaxProb float64
}

// The two selection modes. Normal aims for near-even odds; Eased serves
// easier puzzles after repeated failure.
var (
	Normal = Window{MinProb: 0.4, MaxProb: 0.6}
	Eased  = Window{MinProb: 0.6, MaxProb: 0.8}
)

// EasedThreshold is the losing-streak length that switches selection to the
// Eased window.
const EasedThreshold = 3

// ConsecutiveFailures counts outcomes since the most recent Correct, scanning
// the history from most-recent-last backward. A history with no Correct at
// all counts in full.
func ConsecutiveFailures(outcomes []Outcome) int {
	for i := len(outcomes) - 1; i >= 0; i-- {
		if outcomes[i] == Correct {
			return len(outcomes) - 1 - i
		}
	}
	return len(outcomes)
}

// SelectWindow returns the probability window for the current history. The
// mode is re-derived on every call; there is no state to persist.
func SelectWindow(outcomes []Outcome) Window {
	if ConsecutiveFailures(outcomes) >= EasedThreshold {
		return Eased
	}
	return Normal
}

// SelectBand converts the selected window into a puzzle-rating band for the
// given player rating.
func SelectBand(player float64, outcomes []Outcome) rating.Band {
	w := SelectWindow(outcomes)
	return rating.BandForWindow(player, w.MinProb, w.MaxProb)
}
