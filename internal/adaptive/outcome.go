// Package adaptive selects the difficulty window for the next puzzle from the
// player's recent attempt history: near-even odds normally, easier puzzles
// after a losing streak.
package adaptive

// Outcome is the result of one puzzle attempt, produced by the caller after
// the user finishes (or abandons) an exercise.
type Outcome string

const (
	Correct    Outcome = "correct"
	Incorrect  Outcome = "incorrect"
	Incomplete Outcome = "incomplete"
)

// Solved reports whether the outcome counts as a win for rating purposes.
func (o Outcome) Solved() bool {
	return o == Correct
}
