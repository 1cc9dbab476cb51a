package adaptive

import (
	"testing"

	"github.com/abhisek/tactix/internal/rating"
)

func TestConsecutiveFailures(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
		want     int
	}{
		{"empty history", nil, 0},
		{"last is correct", []Outcome{Incorrect, Correct}, 0},
		{"one failure after correct", []Outcome{Correct, Incorrect}, 1},
		{"all failures", []Outcome{Incorrect, Incorrect, Incorrect}, 3},
		{"incomplete counts as failure", []Outcome{Correct, Incomplete, Incorrect}, 2},
		{"no correct anywhere", []Outcome{Incomplete, Incorrect, Incomplete, Incorrect}, 4},
		{"streak resets at correct", []Outcome{Incorrect, Incorrect, Correct, Incorrect}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsecutiveFailures(tt.outcomes)
			if got != tt.want {
				t.Errorf("ConsecutiveFailures(%v) = %d, want %d", tt.outcomes, got, tt.want)
			}
		})
	}
}

func TestSelectWindow(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
		want     Window
	}{
		{"empty history stays normal", nil, Normal},
		{"recent correct stays normal", []Outcome{Incorrect, Correct}, Normal},
		{"two failures stays normal", []Outcome{Incorrect, Incorrect}, Normal},
		{"three failures eases", []Outcome{Incorrect, Incorrect, Incorrect}, Eased},
		{"three failures after correct eases", []Outcome{Correct, Incorrect, Incomplete, Incorrect}, Eased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectWindow(tt.outcomes)
			if got != tt.want {
				t.Errorf("SelectWindow(%v) = %+v, want %+v", tt.outcomes, got, tt.want)
			}
		})
	}
}

func TestSelectBand(t *testing.T) {
	losing := []Outcome{Incorrect, Incorrect, Incorrect}
	if got, want := SelectBand(1500, losing), (rating.Band{Lower: 1259, Upper: 1430}); got != want {
		t.Errorf("SelectBand(1500, losing streak) = %+v, want %+v", got, want)
	}

	steady := []Outcome{Incorrect, Correct}
	if got, want := SelectBand(1500, steady), (rating.Band{Lower: 1430, Upper: 1570}); got != want {
		t.Errorf("SelectBand(1500, steady) = %+v, want %+v", got, want)
	}
}
