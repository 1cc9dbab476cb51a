package train

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tactix/internal/adaptive"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/screen"
	"github.com/abhisek/tactix/internal/trainer"
	"github.com/abhisek/tactix/internal/ui/components"
	"github.com/abhisek/tactix/internal/ui/layout"
	"github.com/abhisek/tactix/internal/ui/theme"
)

type phase int

const (
	phaseSolving phase = iota
	phaseFeedback
	phaseEmpty
	phaseError
)

// puzzleReadyMsg carries the next puzzle picked by the session.
type puzzleReadyMsg struct {
	Puzzle puzzle.Puzzle
	Err    error
}

// TrainScreen runs the solve/feedback loop for one session.
type TrainScreen struct {
	session *trainer.Session
	input   components.MoveInput

	phase   phase
	current puzzle.Puzzle
	outcome adaptive.Outcome
	err     error
}

var _ screen.Screen = (*TrainScreen)(nil)
var _ screen.KeyHintProvider = (*TrainScreen)(nil)

// New creates a training screen over the given session.
func New(session *trainer.Session) *TrainScreen {
	return &TrainScreen{
		session: session,
		input:   components.NewMoveInput("moves in UCI, e.g. e8d7 d7d8"),
	}
}

func (t *TrainScreen) Init() tea.Cmd {
	return tea.Batch(t.input.Init(), t.nextPuzzle())
}

func (t *TrainScreen) nextPuzzle() tea.Cmd {
	return func() tea.Msg {
		p, err := t.session.Next(context.Background())
		return puzzleReadyMsg{Puzzle: p, Err: err}
	}
}

func (t *TrainScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case puzzleReadyMsg:
		if msg.Err != nil {
			t.err = msg.Err
			if errors.Is(msg.Err, trainer.ErrNoPuzzles) {
				t.phase = phaseEmpty
			} else {
				t.phase = phaseError
			}
			return t, nil
		}
		t.current = msg.Puzzle
		t.phase = phaseSolving
		t.input.Reset()
		return t, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			switch t.phase {
			case phaseSolving:
				t.judge()
				return t, nil
			case phaseFeedback:
				return t, t.nextPuzzle()
			}
			return t, nil
		}
	}

	if t.phase == phaseSolving {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}
	return t, nil
}

// judge scores the typed answer: empty input abandons the puzzle, anything
// else is compared against the solution continuation.
func (t *TrainScreen) judge() {
	answer := strings.Fields(strings.ToLower(strings.TrimSpace(t.input.Value())))

	switch {
	case len(answer) == 0:
		t.outcome = adaptive.Incomplete
	case equalMoves(answer, solution(t.current)):
		t.outcome = adaptive.Correct
	default:
		t.outcome = adaptive.Incorrect
	}

	t.input.Submit(t.outcome == adaptive.Correct)
	t.session.Submit(context.Background(), t.current, t.outcome)
	t.phase = phaseFeedback
}

// solution returns the moves the solver must find: everything after the
// opponent's setup move.
func solution(p puzzle.Puzzle) []string {
	if len(p.Moves) < 2 {
		return p.Moves
	}
	return p.Moves[1:]
}

func equalMoves(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (t *TrainScreen) View(width, height int) string {
	switch t.phase {
	case phaseEmpty:
		band := t.session.Band()
		return theme.Card.Render(fmt.Sprintf(
			"No puzzles rated %d–%d in this collection.\n\n%s",
			band.Lower, band.Upper,
			theme.Hint.Render("Add more puzzles or adjust your collection files.")))
	case phaseError:
		return theme.Card.Render(theme.Incorrect.Render("Failed to load puzzle") + "\n\n" + t.err.Error())
	}

	var b strings.Builder
	band := t.session.Band()
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"Puzzle %s   rated %d   band %d–%d", t.current.ID, t.current.Rating, band.Lower, band.Upper)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Position (FEN):"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("  " + t.current.FEN))
	b.WriteString("\n\n")
	if len(t.current.Themes) > 0 {
		b.WriteString(theme.Hint.Render("Themes: " + strings.Join(t.current.Themes, " ")))
		b.WriteString("\n\n")
	}
	if len(t.current.Moves) > 1 {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Opponent played %s — find the continuation (%d moves).",
			t.current.Moves[0], len(t.current.Moves)-1)))
		b.WriteString("\n\n")
	}
	b.WriteString(t.input.View())

	if t.phase == phaseFeedback {
		b.WriteString("\n\n")
		switch t.outcome {
		case adaptive.Correct:
			b.WriteString(theme.Correct.Render("Correct!"))
		case adaptive.Incomplete:
			b.WriteString(theme.Hint.Render("Skipped. Solution: " + strings.Join(solution(t.current), " ")))
		default:
			b.WriteString(theme.Incorrect.Render("Incorrect. Solution: " + strings.Join(solution(t.current), " ")))
		}
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Rating: %d", t.session.Rating())))
		if t.session.Window() == adaptive.Eased {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Rough patch — serving easier puzzles for a bit."))
		}
	}

	return theme.Card.Render(b.String())
}

func (t *TrainScreen) Title() string {
	return "Train"
}

// KeyHints customizes the footer for the training loop.
func (t *TrainScreen) KeyHints() []layout.KeyHint {
	if t.phase == phaseFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next puzzle"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit (empty to skip)"},
		{Key: "Esc", Description: "Back"},
	}
}
