// Package progressview renders per-collection solved counts. It holds no
// selection or rating logic; everything shown is re-read from the store.
package progressview

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tactix/internal/progress"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/screen"
	"github.com/abhisek/tactix/internal/ui/theme"
)

// ProgressScreen lists solved counts for every configured collection.
type ProgressScreen struct {
	repos []puzzle.Repository
	store *progress.Store
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(repos []puzzle.Repository, store *progress.Store) *ProgressScreen {
	return &ProgressScreen{repos: repos, store: store}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	ctx := context.Background()

	var b strings.Builder
	b.WriteString(theme.Title.Render("PROGRESS"))
	b.WriteString("\n\n")

	if len(p.repos) == 0 {
		b.WriteString(theme.Hint.Render("No puzzle collections configured."))
		return theme.Card.Render(b.String())
	}

	totalSolved := 0
	totalCount := 0
	for _, repo := range p.repos {
		key := repo.Collection()
		solved := p.store.SolvedCount(ctx, key)
		count, err := repo.Count(ctx)

		line := fmt.Sprintf("%-24s", filepath.Base(key))
		if err != nil {
			line += theme.Incorrect.Render("unavailable")
		} else {
			line += fmt.Sprintf("%4d / %d", solved, count)
			totalCount += count
		}
		totalSolved += solved

		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Total solved: %d / %d", totalSolved, totalCount)))

	return theme.Card.Render(b.String())
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}
