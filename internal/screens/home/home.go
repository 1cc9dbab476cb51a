package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tactix/internal/progress"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/router"
	"github.com/abhisek/tactix/internal/screen"
	progressscreen "github.com/abhisek/tactix/internal/screens/progressview"
	"github.com/abhisek/tactix/internal/screens/train"
	"github.com/abhisek/tactix/internal/trainer"
	"github.com/abhisek/tactix/internal/ui/components"
	"github.com/abhisek/tactix/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu    components.Menu
	session *trainer.Session
	repos   []puzzle.Repository
	store   *progress.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(session *trainer.Session, repos []puzzle.Repository, store *progress.Store) *HomeScreen {
	h := &HomeScreen{session: session, repos: repos, store: store}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "TRAIN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: train.New(session)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(repos, store)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	ctx := context.Background()

	solved := 0
	total := 0
	for _, repo := range h.repos {
		solved += h.store.SolvedCount(ctx, repo.Collection())
		if n, err := repo.Count(ctx); err == nil {
			total += n
		}
	}

	band := h.session.Band()

	var b strings.Builder
	b.WriteString(theme.Title.Render("TACTIX"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("adaptive tactics training"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Rating %d   Band %d–%d   Solved %d/%d",
		h.session.Rating(), band.Lower, band.Upper, solved, total)))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	return theme.Card.Render(b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
