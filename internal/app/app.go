// Package app hosts the root Bubble Tea model: screen routing, the shared
// header/footer frame, and the listener that refreshes solved counts when the
// progress store broadcasts a change.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tactix/internal/progress"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/router"
	"github.com/abhisek/tactix/internal/screens/home"
	"github.com/abhisek/tactix/internal/trainer"
	"github.com/abhisek/tactix/internal/ui/layout"

	"github.com/abhisek/tactix/internal/screen"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Session  *trainer.Session
	Repos    []puzzle.Repository
	Progress *progress.Store
}

// progressChangedMsg is emitted when the progress store signals a change.
type progressChangedMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	opts    Options
	signals <-chan string

	width       int
	height      int
	solvedTotal int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router:      router.New(home.New(opts.Session, opts.Repos, opts.Progress)),
		opts:        opts,
		signals:     opts.Progress.Notifier().Subscribe(),
		solvedTotal: totalSolved(opts),
	}
}

func totalSolved(opts Options) int {
	ctx := context.Background()
	total := 0
	for _, repo := range opts.Repos {
		total += opts.Progress.SolvedCount(ctx, repo.Collection())
	}
	return total
}

// waitForProgressSignal blocks on the notifier channel and re-enters the
// update loop when the store broadcasts.
func (m AppModel) waitForProgressSignal() tea.Cmd {
	return func() tea.Msg {
		<-m.signals
		return progressChangedMsg{}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.waitForProgressSignal()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case progressChangedMsg:
		m.solvedTotal = totalSolved(m.opts)
		return m, m.waitForProgressSignal()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.Session.Rating(), m.solvedTotal, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
