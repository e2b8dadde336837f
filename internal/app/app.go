package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/flow"
	"github.com/abhisek/trivia/internal/prefs"
	"github.com/abhisek/trivia/internal/questions"
	"github.com/abhisek/trivia/internal/quiz"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/history"
	"github.com/abhisek/trivia/internal/screens/loading"
	"github.com/abhisek/trivia/internal/screens/question"
	"github.com/abhisek/trivia/internal/screens/result"
	"github.com/abhisek/trivia/internal/screens/review"
	"github.com/abhisek/trivia/internal/screens/start"
	"github.com/abhisek/trivia/internal/store"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// Options holds the dependencies the TUI runs on.
type Options struct {
	KV       store.KV
	Attempts store.AttemptRepo // optional
	Bank     *questions.Bank
	Logger   *log.Logger // optional; discarded when nil
}

// hydratedMsg is sent once saved progress and theme have been read.
type hydratedMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	opts    Options
	ctrl    *quiz.Controller
	prefs   *prefs.Service
	machine *flow.Machine

	hydrated   bool
	systemDark *bool // terminal background reported before hydration
	width      int
	height     int
}

// newAppModel creates a new AppModel showing the loading screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return AppModel{
		router: router.New(loading.New()),
		opts:   opts,
		ctrl:   quiz.NewController(opts.KV, opts.Bank, opts.Logger),
		prefs:  prefs.NewService(opts.KV, opts.Logger),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		tea.RequestBackgroundColor,
		m.hydrate(),
	)
}

// hydrate reads saved state off the UI loop. The controller and prefs are
// only read again after hydratedMsg arrives; until then the header shows
// the mode last applied to the theme.
func (m AppModel) hydrate() tea.Cmd {
	ctrl, p := m.ctrl, m.prefs
	return func() tea.Msg {
		ctx := context.Background()
		ctrl.Hydrate(ctx)
		p.Hydrate(ctx)
		return hydratedMsg{}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BackgroundColorMsg:
		dark := msg.IsDark()
		if !m.hydrated {
			m.systemDark = &dark
			return m, nil
		}
		theme.Apply(m.prefs.SetSystemDefault(dark))
		return m, nil

	case hydratedMsg:
		m.hydrated = true
		if m.systemDark != nil {
			m.prefs.SetSystemDefault(*m.systemDark)
		}
		theme.Apply(m.prefs.Mode())
		m.machine = flow.New(m.ctrl)
		return m, m.router.Reset(m.screenFor(m.machine.Screen()))

	case flow.TransitionMsg:
		if m.machine == nil {
			return m, nil
		}
		return m, m.router.Reset(m.screenFor(msg.To))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			if m.hydrated {
				theme.Apply(m.prefs.Toggle(context.Background()))
			}
			return m, nil
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

// screenFor builds the screen shown for a machine state.
func (m AppModel) screenFor(s flow.Screen) screen.Screen {
	switch s {
	case flow.ScreenStart:
		return start.New(m.machine, m.historyFactory())
	case flow.ScreenQuiz:
		return question.New(m.machine)
	case flow.ScreenReview:
		return review.New(m.machine)
	case flow.ScreenResult:
		return result.New(m.machine, m.opts.Attempts, m.opts.Logger, m.historyFactory())
	}
	panic(fmt.Sprintf("app: no screen for %s", s))
}

func (m AppModel) historyFactory() func() screen.Screen {
	if m.opts.Attempts == nil {
		return nil
	}
	repo := m.opts.Attempts
	return func() screen.Screen { return history.New(repo) }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	userName := ""
	if m.hydrated && m.machine.Screen() != flow.ScreenStart {
		userName = m.ctrl.Progress().UserName
	}
	header := layout.RenderHeader(title, userName, theme.Current(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
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
	return layout.RenderFrame(header, content, footer, m.width, m.height)
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
