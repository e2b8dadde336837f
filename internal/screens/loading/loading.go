package loading

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// LoadingScreen is shown until saved progress has been read. It never
// transitions by itself; the app replaces it once hydration finishes.
type LoadingScreen struct {
	spinner spinner.Model
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates a LoadingScreen.
func New() *LoadingScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &LoadingScreen{spinner: sp}
}

func (l *LoadingScreen) Title() string {
	return ""
}

func (l *LoadingScreen) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LoadingScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Foreground(theme.Accent).Render(l.spinner.View()) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Loading your quiz..."),
	}
	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
