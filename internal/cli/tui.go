package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/cloud/motion"
	"github.com/matzehuels/wordstorm/pkg/core/render/sink"
)

// frameInterval paces the terminal animation, about 20 frames per second.
const frameInterval = 50 * time.Millisecond

// Terminal size used before the first WindowSizeMsg arrives.
const (
	defaultCols = 100
	defaultRows = 30
)

var previewHelpStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// PreviewModel - Animated cloud in the terminal
// =============================================================================

type tickMsg time.Time

// PreviewModel is the bubbletea model that plays the entrance and float
// animation of a layout on the character grid.
type PreviewModel struct {
	anim   *motion.Animator
	width  float64
	height float64
	title  string

	cols, rows int
	paused     bool
	pausedAt   time.Time
	// lag is the total time spent paused since mount; the animation clock
	// runs that far behind the wall clock.
	lag   time.Duration
	frame string

	now func() time.Time
}

// NewPreviewModel creates a model for l. The animator mounts on Init.
func NewPreviewModel(l cloud.Layout, p motion.Params, title string) PreviewModel {
	return PreviewModel{
		anim:   motion.NewAnimator(l, p),
		width:  l.Width,
		height: l.Height,
		title:  title,
		cols:   defaultCols,
		rows:   defaultRows,
		now:    time.Now,
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m PreviewModel) Init() tea.Cmd {
	m.anim.Mount(m.now())
	return tick()
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.anim.Unmount()
			return m, tea.Quit
		case "r":
			m.anim.Mount(m.now())
			m.paused, m.lag = false, 0
		case " ", "p":
			m.togglePause()
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 20)
		m.rows = max(msg.Height-3, 5)
		m.frame = m.render()
	case tickMsg:
		if !m.anim.Mounted() {
			return m, nil
		}
		if !m.paused {
			m.frame = m.render()
		}
		return m, tick()
	}
	return m, nil
}

// togglePause freezes the animation clock, or resumes it where it stopped.
func (m *PreviewModel) togglePause() {
	if m.paused {
		m.lag += m.now().Sub(m.pausedAt)
		m.paused = false
		return
	}
	m.pausedAt = m.now()
	m.paused = true
}

// clock returns the animation time: wall time minus pauses, frozen while
// paused.
func (m PreviewModel) clock() time.Time {
	t := m.now()
	if m.paused {
		t = m.pausedAt
	}
	return t.Add(-m.lag)
}

func (m PreviewModel) render() string {
	return sink.RenderTerminalFrame(m.anim.Frame(m.clock()), m.width, m.height, m.cols, m.rows)
}

func (m PreviewModel) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(StyleTitle.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(m.frame)
	b.WriteString("\n")

	status := "playing"
	if m.paused {
		status = "paused"
	}
	b.WriteString(previewHelpStyle.Render(fmt.Sprintf("%s  ␣ pause  r replay  q quit", status)))
	return b.String()
}
