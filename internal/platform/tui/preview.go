package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cliprect/internal/anim"
	"github.com/vovakirdan/cliprect/internal/core"
	"github.com/vovakirdan/cliprect/internal/timing"
)

// DefaultTickRate is the preview frame rate when none is configured.
const DefaultTickRate = 30

// DefaultDuration is used for clips that do not set one.
const DefaultDuration = time.Second

// Lines below the stage: status, progress bar and help.
const chromeLines = 3

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Clip is a resolved clip animation ready to preview.
type Clip struct {
	Name     string
	Title    string
	Anim     *anim.ClipRect
	Ease     string
	Duration time.Duration
}

// PreviewOptions configures a preview.
type PreviewOptions struct {
	TickRate int
	Repeat   bool
	// Width and Height seed the layout before the first resize message.
	Width, Height int
	Logger        *log.Logger
}

// PreviewModel is the Bubble Tea model that plays a clip animation.
// The terminal below the status lines is the parent; the target is a
// box centered in it.
type PreviewModel struct {
	clip     Clip
	timeline timing.Timeline
	tickRate int
	logger   *log.Logger

	screen *core.Screen
	target core.Rect
	xf     anim.Transformation

	elapsed  time.Duration
	fraction float64
	width    int
	height   int
	paused   bool
	done     bool
	ticking  bool
	quitting bool

	keys     PreviewKeyMap
	help     help.Model
	progress progress.Model
}

// NewPreviewModel creates a preview for c.
func NewPreviewModel(c Clip, opts PreviewOptions) (PreviewModel, error) {
	if c.Anim == nil {
		return PreviewModel{}, errors.New("tui: clip has no animation")
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.Title == "" {
		c.Title = c.Name
	}

	tl, err := timing.NewTimeline(c.Duration, c.Ease, opts.Repeat)
	if err != nil {
		return PreviewModel{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	m := PreviewModel{
		clip:     c,
		timeline: tl,
		tickRate: tickRate,
		logger:   logger,
		screen:   core.NewScreen(0, 0),
		ticking:  true, // Init starts the tick loop
		keys:     DefaultPreviewKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}

	if opts.Width > 0 && opts.Height > 0 {
		m.resize(opts.Width, opts.Height)
	}
	return m, nil
}

// Init starts the tick loop.
func (m PreviewModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		m.elapsed = 0
		m.paused = false
		m.apply()
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.tickRate)
		}

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.seek(m.elapsed + tickInterval(m.tickRate))
		}

	case key.Matches(msg, m.keys.Back):
		if m.paused {
			m.seek(m.elapsed - tickInterval(m.tickRate))
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m PreviewModel) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		m.ticking = false
		return m, nil
	}
	if !m.paused {
		m.elapsed += tickInterval(m.tickRate)
		m.apply()
		if m.done {
			m.ticking = false
			return m, nil
		}
	}
	return m, tickCmd(m.tickRate)
}

// resize lays out the stage and re-resolves the clip for the new extents.
func (m *PreviewModel) resize(width, height int) {
	m.width, m.height = width, height
	stageH := core.Max(1, height-chromeLines)

	m.screen.Resize(width, stageH)
	m.target = targetBounds(width, stageH)
	m.clip.Anim.Initialize(m.target.Width(), m.target.Height(), width, stageH)

	m.progress.Width = core.Max(10, width-2)
	m.help.Width = width

	m.logger.Debug("resize",
		"clip", m.clip.Name,
		"parent", core.Size{W: width, H: stageH},
		"target", m.target,
		"from", m.clip.Anim.FromRect(),
		"to", m.clip.Anim.ToRect(),
	)
	m.apply()
}

func (m *PreviewModel) seek(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	if !m.timeline.Repeat && elapsed > m.timeline.Duration {
		elapsed = m.timeline.Duration
	}
	m.elapsed = elapsed
	m.apply()
}

// apply computes the clip for the current elapsed time.
func (m *PreviewModel) apply() {
	f, done := m.timeline.At(m.elapsed)
	m.fraction = f
	m.done = done
	m.xf.Clear()
	if m.clip.Anim.Initialized() {
		m.clip.Anim.ApplyTransformation(f, &m.xf)
	}
}

// View renders the stage and the status lines.
func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Waiting for terminal size..."
	}

	clip, ok := m.xf.ClipRect()
	if !ok {
		clip = core.Rect{}
	}
	drawStage(m.screen, m.target, clip, m.clip.Title)

	state := ""
	switch {
	case m.paused:
		state = "  [paused]"
	case m.done:
		state = "  [done]"
	}
	status := titleStyle.Render(m.clip.Title) + statusStyle.Render(fmt.Sprintf(
		"  ease %s  t=%.2f  clip %v%s", m.easeName(), m.fraction, clip, state))

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.timeline.Progress(m.elapsed)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m PreviewModel) easeName() string {
	if m.clip.Ease == "" {
		return timing.DefaultEase
	}
	return m.clip.Ease
}

// Fraction returns the eased fraction of the current frame.
func (m PreviewModel) Fraction() float64 { return m.fraction }

// ClipRect returns the current clip in target-local coordinates.
func (m PreviewModel) ClipRect() (core.Rect, bool) { return m.xf.ClipRect() }

// Target returns the target box in stage coordinates.
func (m PreviewModel) Target() core.Rect { return m.target }

// Done reports whether a non-repeating preview has finished.
func (m PreviewModel) Done() bool { return m.done }

// Paused reports whether playback is paused.
func (m PreviewModel) Paused() bool { return m.paused }

// Run starts a Bubble Tea program previewing c in the local terminal.
func Run(c Clip, opts PreviewOptions) error {
	model, err := NewPreviewModel(c, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
