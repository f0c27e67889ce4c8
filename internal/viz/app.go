package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"go.uber.org/zap"

	"github.com/san-kum/ballfield/internal/field"
	"github.com/san-kum/ballfield/internal/loop"
)

const (
	statusRows  = 1
	graphRows   = 8
	historySize = 240
)

// FrameMsg asks the app to advance one frame.
type FrameMsg uint64

// Options configures the terminal host.
type Options struct {
	FPS        int
	Theme      string
	CellWidth  float64
	CellHeight float64
	Logger     *zap.Logger
}

// App is the Bubble Tea model hosting a field.
type App struct {
	field  *field.Field
	canvas *Canvas
	theme  Theme
	pal    field.Palette
	styles styles
	log    *zap.Logger

	width, height int
	paused        bool
	showGraph     bool
	showHelp      bool

	last   field.StepStats
	energy []float64
}

func NewApp(f *field.Field, opts Options) *App {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		field:  f,
		canvas: NewCanvas(0, 0, opts.CellWidth, opts.CellHeight),
		log:    log,
	}
	a.setTheme(GetTheme(opts.Theme))
	return a
}

func (a *App) setTheme(t Theme) {
	a.theme = t
	a.pal = t.BallPalette()
	a.styles = newStyles(t)
}

func (a *App) Field() *field.Field { return a.field }

func (a *App) Canvas() *Canvas { return a.canvas }

func (a *App) Paused() bool { return a.paused }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
	case tea.MouseMsg:
		a.handleMouse(msg)
	case FrameMsg:
		if !a.paused {
			a.last = a.field.Step()
			a.energy = append(a.energy, a.field.KineticEnergy())
			if len(a.energy) > historySize {
				a.energy = a.energy[1:]
			}
		}
		a.draw()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case " ":
		a.paused = !a.paused
	case "t":
		a.setTheme(NextTheme(a.theme.Name))
		a.draw()
	case "g":
		a.showGraph = !a.showGraph
		a.layout()
	case "?":
		a.showHelp = !a.showHelp
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	x, y := a.canvas.CellToWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if a.field.Press(x, y) {
			i, _ := a.field.Dragged()
			a.log.Debug("drag started", zap.Int("body", i), zap.Float64("x", x), zap.Float64("y", y))
		}
	case tea.MouseActionMotion:
		a.field.Move(x, y)
	case tea.MouseActionRelease:
		a.field.Move(x, y)
		if i, ok := a.field.Dragged(); ok {
			a.log.Debug("body thrown", zap.Int("body", i))
		}
		a.field.Release()
	}
}

// layout sizes the canvas to the window minus the status bar and graph,
// then resizes the field to match.
func (a *App) layout() {
	rows := a.height - statusRows
	if a.showGraph {
		rows -= graphRows
	}
	if rows < 1 {
		rows = 1
	}
	a.canvas.Resize(a.width, rows)
	w, h := a.canvas.World()
	a.field.Resize(w, h)
	a.log.Debug("resized", zap.Int("cols", a.width), zap.Int("rows", rows),
		zap.Float64("width", w), zap.Float64("height", h))
	a.draw()
}

func (a *App) draw() {
	a.canvas.Clear()
	a.field.Draw(a.canvas, a.pal)
}

func (a *App) View() string {
	if a.showHelp {
		return a.helpView()
	}

	var b strings.Builder
	b.WriteString(a.canvas.Render())
	if a.showGraph && len(a.energy) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(a.energy,
			asciigraph.Height(graphRows-1),
			asciigraph.Width(max(a.width-12, 10)),
			asciigraph.Caption("kinetic energy")))
	}
	b.WriteString("\n")
	b.WriteString(a.statusView())
	return b.String()
}

func (a *App) statusView() string {
	s := a.styles
	state := s.running.Render("RUNNING")
	if a.paused {
		state = s.paused.Render("PAUSED")
	}
	parts := []string{
		s.title.Render("ballfield"),
		state,
		s.metric("frame", fmt.Sprintf("%d", a.field.Frame())),
		s.metric("balls", fmt.Sprintf("%d", a.field.Len())),
		s.metric("energy", fmt.Sprintf("%.1f", a.field.KineticEnergy())),
		s.metric("hits", fmt.Sprintf("%d", a.last.Collisions)),
		s.metric("theme", a.theme.Name),
	}
	if i, ok := a.field.Dragged(); ok {
		parts = append(parts, s.metric("drag", fmt.Sprintf("#%d", i)))
	}
	parts = append(parts, s.hint.Render("? help"))
	return strings.Join(parts, "  ")
}

func (a *App) helpView() string {
	s := a.styles
	lines := []string{
		s.title.Render("ballfield"),
		"",
		s.metric("mouse ", "move to push balls away"),
		s.metric("drag  ", "grab a ball and throw it"),
		s.metric("space ", "pause / resume"),
		s.metric("t     ", "next theme"),
		s.metric("g     ", "energy graph"),
		s.metric("?     ", "close help"),
		s.metric("q     ", "quit"),
	}
	panel := s.panel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(max(a.width, 1), max(a.height, 1), lipgloss.Center, lipgloss.Center, panel)
}

// Run hosts f in the terminal until the user quits or ctx is cancelled.
// Frames are driven by a loop handle that is always stopped on return.
func Run(ctx context.Context, f *field.Field, opts Options) error {
	app := NewApp(f, opts)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	h := loop.Start(ctx, loop.Interval(opts.FPS), func(frame uint64) bool {
		p.Send(FrameMsg(frame))
		return true
	})
	defer h.Stop()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}
