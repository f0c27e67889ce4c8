// Package gui hosts the ball field in a raylib window.
package gui

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/ballfield/internal/field"
	"github.com/san-kum/ballfield/internal/viz"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

// Options configures the window host.
type Options struct {
	Width, Height int
	FPS           int
	Theme         string
	Logger        *zap.Logger
}

type App struct {
	Field   *field.Field
	Theme   viz.Theme
	Palette field.Palette
	Bg      rl.Color
	Paused  bool
	ShowHUD bool

	last field.StepStats
	log  *zap.Logger
}

func NewApp(f *field.Field, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Field: f, ShowHUD: true, log: log}
	a.setTheme(viz.GetTheme(opts.Theme))
	return a
}

func (a *App) setTheme(t viz.Theme) {
	a.Theme = t
	a.Palette = t.BallPalette()
	a.Bg = toRL(hexColor(string(t.Background)))
}

// initWindow opens a resizable window and sets the frame rate.
func initWindow(w, h, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w), int32(h), "ballfield")
	rl.SetTargetFPS(int32(fps))
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// raylib must own the calling goroutine, so frames follow its own timer.
func Run(ctx context.Context, f *field.Field, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", opts.Width, opts.Height, field.ErrParameterBounds)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	initWindow(opts.Width, opts.Height, opts.FPS)
	defer rl.CloseWindow()

	a := NewApp(f, opts)
	f.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	a.log.Info("window opened", zap.Int("width", rl.GetScreenWidth()), zap.Int("height", rl.GetScreenHeight()))

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		a.Update()
		a.Draw()
	}
	return nil
}

// Update forwards window input to the field and advances one frame.
func (a *App) Update() {
	if rl.IsWindowResized() {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		a.Field.Resize(float64(w), float64(h))
		a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.Paused = !a.Paused
	case rl.IsKeyPressed(rl.KeyT):
		a.setTheme(viz.NextTheme(a.Theme.Name))
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	}

	m := rl.GetMousePosition()
	x, y := float64(m.X), float64(m.Y)
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		if a.Field.Press(x, y) {
			i, _ := a.Field.Dragged()
			a.log.Debug("drag started", zap.Int("body", i))
		}
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		a.Field.Move(x, y)
		a.Field.Release()
	default:
		a.Field.Move(x, y)
	}

	if !a.Paused {
		a.last = a.Field.Step()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.Bg)
	a.Field.Draw(surface{}, a.Palette)
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	status := "running"
	if a.Paused {
		status = "paused"
	}
	rl.DrawText(fmt.Sprintf("%s  frame %d  energy %.1f  hits %d  %s",
		status, a.Field.Frame(), a.Field.KineticEnergy(), a.last.Collisions, a.Theme.Name),
		12, 12, 16, ColText)
	rl.DrawText("space pause  t theme  h hud  esc close", 12, int32(rl.GetScreenHeight())-24, 14, ColTextDim)
}
