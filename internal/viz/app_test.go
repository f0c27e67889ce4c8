package viz

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/ballfield/internal/field"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	f, err := field.New(field.DefaultParams(), 7)
	require.NoError(t, err)
	app := NewApp(f, Options{CellWidth: 8, CellHeight: 16})
	app.Update(tea.WindowSizeMsg{Width: 160, Height: 45})
	return app
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppResizePopulates(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, 12, app.Field().Len())
	w, h := app.Field().Bounds()
	assert.Equal(t, 160*8.0, w)
	assert.Equal(t, 44*16.0, h)

	before := app.Field().Bodies()
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, before, app.Field().Bodies(), "resize must not recreate bodies")
}

func TestAppFrameSteps(t *testing.T) {
	app := newTestApp(t)
	app.Update(FrameMsg(0))
	app.Update(FrameMsg(1))
	assert.Equal(t, uint64(2), app.Field().Frame())
	assert.NotEmpty(t, app.View())
}

func TestAppPause(t *testing.T) {
	app := newTestApp(t)
	app.Update(key(" "))
	require.True(t, app.Paused())

	app.Update(FrameMsg(0))
	assert.Equal(t, uint64(0), app.Field().Frame())

	app.Update(key(" "))
	app.Update(FrameMsg(1))
	assert.Equal(t, uint64(1), app.Field().Frame())
}

func TestAppMouseDrag(t *testing.T) {
	app := newTestApp(t)
	c := app.Canvas()
	target := app.Field().Bodies()[0]
	col := int(target.Pos.X / c.CellW)
	row := int(target.Pos.Y / c.CellH)

	app.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, ok := app.Field().Dragged()
	require.True(t, ok, "press on a ball should start a drag")

	app.Update(tea.MouseMsg{X: col + 1, Y: row, Action: tea.MouseActionMotion})
	app.Update(FrameMsg(0))
	i, _ := app.Field().Dragged()
	b := app.Field().Bodies()[i]
	x, y := c.CellToWorld(col+1, row)
	assert.Equal(t, x, b.Pos.X)
	assert.Equal(t, y, b.Pos.Y)
	assert.InDelta(t, c.CellW*1.5, b.Vel.X, 1e-9)

	app.Update(tea.MouseMsg{X: col + 1, Y: row, Action: tea.MouseActionRelease})
	_, ok = app.Field().Dragged()
	assert.False(t, ok)
}

func TestAppRightClickIgnored(t *testing.T) {
	app := newTestApp(t)
	b := app.Field().Bodies()[0]
	col := int(b.Pos.X / app.Canvas().CellW)
	row := int(b.Pos.Y / app.Canvas().CellH)

	app.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	_, ok := app.Field().Dragged()
	assert.False(t, ok)
}

func TestAppKeys(t *testing.T) {
	app := newTestApp(t)

	app.Update(key("t"))
	assert.Equal(t, Themes[1].Name, app.theme.Name)

	app.Update(key("g"))
	rows := 45 - statusRows - graphRows
	assert.Equal(t, rows, app.Canvas().Height)
	_, h := app.Field().Bounds()
	assert.Equal(t, float64(rows)*16, h)

	app.Update(key("?"))
	assert.Contains(t, app.View(), "throw")

	_, cmd := app.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
