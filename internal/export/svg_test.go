package export

import (
	"image/color"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/ballfield/internal/field"
)

func TestFrameToSVG(t *testing.T) {
	bodies := []field.Body{
		field.NewBody(r2.Vec{X: 100, Y: 100}, r2.Vec{}, 50, 0),
		field.NewBody(r2.Vec{X: 300, Y: 200}, r2.Vec{}, 20, 1),
	}
	pal := field.MustParsePalette([]string{"#ff0000", "#00ff00"})

	out := FrameToSVG(bodies, pal, 400, 300, "#0a0a0a")

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatalf("not a complete document:\n%s", out)
	}
	if got := strings.Count(out, "<circle"); got != 4 {
		t.Errorf("expected 4 circles, got %d", got)
	}
	for _, want := range []string{
		`<circle cx="100.0" cy="100.0" r="50.0" fill="#ff0000"/>`,
		`<circle cx="85.0" cy="85.0" r="20.0" fill="#ffffff" fill-opacity="0.10"/>`,
		`fill="#00ff00"`,
		`fill="#0a0a0a"`,
		`viewBox="0 0 400 300"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}

func TestSVGNoBackground(t *testing.T) {
	s := NewSVG(10, 10, "")
	s.FillCircle(5, 5, 2, color.NRGBA{R: 255, A: 255})
	out := s.String()
	if strings.Contains(out, "<rect") {
		t.Error("unexpected background rect")
	}
	if !strings.Contains(out, `fill="#ff0000"/>`) {
		t.Errorf("opaque circle rendered with opacity:\n%s", out)
	}
}
