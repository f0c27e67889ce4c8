package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/ballfield/internal/field"
)

// SVG collects filled circles into an SVG document. It satisfies
// field.Surface.
type SVG struct {
	width, height float64
	background    string
	body          strings.Builder
}

func NewSVG(width, height float64, background string) *SVG {
	return &SVG{width: width, height: height, background: background}
}

func (s *SVG) FillCircle(cx, cy, r float64, c color.Color) {
	fill, alpha := hexAlpha(c)
	if alpha >= 1 {
		fmt.Fprintf(&s.body, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, r, fill)
		return
	}
	fmt.Fprintf(&s.body, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\" fill-opacity=\"%.2f\"/>\n", cx, cy, r, fill, alpha)
}

func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.width, s.height, s.width, s.height)
	if s.background != "" {
		fmt.Fprintf(&sb, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", s.background)
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// hexAlpha splits a colour into an opaque hex string and its alpha.
func hexAlpha(c color.Color) (string, float64) {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	opaque := colorful.Color{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
	}
	return opaque.Hex(), float64(nrgba.A) / 255
}

// FrameToSVG renders bodies into a standalone SVG document.
func FrameToSVG(bodies []field.Body, pal field.Palette, width, height float64, background string) string {
	svg := NewSVG(width, height, background)
	field.DrawBodies(svg, bodies, pal)
	return svg.String()
}
