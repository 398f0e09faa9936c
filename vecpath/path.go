package vecpath

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/core/paint/ppath"
	"github.com/npillmayer/inkpad"
)

// Curve is a cubic curve command, continuing from the current point.
type Curve struct {
	C1, C2, End inkpad.Pair
}

// Subpath is a move-to followed by curves, drawn with a single stroke width.
type Subpath struct {
	Width  int
	Start  inkpad.Pair
	Curves []Curve
}

func (sp *Subpath) last() inkpad.Pair {
	if len(sp.Curves) == 0 {
		return sp.Start
	}
	return sp.Curves[len(sp.Curves)-1].End
}

func (sp *Subpath) add(c Curve) {
	from := sp.last()
	if c.C1.Equal(from) && c.C2.Equal(from) && c.End.Equal(from) {
		return
	}
	sp.Curves = append(sp.Curves, c)
}

// Data returns the SVG path data of sp in absolute coordinates. Curves which
// are straight lines are emitted as line commands.
func (sp *Subpath) Data() string {
	var pp ppath.Path
	pp.MoveTo(f32(sp.Start))
	for _, c := range sp.Curves {
		x1, y1 := f32(c.C1)
		x2, y2 := f32(c.C2)
		x, y := f32(c.End)
		pp.CubeTo(x1, y1, x2, y2, x, y)
	}
	return pp.ToSVG()
}

func f32(p inkpad.Pair) (float32, float32) {
	return float32(p.X()), float32(p.Y())
}

// Path is a vector path declared for a canvas of Width × Height.
type Path struct {
	Width, Height int
	Subpaths      []Subpath
}

// IsEmpty is a predicate: does the path contain no curves?
func (p *Path) IsEmpty() bool {
	return len(p.Subpaths) == 0
}

// SVG renders the path as an SVG document, stroked in color c.
func (p *Path) SVG(c color.Color) string {
	var sb strings.Builder
	_ = p.WriteSVG(&sb, c)
	return sb.String()
}

// WriteSVG writes the path as an SVG 1.2 tiny document to w, one <path>
// element per subpath.
func (p *Path) WriteSVG(w io.Writer, c color.Color) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" version="1.2" baseProfile="tiny" `+
		`height="%d" width="%d" viewBox="0 0 %d %d">`, p.Height, p.Width, p.Width, p.Height)
	sb.WriteString(`<g stroke-linejoin="round" stroke-linecap="round" fill="none" `)
	sb.WriteString(strokeAttrs(c))
	sb.WriteString(">")
	for _, sp := range p.Subpaths {
		fmt.Fprintf(&sb, `<path stroke-width="%d" d="%s"/>`, sp.Width, sp.Data())
	}
	sb.WriteString("</g></svg>")
	_, err := io.WriteString(w, sb.String())
	return err
}

func strokeAttrs(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf(`stroke="#%02x%02x%02x"`, n.R, n.G, n.B)
	if n.A < 0xff {
		s += fmt.Sprintf(` stroke-opacity="%.3g"`, float64(n.A)/255)
	}
	return s
}
