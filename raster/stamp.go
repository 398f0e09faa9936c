package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/npillmayer/inkpad"
	"github.com/npillmayer/inkpad/bezier"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the distance of the control points of a quarter circle from the
// ends, relative to the radius.
const kappa = 0.5522847498

// Stamper draws round stamps in a single color. It keeps scratch buffers
// between calls and must not be shared between goroutines.
type Stamper struct {
	src  *image.Uniform
	ras  vector.Rasterizer
	mask image.Alpha
	buf  []uint8
}

// NewStamper creates a stamper drawing in color c.
func NewStamper(c color.Color) *Stamper {
	return &Stamper{src: image.NewUniform(c)}
}

// SetColor changes the color of subsequent stamps.
func (st *Stamper) SetColor(c color.Color) {
	st.src = image.NewUniform(c)
}

// Color returns the current stamp color.
func (st *Stamper) Color() color.Color {
	return st.src.C
}

// Stamp covers seg with seg.Steps() stamps and returns the number of stamps
// which touched the surface. Stamp i sits at parameter t = i/steps; its width
// is blended from w0 to w1 by t³, so most of the width change happens towards
// the end of the segment. Every stamp position is added to dirty, if dirty is
// non-nil, whether or not the stamp is visible.
//
// If s is nil, nothing is drawn but dirty is still updated.
func (st *Stamper) Stamp(s *Surface, seg bezier.Segment, w0, w1 float64, dirty *DirtyRect) int {
	steps := seg.Steps()
	dw := w1 - w0
	drawn := 0
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		pt := seg.At(t)
		if s != nil && st.Dot(s, pt, w0+t*t*t*dw) {
			drawn++
		}
		if dirty != nil {
			dirty.Expand(pt.X(), pt.Y())
		}
	}
	if s == nil && steps > 0 {
		tracer().Debugf("no surface, skipped %d stamps", steps)
	}
	return drawn
}

// Dot draws a single filled circle of diameter width, centered at c. It
// reports whether any pixel of s was touched. Only the part of the circle
// inside s is rasterized, so the cost is bounded by the size of s.
func (st *Stamper) Dot(s *Surface, c inkpad.Pair, width float64) bool {
	r := float32(width / 2)
	if !(r > 0) {
		return false
	}
	x, y := float32(c.X()), float32(c.Y())
	// clip in float space, the circle's extent may not fit an int
	sr := s.img.Rect
	x0 := max(math32.Floor(x-r), float32(sr.Min.X))
	y0 := max(math32.Floor(y-r), float32(sr.Min.Y))
	x1 := min(math32.Ceil(x+r), float32(sr.Max.X))
	y1 := min(math32.Ceil(y+r), float32(sr.Max.Y))
	if !(x0 < x1 && y0 < y1) {
		return false
	}
	bbox := image.Rect(int(x0), int(y0), int(x1), int(y1))
	// rasterize the visible part of the circle into a mask local to bbox,
	// then composite
	w, h := bbox.Dx(), bbox.Dy()
	st.ras.Reset(w, h)
	st.ras.DrawOp = draw.Src
	circle(&st.ras, x-float32(bbox.Min.X), y-float32(bbox.Min.Y), r)
	mask := st.scratchMask(w, h)
	st.ras.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	draw.DrawMask(s.img, bbox, st.src, image.Point{}, mask, image.Point{}, draw.Over)
	return true
}

func (st *Stamper) scratchMask(w, h int) *image.Alpha {
	n := w * h
	if cap(st.buf) < n {
		st.buf = make([]uint8, n)
	}
	st.mask = image.Alpha{Pix: st.buf[:n], Stride: w, Rect: image.Rect(0, 0, w, h)}
	return &st.mask
}

// circle adds a circle around (cx,cy) as four cubic arcs.
func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := kappa * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
