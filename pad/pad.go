/*
Package pad turns a stream of timed touch samples into ink.

A Pad collects samples into a sliding window of four points. Whenever the
window is full, the segment between its two inner points is fitted, given a
start and end width by the pen model, stamped onto the raster surface and
recorded for vector export. The oldest sample is then evicted and recycled.

Samples arrive on a single goroutine; a Pad is not safe for concurrent use.
Callers learn about changes through the Update returned by every operation:
the dirty region to redraw, and lifecycle events like the start of a stroke
or the pad becoming empty or non-empty.

Usage

	p, _ := pad.New(pen.DefaultConfig())
	p.SetSize(640, 240)
	u := p.Down(10, 10, 0)
	u = p.Move(20, 12, 16)
	redraw := p.InvalidateRect(u)

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pad

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/npillmayer/inkpad"
	"github.com/npillmayer/inkpad/bezier"
	"github.com/npillmayer/inkpad/pen"
	"github.com/npillmayer/inkpad/raster"
	"github.com/npillmayer/inkpad/vecpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkpad.pad'
func tracer() tracing.Trace {
	return tracing.Select("inkpad.pad")
}

// MaxCoordinate bounds the absolute value of sample coordinates.
const MaxCoordinate = 1e6

var (
	// ErrInvalidSample indicates a sample which cannot be part of a stroke.
	ErrInvalidSample = errors.New("invalid sample")
	// ErrStrokeActive indicates an operation which must not interrupt a stroke.
	ErrStrokeActive = errors.New("stroke in progress")
)

// Action is the kind of a touch sample.
type Action uint8

// Touch actions
const (
	ActionDown Action = iota
	ActionMove
	ActionUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Sample is a single touch sample. T is a timestamp in milliseconds.
type Sample struct {
	Action Action
	X, Y   float64
	T      float64
}

func (s Sample) String() string {
	return fmt.Sprintf("%s(%g,%g)@%g", s.Action, s.X, s.Y, s.T)
}

// Validate checks a sample on its own, independent of any stroke.
func (s Sample) Validate() error {
	if s.Action > ActionUp {
		return fmt.Errorf("%w: unknown action %d", ErrInvalidSample, s.Action)
	}
	if !inkpad.IsFinite(s.X) || !inkpad.IsFinite(s.Y) || !inkpad.IsFinite(s.T) {
		return fmt.Errorf("%w: non-finite value in %v", ErrInvalidSample, s)
	}
	if math.Abs(s.X) > MaxCoordinate || math.Abs(s.Y) > MaxCoordinate {
		return fmt.Errorf("%w: coordinates out of range in %v", ErrInvalidSample, s)
	}
	return nil
}

// Pad is a signature pad: it owns the stroke state, the raster surface and
// the vector path of everything drawn since the last clear.
type Pad struct {
	model    pen.Model
	state    pen.State
	pool     *pool
	win      window
	stamper  *raster.Stamper
	surface  *raster.Surface  // nil until a size is known
	path     vecpath.Builder  // all segments since the last clear
	dirty    raster.DirtyRect // reset at every pen down
	anchor   inkpad.Pair      // position of the last pen down
	lastT    float64          // timestamp of the last accepted sample
	stroking bool             // between pen down and pen up
	empty    bool
}

// New creates an empty pad without a surface. Nothing is rasterized until
// SetSize or SetSurface is called, but the vector path is recorded anyway.
func New(cfg pen.Config) (*Pad, error) {
	m, err := pen.NewModel(cfg)
	if err != nil {
		return nil, err
	}
	p := &Pad{
		model:   m,
		pool:    newPool(),
		stamper: raster.NewStamper(cfg.Color),
		empty:   true,
	}
	m.Reset(&p.state)
	return p, nil
}

// Config returns the current pen configuration.
func (p *Pad) Config() pen.Config {
	return p.model.Config()
}

// SetConfig replaces the pen configuration. An invalid configuration is
// rejected and leaves the pad unchanged. The stroke in progress continues
// with the new widths from its last width on.
func (p *Pad) SetConfig(cfg pen.Config) error {
	m, err := pen.NewModel(cfg)
	if err != nil {
		return err
	}
	p.model = m
	p.stamper.SetColor(cfg.Color)
	tracer().Infof("pen config: width %g..%g, filter weight %g",
		cfg.MinWidth, cfg.MaxWidth, cfg.VelocityFilterWeight)
	return nil
}

// StrokeState returns the velocity and width carried between segments.
func (p *Pad) StrokeState() pen.State {
	return p.state
}

// IsEmpty is a predicate: has nothing been drawn since the last clear?
func (p *Pad) IsEmpty() bool {
	return p.empty
}

// Surface returns the raster surface, or nil if none is allocated yet.
func (p *Pad) Surface() *raster.Surface {
	return p.surface
}

// SetSurface attaches a surface allocated by the caller. Ink already on s is
// kept; the pad is not marked non-empty by it.
func (p *Pad) SetSurface(s *raster.Surface) {
	p.surface = s
}

// SetSize allocates the raster surface, or resizes an existing one. Resizing
// keeps the pixels which fit into the new size.
func (p *Pad) SetSize(w, h int) error {
	var s *raster.Surface
	var err error
	if p.surface == nil {
		s, err = raster.NewSurface(w, h)
	} else {
		s, err = p.surface.Resized(w, h)
	}
	if err != nil {
		return err
	}
	p.surface = s
	return nil
}

// Down starts a new stroke at (x,y).
func (p *Pad) Down(x, y, t float64) Update {
	return p.AcceptSample(Sample{Action: ActionDown, X: x, Y: y, T: t})
}

// Move continues the stroke to (x,y).
func (p *Pad) Move(x, y, t float64) Update {
	return p.AcceptSample(Sample{Action: ActionMove, X: x, Y: y, T: t})
}

// Up ends the stroke at (x,y).
func (p *Pad) Up(x, y, t float64) Update {
	return p.AcceptSample(Sample{Action: ActionUp, X: x, Y: y, T: t})
}

// AcceptSample feeds a touch sample into the pad.
//
// Malformed samples and samples going back in time within a stroke are
// rejected: the returned update is not accepted and the pad is unchanged.
// A move or up without a preceding down starts a stroke of its own.
func (p *Pad) AcceptSample(s Sample) Update {
	if err := p.check(s); err != nil {
		tracer().Errorf("rejected sample: %v", err)
		return Update{Dirty: p.dirty}
	}
	u := Update{Accepted: true}
	if s.Action == ActionDown || !p.stroking {
		p.beginStroke(s)
		u.Events |= EventStrokeStart
	} else {
		p.dirty.Span(p.anchor, inkpad.P(s.X, s.Y))
	}
	u.Segments = p.addPoint(s.X, s.Y, s.T)
	p.lastT = s.T
	if p.empty {
		p.empty = false
		u.Events |= EventSigned
	}
	if s.Action == ActionUp {
		p.stroking = false
	}
	u.Dirty = p.dirty
	return u
}

func (p *Pad) check(s Sample) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if p.stroking && s.Action != ActionDown && s.T < p.lastT {
		return fmt.Errorf("%w: timestamp %g before %g", ErrInvalidSample, s.T, p.lastT)
	}
	return nil
}

func (p *Pad) beginStroke(s Sample) {
	p.win.reset(p.pool)
	p.anchor = inkpad.P(s.X, s.Y)
	p.dirty.Reset(s.X, s.Y)
	p.stroking = true
}

// addPoint pushes a sample into the window and draws the segment completed
// by it, if any. It returns the number of segments drawn.
func (p *Pad) addPoint(x, y, t float64) int {
	p.win.push(p.pool.acquire(x, y, t))
	if p.win.len() == 1 {
		// the first point of a stroke starts the first segment, so the
		// pen-down sample opens a segment of its own
		p.win.push(p.pool.acquire(x, y, t))
		return 0
	}
	if !p.win.full() {
		return 0
	}
	w0, w1, w2, w3 := p.win.at(0), p.win.at(1), p.win.at(2), p.win.at(3)
	seg := bezier.SegmentFromWindow(w0.Pair, w1.Pair, w2.Pair, w3.Pair)
	wa, wb := p.model.Advance(&p.state, *w1, *w2)
	p.stamper.Stamp(p.surface, seg, wa, wb, &p.dirty)
	p.path.Append(seg, wa, wb)
	p.pool.release(p.win.shift())
	return 1
}

// Clear erases the surface and forgets all strokes. The pen state starts
// over. The returned update marks the whole surface dirty.
func (p *Pad) Clear() Update {
	p.win.reset(p.pool)
	p.model.Reset(&p.state)
	p.path.Reset()
	p.stroking = false
	p.lastT = 0
	u := Update{Accepted: true}
	if p.surface != nil {
		p.surface.Clear()
		w, h := p.surface.Size()
		p.dirty = raster.DirtyRect{Right: float64(w), Bottom: float64(h)}
	} else {
		p.dirty = raster.DirtyRect{}
	}
	if !p.empty {
		p.empty = true
		u.Events |= EventCleared
	}
	u.Dirty = p.dirty
	return u
}

// InvalidateRect returns the pixel region a display has to redraw after u:
// the dirty rectangle grown by the maximum stroke width.
func (p *Pad) InvalidateRect(u Update) image.Rectangle {
	return u.Dirty.Padded(p.model.Config().MaxWidth)
}

// Records returns the segments drawn since the last clear, with their widths.
func (p *Pad) Records() []vecpath.Record {
	return p.path.Records()
}

// VectorPath builds the vector form of the ink for a canvas of the given
// size. If a surface is allocated, the ink is mapped from surface space by
// FitTransform.
func (p *Pad) VectorPath(width, height int) *vecpath.Path {
	b := &p.path
	if m := p.FitTransform(width, height); !m.IsIdentity() {
		tracer().Debugf("vector path transform %s", m)
		b = b.Transformed(m)
	}
	return b.Build(width, height)
}

// FitTransform maps surface coordinates onto a canvas of width × height,
// scaled uniformly to fit and centered. Without a surface, or for an empty
// canvas, it is the identity.
func (p *Pad) FitTransform(width, height int) inkpad.AT {
	if p.surface == nil || width <= 0 || height <= 0 {
		return inkpad.Identity()
	}
	sw, sh := p.surface.Size()
	s := math.Min(float64(width)/float64(sw), float64(height)/float64(sh))
	margin := inkpad.P((float64(width)-s*float64(sw))/2, (float64(height)-s*float64(sh))/2)
	return inkpad.Scaling(s, s).Combine(inkpad.Translation(margin))
}

// SVG renders VectorPath(width, height) as an SVG document stroked with the
// pen color.
func (p *Pad) SVG(width, height int) string {
	return p.VectorPath(width, height).SVG(p.model.Config().Color)
}

// ExportSnapshot encodes the surface as PNG.
func (p *Pad) ExportSnapshot() ([]byte, error) {
	return raster.Export(p.surface)
}

// ImportSnapshot replaces the ink on the pad by a decoded image. If no
// surface is allocated, one of the image's size is created. The vector path
// is cleared, as an image carries no strokes.
//
// If data cannot be decoded, the pad is left unchanged. Importing during a
// stroke fails with ErrStrokeActive.
func (p *Pad) ImportSnapshot(data []byte) (Update, error) {
	if p.stroking {
		return Update{Dirty: p.dirty}, ErrStrokeActive
	}
	img, err := raster.Decode(data)
	if err != nil {
		return Update{Dirty: p.dirty}, err
	}
	if p.surface == nil {
		size := img.Bounds().Size()
		if p.surface, err = raster.NewSurface(size.X, size.Y); err != nil {
			return Update{Dirty: p.dirty}, err
		}
	}
	u := p.Clear()
	p.surface.Install(img)
	p.empty = false
	u.Events |= EventSigned
	tracer().Infof("imported snapshot of size %v", img.Bounds().Size())
	return u, nil
}
