/*
Package vecpath records fitted stroke segments as a resolution-independent
vector path.

Each segment is stored together with a single width, the mean of its start
and end widths. A recorded path does not depend on the size of any raster
surface; it may be transformed and rendered to markup at any logical size.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package vecpath

import (
	"github.com/npillmayer/inkpad"
	"github.com/npillmayer/inkpad/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkpad.vecpath'
func tracer() tracing.Trace {
	return tracing.Select("inkpad.vecpath")
}

// Record is a cubic segment of the vector path with its stroke width.
type Record struct {
	bezier.Segment
	Width float64
}

// Builder collects segment records in the order they are appended.
// The zero value is an empty builder.
type Builder struct {
	records []Record
}

// Append adds a segment whose width runs from w0 to w1. The record stores the
// mean width.
func (b *Builder) Append(seg bezier.Segment, w0, w1 float64) {
	b.records = append(b.records, Record{Segment: seg, Width: (w0 + w1) / 2})
}

// Len returns the number of recorded segments.
func (b *Builder) Len() int {
	return len(b.records)
}

// IsEmpty is a predicate: has no segment been recorded?
func (b *Builder) IsEmpty() bool {
	return len(b.records) == 0
}

// Records returns a copy of the recorded segments.
func (b *Builder) Records() []Record {
	r := make([]Record, len(b.records))
	copy(r, b.records)
	return r
}

// Reset drops all records.
func (b *Builder) Reset() {
	b.records = b.records[:0]
}

// Transformed returns a new builder holding all records mapped by m. Widths
// are scaled by the linear scale factor of m.
func (b *Builder) Transformed(m inkpad.AT) *Builder {
	t := &Builder{records: make([]Record, len(b.records))}
	s := m.LinearScale()
	for i, r := range b.records {
		t.records[i] = Record{Segment: r.Transformed(m), Width: r.Width * s}
	}
	return t
}

// Build converts the records to a path declared for a canvas of width ×
// height. Coordinates and widths are rounded to integers. Consecutive segments
// are joined into one subpath as long as each starts where the previous one
// ended and their rounded widths agree. Segments which collapse to a point
// after rounding are dropped.
func (b *Builder) Build(width, height int) *Path {
	p := &Path{Width: width, Height: height}
	var cur *Subpath
	for _, r := range b.records {
		w := int(r.Width + 0.5)
		start := r.Start.Rounded()
		if cur == nil || w != cur.Width || !start.Equal(cur.last()) {
			p.Subpaths = append(p.Subpaths, Subpath{Width: w, Start: start})
			cur = &p.Subpaths[len(p.Subpaths)-1]
		}
		cur.add(Curve{C1: r.C1.Rounded(), C2: r.C2.Rounded(), End: r.End.Rounded()})
	}
	// drop subpaths which lost all their curves
	n := 0
	for _, sp := range p.Subpaths {
		if len(sp.Curves) > 0 {
			p.Subpaths[n] = sp
			n++
		}
	}
	p.Subpaths = p.Subpaths[:n]
	tracer().Debugf("built vector path of %d subpaths from %d segments", n, len(b.records))
	return p
}
