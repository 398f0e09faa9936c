package bezier

import (
	"math"

	"github.com/npillmayer/inkpad"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkpad.bezier'
func tracer() tracing.Trace {
	return tracing.Select("inkpad.bezier")
}

// lengthSteps is the number of chords used to estimate the arc length of a
// segment.
const lengthSteps = 10

// Segment is a cubic Bezier curve from Start to End, shaped by control points
// C1 and C2.
type Segment struct {
	Start inkpad.Pair
	C1    inkpad.Pair
	C2    inkpad.Pair
	End   inkpad.Pair
}

// NewSegment creates a segment from its four defining points.
func NewSegment(start, c1, c2, end inkpad.Pair) Segment {
	return Segment{Start: start, C1: c1, C2: c2, End: end}
}

// At evaluates the segment at parameter t ∈ [0,1], i.e. the Bernstein form
//
//	B(t) = (1-t)³ P0 + 3(1-t)²t P1 + 3(1-t)t² P2 + t³ P3
//
// It is computed by repeated linear interpolation (de Casteljau), which keeps
// coordinates exact where all four points agree on them.
func (seg Segment) At(t float64) inkpad.Pair {
	x := casteljau(seg.Start.X(), seg.C1.X(), seg.C2.X(), seg.End.X(), t)
	y := casteljau(seg.Start.Y(), seg.C1.Y(), seg.C2.Y(), seg.End.Y(), t)
	return inkpad.P(x, y)
}

func casteljau(p0, p1, p2, p3, t float64) float64 {
	q0, q1, q2 := lerp(p0, p1, t), lerp(p1, p2, t), lerp(p2, p3, t)
	r0, r1 := lerp(q0, q1, t), lerp(q1, q2, t)
	return lerp(r0, r1, t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Length estimates the arc length of the segment by summing the chords of a
// polyline through lengthSteps+1 evenly spaced curve points. The estimate
// never exceeds the true arc length.
func (seg Segment) Length() float64 {
	length := 0.0
	prev := seg.Start
	for i := 1; i <= lengthSteps; i++ {
		pt := seg.At(float64(i) / lengthSteps)
		length += pt.Dist(prev)
		prev = pt
	}
	return length
}

// Steps is the number of stamps needed to cover the segment with at least one
// stamp per unit of length. Segments which are not finite have 0 steps.
func (seg Segment) Steps() int {
	l := seg.Length()
	if !inkpad.IsFinite(l) {
		tracer().Errorf("segment %s has non-finite length", AsString(seg))
		return 0
	}
	// lengths are sums of chords, so ignore noise in the last digits.
	// Segments shorter than Epsilon therefore get no stamp at all.
	n := int(math.Ceil(l - inkpad.Epsilon))
	if n < 0 {
		return 0
	}
	return n
}

// IsDegenerate is a predicate: does the segment collapse to a single point?
func (seg Segment) IsDegenerate() bool {
	return seg.Start.Equal(seg.End) && seg.C1.Equal(seg.Start) && seg.C2.Equal(seg.Start)
}

// Transformed returns the segment with all four points mapped by m.
func (seg Segment) Transformed(m inkpad.AT) Segment {
	return Segment{
		Start: m.Transform(seg.Start),
		C1:    m.Transform(seg.C1),
		C2:    m.Transform(seg.C2),
		End:   m.Transform(seg.End),
	}
}
