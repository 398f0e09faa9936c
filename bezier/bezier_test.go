package bezier

import (
	"math"
	"testing"

	"github.com/npillmayer/inkpad"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFitControlsStraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c1, c2 := FitControls(inkpad.P(0, 0), inkpad.P(10, 0), inkpad.P(20, 0))
	assert.True(t, c1.Equal(inkpad.P(5, 0)), "c1 = %v", c1)
	assert.True(t, c2.Equal(inkpad.P(15, 0)), "c2 = %v", c2)
}

func TestFitControlsUnevenChords(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// l1 = 10, l2 = 30, k = 3/4
	p1, p2, p3 := inkpad.P(0, 0), inkpad.P(10, 0), inkpad.P(10, 30)
	c1, c2 := FitControls(p1, p2, p3)
	// m1 = (5,0), m2 = (10,15), cm = m2 + (m1-m2)*0.75 = (6.25,3.75)
	// t = p2 - cm = (3.75,-3.75)
	assert.True(t, c1.Equal(inkpad.P(8.75, -3.75)), "c1 = %v", c1)
	assert.True(t, c2.Equal(inkpad.P(13.75, 11.25)), "c2 = %v", c2)
	// controls and p2 are collinear
	d1, d2 := p2-c1, c2-p2
	cross := d1.X()*d2.Y() - d1.Y()*d2.X()
	assert.InDelta(t, 0.0, cross, 1e-9)
}

func TestFitControlsCoincident(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := inkpad.P(5, 5)
	c1, c2 := FitControls(p, p, p)
	assert.True(t, c1.Equal(p))
	assert.True(t, c2.Equal(p))
	seg := SegmentFromWindow(p, p, p, p)
	assert.True(t, seg.IsDegenerate())
	assert.Equal(t, 0, seg.Steps())
}

func TestSegmentFromWindow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	seg := SegmentFromWindow(inkpad.P(0, 0), inkpad.P(10, 0), inkpad.P(20, 0), inkpad.P(30, 0))
	assert.True(t, seg.Start.Equal(inkpad.P(10, 0)))
	assert.True(t, seg.End.Equal(inkpad.P(20, 0)))
	assert.True(t, seg.C1.Equal(inkpad.P(15, 0)), "C1 = %v", seg.C1)
	assert.True(t, seg.C2.Equal(inkpad.P(15, 0)), "C2 = %v", seg.C2)
	assert.InDelta(t, 10.0, seg.Length(), 1e-9)
	assert.Equal(t, 10, seg.Steps())
	t.Logf("segment = %s", AsString(seg))
}

func TestSegmentsJoinSmoothly(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []inkpad.Pair{inkpad.P(0, 0), inkpad.P(10, 5), inkpad.P(20, 0), inkpad.P(30, 8), inkpad.P(35, 20)}
	s1 := SegmentFromWindow(pts[0], pts[1], pts[2], pts[3])
	s2 := SegmentFromWindow(pts[1], pts[2], pts[3], pts[4])
	assert.True(t, s1.End.Equal(s2.Start))
	in, out := s1.End-s1.C2, s2.C1-s2.Start
	angle := math.Atan2(in.Y(), in.X()) - math.Atan2(out.Y(), out.X())
	assert.InDelta(t, 0.0, angle, 1e-9, "tangents at joint differ")
}

func TestBernstein(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegment(inkpad.P(0, 0), inkpad.P(0, 10), inkpad.P(10, 10), inkpad.P(10, 0))
	assert.True(t, seg.At(0).Equal(seg.Start))
	assert.True(t, seg.At(1).Equal(seg.End))
	assert.True(t, seg.At(0.5).Equal(inkpad.P(5, 7.5)), "B(0.5) = %v", seg.At(0.5))
	l := seg.Length()
	assert.Greater(t, l, 10.0*math.Sqrt2) // longer than a chord
	assert.Less(t, l, 30.0)               // shorter than the control polygon
}

func TestAtKeepsConstantCoordinates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := SegmentFromWindow(inkpad.P(0, 10), inkpad.P(10, 10), inkpad.P(20, 10), inkpad.P(30, 10))
	for i := 0; i <= 10; i++ {
		pt := seg.At(float64(i) / 10)
		if pt.Y() != 10 {
			t.Errorf("B(%d/10) = %v, expected y = 10 exactly", i, pt)
		}
	}
}

func TestStepsBelowEpsilon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tiny := NewSegment(inkpad.P(1, 1), inkpad.P(1, 1), inkpad.P(1, 1), inkpad.P(1+inkpad.Epsilon/2, 1))
	assert.Equal(t, 0, tiny.Steps())
	short := NewSegment(inkpad.P(1, 1), inkpad.P(1, 1), inkpad.P(1.1, 1), inkpad.P(1.2, 1))
	assert.Equal(t, 1, short.Steps())
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegment(inkpad.P(1, 1), inkpad.P(2, 1), inkpad.P(3, 1), inkpad.P(4, 1))
	s := seg.Transformed(inkpad.Scaling(2, 3))
	assert.True(t, s.Start.Equal(inkpad.P(2, 3)))
	assert.True(t, s.End.Equal(inkpad.P(8, 3)))
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegment(inkpad.P(10, 0), inkpad.P(12.5, 0), inkpad.P(17.5, 0), inkpad.P(20, 0))
	want := "(10,0) .. controls (12.5000,0.0000) and (17.5000,0.0000)\n  .. (20,0)"
	if got := AsString(seg); got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}
