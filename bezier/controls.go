package bezier

import (
	"math"

	"github.com/npillmayer/inkpad"
)

// FitControls calculates the control points on both sides of p2 for the
// triple p1, p2, p3. c1 is the control point entering p2, c2 the one leaving it.
//
// Coincident points are not an error: if the chords around p2 have zero total
// length, the blend factor falls back to 0 and both controls collapse onto p2.
func FitControls(p1, p2, p3 inkpad.Pair) (c1, c2 inkpad.Pair) {
	m1, m2 := p1.Mid(p2), p2.Mid(p3)
	l1, l2 := p1.Dist(p2), p2.Dist(p3)
	k := l2 / (l1 + l2)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		k = 0
	}
	cm := m2 + (m1-m2)*inkpad.Pair(complex(k, 0))
	t := p2 - cm
	return m1 + t, m2 + t
}

// SegmentFromWindow fits the segment between w1 and w2 of a window of four
// consecutive samples. The outer control points of both triples are not needed
// and are dropped.
func SegmentFromWindow(w0, w1, w2, w3 inkpad.Pair) Segment {
	_, c2 := FitControls(w0, w1, w2)
	c3, _ := FitControls(w1, w2, w3)
	return Segment{Start: w1, C1: c2, C2: c3, End: w2}
}
