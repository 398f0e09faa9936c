// Package bezier fits cubic Bezier segments to a sliding window of pointer
// samples.
/*

Fitting is local: every segment depends on four consecutive samples only, so
a segment can be emitted as soon as the fourth sample arrives. There is no
global spline system to solve, which keeps the cost per sample constant.

For three consecutive points p1, p2, p3 the fitter computes the midpoints
m1 = (p1+p2)/2 and m2 = (p2+p3)/2 and blends between them with the ratio of
the adjacent chord lengths

   k  = |p2-p3| / (|p1-p2| + |p2-p3|)
   cm = m2 + (m1-m2)*k

The pair (m1, m2) is then translated by p2-cm, which places the blended
point onto p2. The translated midpoints are the control points on both sides
of p2. They are collinear with p2, therefore two segments meeting at p2 share
their tangent direction there.

Usage

Clients keep a window of four samples w0..w3 and call

   seg := SegmentFromWindow(w0, w1, w2, w3)

which returns the segment from w1 to w2. After the oldest sample is dropped
and the next one arrives, the following call produces the segment from w2 to
w3, joining smoothly at w2.

Segments are value types. Nothing is cached between calls.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"fmt"
	"strings"
)

// AsString returns a segment as a (debugging) string in MetaPost-like
// notation:
//
//	(10,0) .. controls (12.5000,0.0000) and (17.5000,0.0000) .. (20,0)
func AsString(segs ...Segment) string {
	var sb strings.Builder
	for i, seg := range segs {
		if i == 0 {
			sb.WriteString(ptstring(seg.Start, false))
		} else if !seg.Start.Equal(segs[i-1].End) {
			sb.WriteString(" -- ")
			sb.WriteString(ptstring(seg.Start, false))
		}
		fmt.Fprintf(&sb, " .. controls %s and %s\n  .. %s", ptstring(seg.C1, true),
			ptstring(seg.C2, true), ptstring(seg.End, false))
	}
	return sb.String()
}
