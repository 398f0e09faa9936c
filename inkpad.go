/*
Package inkpad turns a live stream of pointer samples into smooth, variable-width
ink strokes. Strokes are rendered incrementally to a raster surface and captured
at the same time as a resolution-independent vector path.

This package holds the numeric vocabulary shared by the sub-packages:
pairs (2D points), timed points and affine transformations. The stroke
pipeline itself lives in package pad, which glues together curve fitting
(bezier), the width model (pen), stamping (raster) and vector capture (vecpath).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package inkpad

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkpad'
func tracer() tracing.Trace {
	return tracing.Select("inkpad")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector.
type Pair complex128

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both coordinates finite numbers?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Dist is the Euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return cmplx.Abs((p - q).C())
}

// Mid is the midpoint between p and q.
func (p Pair) Mid(q Pair) Pair {
	return (p + q) / 2
}

// Rounded returns p with both coordinates rounded to the nearest integer.
func (p Pair) Rounded() Pair {
	return P(math.Round(p.X()), math.Round(p.Y()))
}

// === Timed Points ==========================================================

// TimedPoint is a pointer sample: a position and a timestamp T in milliseconds.
type TimedPoint struct {
	Pair
	T float64
}

// TP is a quick notation for constructing a timed point.
func TP(x, y, t float64) TimedPoint {
	return TimedPoint{Pair: P(x, y), T: t}
}

// Set overwrites position and timestamp of a timed point. Returns tp to allow
// chaining on pooled instances.
func (tp *TimedPoint) Set(x, y, t float64) *TimedPoint {
	tp.Pair = P(x, y)
	tp.T = t
	return tp
}

// VelocityFrom returns the speed in length units per millisecond when moving
// from start to tp. Results which are not finite, e.g. for a zero time delta,
// are reported as 0.
func (tp TimedPoint) VelocityFrom(start TimedPoint) float64 {
	v := tp.Dist(start.Pair) / (tp.T - start.T)
	if !IsFinite(v) {
		tracer().Debugf("velocity %v -> %v not finite, using 0", start, tp)
		return 0
	}
	return v
}

func (tp TimedPoint) String() string {
	return fmt.Sprintf("(%g,%g)@%g", tp.X(), tp.Y(), tp.T)
}

// === Affine Transformations ================================================

// AT is an affine transformation of the plane. With fields named after
// their matrix positions it maps (x,y) to
//
//	| a c e |   | x |
//	| b d f | × | y |
//	| 0 0 1 |   | 1 |
//
// The zero value is not the identity; use Identity().
type AT struct {
	a, b, c, d, e, f float64
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{a: 1, d: 1}
}

// Translation transform. Translate a point by v.
func Translation(v Pair) AT {
	return AT{a: 1, d: 1, e: v.X(), f: v.Y()}
}

// Scaling transform. Scale a point by sx horizontally and sy vertically,
// relative to the origin.
func Scaling(sx, sy float64) AT {
	return AT{a: sx, d: sy}
}

// IsIdentity is a predicate: will m transform every point onto itself?
func (m AT) IsIdentity() bool {
	id := Identity()
	return Is0(m.a-id.a) && Is0(m.b-id.b) && Is0(m.c-id.c) &&
		Is0(m.d-id.d) && Is0(m.e-id.e) && Is0(m.f-id.f)
}

// LinearScale is the geometric mean of the scale factors of m. It is used to
// scale lengths which have no direction, e.g. pen widths.
func (m AT) LinearScale() float64 {
	return math.Sqrt(math.Abs(m.a*m.d - m.b*m.c))
}

func (m AT) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.a, m.b, m.c, m.d, m.e, m.f)
}

// Combine returns the transformation which applies m first, then n.
// Neither m nor n is changed.
func (m AT) Combine(n AT) AT {
	return AT{
		a: n.a*m.a + n.c*m.b,
		b: n.b*m.a + n.d*m.b,
		c: n.a*m.c + n.c*m.d,
		d: n.b*m.c + n.d*m.d,
		e: n.a*m.e + n.c*m.f + n.e,
		f: n.b*m.e + n.d*m.f + n.f,
	}
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m.a*x+m.c*y+m.e, m.b*x+m.d*y+m.f)
}
