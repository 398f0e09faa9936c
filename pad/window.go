package pad

import "github.com/npillmayer/inkpad"

// windowSize is the number of samples needed to fit one segment.
const windowSize = 4

// window holds the most recent samples of the active stroke, oldest first.
type window struct {
	pts [windowSize]*inkpad.TimedPoint
	n   int
}

func (w *window) len() int {
	return w.n
}

func (w *window) full() bool {
	return w.n == windowSize
}

// push appends a sample. The window must not be full.
func (w *window) push(tp *inkpad.TimedPoint) {
	if w.full() {
		panic("sample window overflow")
	}
	w.pts[w.n] = tp
	w.n++
}

func (w *window) at(i int) *inkpad.TimedPoint {
	return w.pts[i]
}

// shift removes and returns the oldest sample, or nil for an empty window.
func (w *window) shift() *inkpad.TimedPoint {
	if w.n == 0 {
		return nil
	}
	tp := w.pts[0]
	copy(w.pts[:], w.pts[1:w.n])
	w.n--
	w.pts[w.n] = nil
	return tp
}

// reset empties the window, returning all samples to pl.
func (w *window) reset(pl *pool) {
	for w.n > 0 {
		pl.release(w.shift())
	}
}
