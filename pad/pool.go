package pad

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/inkpad"
)

// pool recycles timed points on the sampling hot path. Released points are
// handed out again in LIFO order.
type pool struct {
	free      *arraystack.Stack
	allocated int // number of points ever allocated
}

func newPool() *pool {
	return &pool{free: arraystack.New()}
}

// acquire returns a recycled point if one is available, a fresh one otherwise.
func (pl *pool) acquire(x, y, t float64) *inkpad.TimedPoint {
	if v, ok := pl.free.Pop(); ok {
		return v.(*inkpad.TimedPoint).Set(x, y, t)
	}
	pl.allocated++
	return new(inkpad.TimedPoint).Set(x, y, t)
}

// release returns a point to the pool. Callers must not use tp afterwards.
func (pl *pool) release(tp *inkpad.TimedPoint) {
	if tp != nil {
		pl.free.Push(tp)
	}
}

// size is the number of points ready for reuse.
func (pl *pool) size() int {
	return pl.free.Size()
}
