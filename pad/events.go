package pad

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inkpad/raster"
)

// Event flags report state transitions of a pad. Each event fires once per
// transition and never repeatedly while the pad stays in the new state.
type Event uint8

const (
	// EventStrokeStart fires for the first accepted sample of a stroke.
	EventStrokeStart Event = 1 << iota
	// EventSigned fires when the first sample is accepted after the pad was empty.
	EventSigned
	// EventCleared fires when a non-empty pad is cleared.
	EventCleared
)

// Has is a predicate: is x set in e?
func (e Event) Has(x Event) bool {
	return e&x != 0
}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	for _, ev := range []struct {
		flag Event
		name string
	}{
		{EventStrokeStart, "stroke-start"},
		{EventSigned, "signed"},
		{EventCleared, "cleared"},
	} {
		if e.Has(ev.flag) {
			names = append(names, ev.name)
		}
	}
	return strings.Join(names, "|")
}

// Update is the outcome of processing a sample or a lifecycle operation.
type Update struct {
	Accepted bool             // false if the sample was rejected
	Dirty    raster.DirtyRect // region changed since the last reset, without stamp radius
	Events   Event            // transitions caused by the operation
	Segments int              // number of curve segments emitted
}

func (u Update) String() string {
	return fmt.Sprintf("update{accepted=%v, dirty=%s, events=%s, segments=%d}",
		u.Accepted, u.Dirty, u.Events, u.Segments)
}
