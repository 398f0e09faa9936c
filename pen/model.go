package pen

import (
	"math"

	"github.com/npillmayer/inkpad"
)

// State is the memory of a stroke across segments. It persists across
// pointer-down/up cycles and is reset only when a drawing is cleared.
type State struct {
	LastVelocity float64
	LastWidth    float64
}

// Model maps pointer velocity to stroke width. Create it with NewModel.
type Model struct {
	cfg Config
}

// NewModel creates a width model for a validated configuration.
func NewModel(cfg Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	return Model{cfg: cfg}, nil
}

// Config returns the configuration of the model.
func (m Model) Config() Config {
	return m.cfg
}

// MidWidth is the width a fresh stroke starts with.
func (m Model) MidWidth() float64 {
	return (m.cfg.MinWidth + m.cfg.MaxWidth) / 2
}

// Width maps a (smoothed) velocity v ≥ 0 to a stroke width. Width(0) is
// MaxWidth; for growing v the width approaches MinWidth.
func (m Model) Width(v float64) float64 {
	return math.Max(m.cfg.MaxWidth/(v+1), m.cfg.MinWidth)
}

// Smooth applies the exponential velocity filter. Higher filter weights favour
// the raw sample, lower weights favour the previous velocity.
func (m Model) Smooth(raw, last float64) float64 {
	w := m.cfg.VelocityFilterWeight
	return w*raw + (1-w)*last
}

// Reset puts a stroke state back to its initial values.
func (m Model) Reset(st *State) {
	st.LastVelocity = 0
	st.LastWidth = m.MidWidth()
}

// Advance feeds the end points of a freshly fitted segment to the model.
// It returns the widths at the start and at the end of the segment. The start
// width is the end width of the previous segment, which keeps widths
// continuous from segment to segment. st is updated.
func (m Model) Advance(st *State, start, end inkpad.TimedPoint) (w0, w1 float64) {
	v := m.Smooth(end.VelocityFrom(start), st.LastVelocity)
	w0, w1 = st.LastWidth, m.Width(v)
	tracer().Debugf("velocity %.4f -> width %.4f", v, w1)
	st.LastVelocity, st.LastWidth = v, w1
	return w0, w1
}
