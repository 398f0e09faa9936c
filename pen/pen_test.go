package pen

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/npillmayer/inkpad"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustModel(t *testing.T, min, max, weight float64) Model {
	t.Helper()
	cfg := DefaultConfig()
	cfg.MinWidth, cfg.MaxWidth, cfg.VelocityFilterWeight = min, max, weight
	m, err := NewModel(cfg)
	require.NoError(t, err)
	return m
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tests := []struct {
		name   string
		min    float64
		max    float64
		weight float64
		err    error
	}{
		{"defaults", 3, 7, 0.9, nil},
		{"equal widths", 4, 4, 0, nil},
		{"weight one", 1, 2, 1, nil},
		{"min exceeds max", 8, 7, 0.9, ErrInvalidWidth},
		{"zero min", 0, 7, 0.9, ErrInvalidWidth},
		{"negative max", 3, -7, 0.9, ErrInvalidWidth},
		{"NaN width", math.NaN(), 7, 0.9, ErrInvalidWidth},
		{"infinite max", 3, math.Inf(1), 0.9, ErrInvalidWidth},
		{"weight too large", 3, 7, 1.1, ErrInvalidFilterWeight},
		{"negative weight", 3, 7, -0.1, ErrInvalidFilterWeight},
		{"NaN weight", 3, 7, math.NaN(), ErrInvalidFilterWeight},
	}
	for _, tt := range tests {
		cfg := Config{MinWidth: tt.min, MaxWidth: tt.max, VelocityFilterWeight: tt.weight, Color: color.Black}
		err := cfg.Validate()
		if tt.err == nil {
			assert.NoError(t, err, tt.name)
		} else {
			assert.True(t, errors.Is(err, tt.err), "%s: expected %v, got %v", tt.name, tt.err, err)
		}
	}
	cfg := DefaultConfig()
	cfg.Color = nil
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidColor)
}

func TestWidthBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := mustModel(t, 3, 7, 0.9)
	assert.Equal(t, 7.0, m.Width(0))
	prev := m.Width(0)
	for _, v := range []float64{0.01, 0.1, 0.5, 1, 2, 10, 100, 1e6} {
		w := m.Width(v)
		assert.GreaterOrEqual(t, w, 3.0)
		assert.LessOrEqual(t, w, 7.0)
		assert.LessOrEqual(t, w, prev, "width must not grow with velocity")
		prev = w
	}
	assert.Equal(t, 3.0, m.Width(1e9))
}

func TestSmooth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := mustModel(t, 3, 7, 0.9)
	assert.InDelta(t, 0.9, m.Smooth(1, 0), 1e-12)
	assert.InDelta(t, 0.99, m.Smooth(1, 0.9), 1e-12)
	m = mustModel(t, 3, 7, 0)
	assert.Equal(t, 0.5, m.Smooth(100, 0.5), "weight 0 ignores the raw sample")
}

func TestAdvance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := mustModel(t, 3, 7, 0.9)
	var st State
	m.Reset(&st)
	assert.Equal(t, 5.0, st.LastWidth)
	assert.Equal(t, 0.0, st.LastVelocity)
	// constant velocity of 1px/ms
	w0, w1 := m.Advance(&st, inkpad.TP(10, 0, 10), inkpad.TP(20, 0, 20))
	assert.Equal(t, 5.0, w0)
	assert.InDelta(t, 7/1.9, w1, 1e-9)
	assert.InDelta(t, 0.9, st.LastVelocity, 1e-12)
	prev := w1
	for i := 2; i < 10; i++ {
		x, tm := float64(10*i), float64(10*i)
		a, b := m.Advance(&st, inkpad.TP(x, 0, tm), inkpad.TP(x+10, 0, tm+10))
		assert.Equal(t, prev, a, "start width continues last end width")
		assert.Less(t, b, prev)
		assert.Greater(t, b, 3.0)
		prev = b
	}
}

func TestAdvanceZeroTimeDelta(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := mustModel(t, 3, 7, 0.5)
	st := State{LastVelocity: 2, LastWidth: 4}
	_, w1 := m.Advance(&st, inkpad.TP(0, 0, 5), inkpad.TP(50, 0, 5))
	assert.Equal(t, 1.0, st.LastVelocity)
	assert.Equal(t, 3.5, w1)
}

func TestDecodeConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := DecodeConfig([]byte(`
min_width = 2.5
max_width = 6.0
color = "#1a237e"
`))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.MinWidth)
	assert.Equal(t, 6.0, cfg.MaxWidth)
	assert.Equal(t, DefaultVelocityFilterWeight, cfg.VelocityFilterWeight)
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 0xff}, cfg.Color)

	_, err = DecodeConfig([]byte("min_width = 9.0\n"))
	assert.ErrorIs(t, err, ErrInvalidWidth)
	_, err = DecodeConfig([]byte("velocity_filter_weight = 2.0\n"))
	assert.ErrorIs(t, err, ErrInvalidFilterWeight)
	_, err = DecodeConfig([]byte(`color = "blue"`))
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = DecodeConfig([]byte("min_width = "))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := ParseColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0x80}, c)
	c, err = ParseColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, c)
	c, err = ParseColor("#abc")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, c)
	_, err = ParseColor("#12345")
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = ParseColor("#gg0000")
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = ParseColor("#")
	assert.ErrorIs(t, err, ErrInvalidColor)
}
