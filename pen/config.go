/*
Package pen implements the velocity driven width model for ink strokes.

A pen is configured with a width range and a filter weight. Each fitted curve
segment is fed to the model together with the timestamps of its end points;
the model smooths the pointer velocity with a single-pole exponential filter
and maps it to a stroke width. Fast motion yields thin strokes, slow motion
thick ones:

	width(v) = max(MaxWidth / (v + 1), MinWidth)

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pen

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"cogentcore.org/core/colors"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// tracer writes to trace with key 'inkpad.pen'
func tracer() tracing.Trace {
	return tracing.Select("inkpad.pen")
}

var (
	// ErrInvalidWidth indicates a non-positive width or MinWidth > MaxWidth.
	ErrInvalidWidth = errors.New("invalid pen width")
	// ErrInvalidFilterWeight indicates a velocity filter weight outside of [0,1].
	ErrInvalidFilterWeight = errors.New("velocity filter weight must be in [0,1]")
	// ErrInvalidColor indicates a color string which cannot be parsed.
	ErrInvalidColor = errors.New("invalid pen color")
)

// Default configuration values.
const (
	DefaultMinWidth             = 3.0
	DefaultMaxWidth             = 7.0
	DefaultVelocityFilterWeight = 0.9
)

// Config holds the pen parameters. Widths are stroke widths (diameters of the
// stamps) in pixels.
type Config struct {
	MinWidth             float64
	MaxWidth             float64
	VelocityFilterWeight float64
	Color                color.Color
}

// DefaultConfig returns a black pen with widths between 3 and 7 pixels and a
// filter weight of 0.9.
func DefaultConfig() Config {
	return Config{
		MinWidth:             DefaultMinWidth,
		MaxWidth:             DefaultMaxWidth,
		VelocityFilterWeight: DefaultVelocityFilterWeight,
		Color:                colornames.Black,
	}
}

// Validate checks a configuration. Invalid values are reported, never
// clamped.
func (c Config) Validate() error {
	if math.IsNaN(c.MinWidth) || math.IsNaN(c.MaxWidth) || c.MinWidth <= 0 || c.MaxWidth <= 0 ||
		math.IsInf(c.MaxWidth, 0) {
		return fmt.Errorf("%w: widths must be positive and finite, are %g and %g",
			ErrInvalidWidth, c.MinWidth, c.MaxWidth)
	}
	if c.MinWidth > c.MaxWidth {
		return fmt.Errorf("%w: min width %g exceeds max width %g", ErrInvalidWidth, c.MinWidth, c.MaxWidth)
	}
	w := c.VelocityFilterWeight
	if math.IsNaN(w) || w < 0 || w > 1 {
		return fmt.Errorf("%w: is %g", ErrInvalidFilterWeight, w)
	}
	if c.Color == nil {
		return fmt.Errorf("%w: color is nil", ErrInvalidColor)
	}
	return nil
}

// === Decoding ==============================================================

type tomlConfig struct {
	MinWidth             *float64 `toml:"min_width"`
	MaxWidth             *float64 `toml:"max_width"`
	VelocityFilterWeight *float64 `toml:"velocity_filter_weight"`
	Color                string   `toml:"color"`
}

// DecodeConfig reads a pen configuration from a TOML document. Keys not
// present in the document keep their default values:
//
//	min_width = 2.5
//	max_width = 6.0
//	velocity_filter_weight = 0.7
//	color = "#1a237e"
//
// The resulting configuration is validated.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return cfg, fmt.Errorf("decoding pen configuration: %w", err)
	}
	if tc.MinWidth != nil {
		cfg.MinWidth = *tc.MinWidth
	}
	if tc.MaxWidth != nil {
		cfg.MaxWidth = *tc.MaxWidth
	}
	if tc.VelocityFilterWeight != nil {
		cfg.VelocityFilterWeight = *tc.VelocityFilterWeight
	}
	if tc.Color != "" {
		c, err := ParseColor(tc.Color)
		if err != nil {
			return cfg, err
		}
		cfg.Color = c
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	tracer().Debugf("decoded pen configuration %+v", cfg)
	return cfg, nil
}

// ParseColor parses colors in hex notation, i.e. "#rgb", "#rrggbb" or
// "#rrggbbaa". The leading '#' is optional. Alpha is straight, not
// premultiplied.
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if h == "" || strings.Trim(h, hexDigits) != "" {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colors.FromHex(h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

const hexDigits = "0123456789abcdefABCDEF"
