/*
Package raster stamps fitted stroke segments onto a pixel surface.

A segment is not stroked as a connected outline. Instead it is covered by
round stamps, at least one per unit of arc length, each with its own width.
This makes variable-width strokes cheap: there is no outline offsetting and
no join or cap handling. Every stamp position is recorded in a dirty
rectangle, which callers use to redraw only the changed part of a display.

Surfaces keep straight (non-premultiplied) alpha, so snapshots exported as
PNG and imported again are pixel identical.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkpad.raster'
func tracer() tracing.Trace {
	return tracing.Select("inkpad.raster")
}

var (
	// ErrNoSurface indicates an operation which needs an allocated surface.
	ErrNoSurface = errors.New("raster surface not allocated")
	// ErrInvalidSize indicates surface dimensions which are not positive.
	ErrInvalidSize = errors.New("invalid surface size")
	// ErrDecodeSnapshot indicates snapshot data which cannot be decoded.
	ErrDecodeSnapshot = errors.New("cannot decode raster snapshot")
	// ErrEmptySnapshot indicates a snapshot image without pixels.
	ErrEmptySnapshot = errors.New("raster snapshot is empty")
)

// Surface is the pixel buffer strokes are stamped onto. It starts out fully
// transparent.
type Surface struct {
	img *image.NRGBA
}

// NewSurface allocates a transparent surface of w × h pixels.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %d × %d", ErrInvalidSize, w, h)
	}
	tracer().Infof("allocating raster surface of %d × %d", w, h)
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, w, h))}, nil
}

// Image returns a view of the surface's pixels. Clients must not modify it and
// must not read it while a sample is being processed.
func (s *Surface) Image() *image.NRGBA {
	return s.img
}

// Bounds returns the pixel bounds of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Size returns the width and height of the surface.
func (s *Surface) Size() (int, int) {
	return s.img.Rect.Dx(), s.img.Rect.Dy()
}

// Clear makes every pixel fully transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// IsBlank is a predicate: is every pixel fully transparent?
func (s *Surface) IsBlank() bool {
	for i := 3; i < len(s.img.Pix); i += 4 {
		if s.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// Resized returns a surface of w × h pixels, carrying over the overlapping part
// of s, anchored at the top left corner. If s already has the requested size,
// s itself is returned.
func (s *Surface) Resized(w, h int) (*Surface, error) {
	if sw, sh := s.Size(); sw == w && sh == h {
		return s, nil
	}
	r, err := NewSurface(w, h)
	if err != nil {
		return nil, err
	}
	copyPixels(r.img, s.img)
	return r, nil
}

// copyPixels copies src onto dst, top left corners aligned, clipped to the
// smaller of both. Pixel values are copied verbatim.
func copyPixels(dst, src *image.NRGBA) {
	w := min(dst.Rect.Dx(), src.Rect.Dx())
	h := min(dst.Rect.Dy(), src.Rect.Dy())
	for y := 0; y < h; y++ {
		so := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		do := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		copy(dst.Pix[do:do+4*w], src.Pix[so:so+4*w])
	}
}
