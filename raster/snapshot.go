package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	// additional snapshot formats accepted by Decode
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Export encodes the surface as a PNG image.
func Export(s *Surface) ([]byte, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, fmt.Errorf("encoding raster snapshot: %w", err)
	}
	tracer().Infof("exported raster snapshot of %d bytes", buf.Len())
	return buf.Bytes(), nil
}

// Decode decodes snapshot data. Accepted formats are PNG, BMP, TIFF and WebP.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		tracer().Errorf("decoding raster snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptySnapshot
	}
	tracer().Debugf("decoded %s snapshot of size %v", format, img.Bounds().Size())
	return img, nil
}

// Import decodes snapshot data and installs it onto s. If decoding fails,
// s is left unchanged.
func Import(s *Surface, data []byte) error {
	if s == nil {
		return ErrNoSurface
	}
	img, err := Decode(data)
	if err != nil {
		return err
	}
	s.Install(img)
	return nil
}

// Install replaces the content of s with img. Images of the same size as s are
// copied verbatim. Other images are scaled to fit s, preserving their aspect
// ratio, and centered.
func (s *Surface) Install(img image.Image) {
	s.Clear()
	ib := img.Bounds()
	if ib.Size() == s.img.Rect.Size() {
		if src, ok := img.(*image.NRGBA); ok {
			copyPixels(s.img, src)
		} else {
			draw.Draw(s.img, s.img.Rect, img, ib.Min, draw.Src)
		}
		return
	}
	dr := fitCentered(ib.Size(), s.img.Rect)
	tracer().Debugf("scaling snapshot %v into %v", ib, dr)
	draw.CatmullRom.Scale(s.img, dr, img, ib, draw.Src, nil)
}

// fitCentered returns the largest rectangle with the aspect ratio of size
// which fits into r, centered in r.
func fitCentered(size image.Point, r image.Rectangle) image.Rectangle {
	sx := float64(r.Dx()) / float64(size.X)
	sy := float64(r.Dy()) / float64(size.Y)
	scale := min(sx, sy)
	w := max(1, int(float64(size.X)*scale+0.5))
	h := max(1, int(float64(size.Y)*scale+0.5))
	x0 := r.Min.X + (r.Dx()-w)/2
	y0 := r.Min.Y + (r.Dy()-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}
