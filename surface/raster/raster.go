// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster draws tierbar scenes into an image with a gg.Context.
//
// Example:
//
//	fonts, _ := tierbar.DefaultFonts()
//	s, err := raster.New(400, 120, fonts)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	r.Render(s, 400, 120)
//	err = s.SavePNG("bar.png")
//
// A Surface is NOT safe for concurrent use.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/tierbar"
	"github.com/gogpu/tierbar/surface"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = surface.ErrInvalidDimensions

	// ErrNilFonts is returned when no Fonts are supplied.
	ErrNilFonts = errors.New("raster: nil fonts")
)

// Name is the registry name of this target.
const Name = "context"

func init() {
	surface.Register(Name, 10, func(opts surface.Options) (surface.Target, error) {
		s, err := New(opts.Width, opts.Height, opts.Fonts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}, nil)
}

// Surface implements tierbar.Surface on top of a gg.Context.
type Surface struct {
	dc    *gg.Context
	fonts *tierbar.Fonts
}

var _ surface.Target = (*Surface)(nil)

// New creates a transparent width x height surface. opts are passed to
// gg.NewContext, e.g. gg.WithRenderer for a custom renderer.
func New(width, height int, fonts *tierbar.Fonts, opts ...gg.ContextOption) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if fonts == nil {
		return nil, ErrNilFonts
	}
	return &Surface{
		dc:    gg.NewContext(width, height, opts...),
		fonts: fonts,
	}, nil
}

// Context returns the underlying drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Clear fills the whole surface with c.
func (s *Surface) Clear(c gg.RGBA) { s.dc.ClearWithColor(c) }

// StrokeLine implements tierbar.Surface.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, st tierbar.LineStyle) {
	s.dc.SetStrokeBrush(gg.Solid(st.Color))
	s.dc.SetLineWidth(st.Width)
	s.dc.SetLineCap(st.Cap)
	s.dc.DrawLine(x1, y1, x2, y2)
	if err := s.dc.Stroke(); err != nil {
		tierbar.Logger().Warn("raster: stroke failed", slog.Any("error", err))
	}
}

// FillCircle implements tierbar.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c gg.RGBA) {
	s.dc.SetFillBrush(gg.Solid(c))
	s.dc.DrawCircle(cx, cy, r)
	s.fill()
}

// FillPolygon implements tierbar.Surface.
func (s *Surface) FillPolygon(pts []gg.Point, c gg.RGBA) {
	if len(pts) < 3 {
		return
	}
	s.dc.SetFillBrush(gg.Solid(c))
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.fill()
}

func (s *Surface) fill() {
	if err := s.dc.Fill(); err != nil {
		tierbar.Logger().Warn("raster: fill failed", slog.Any("error", err))
	}
}

// DrawText implements tierbar.Surface.
func (s *Surface) DrawText(text string, x, y float64, st tierbar.TextStyle) {
	if text == "" || st.Size <= 0 {
		return
	}
	s.dc.SetFont(s.fonts.Face(st.Size))
	s.dc.SetColor(st.Color.Color())
	s.dc.DrawString(text, x, y)
}

// MeasureText implements tierbar.Surface.
func (s *Surface) MeasureText(text string, st tierbar.TextStyle) (w, h float64) {
	return s.fonts.MeasureText(text, st)
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// Snapshot implements surface.Target.
func (s *Surface) Snapshot() (image.Image, error) { return s.Image(), nil }

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// EncodeJPEG writes the image as JPEG with the given quality (1-100).
func (s *Surface) EncodeJPEG(w io.Writer, quality int) error {
	if err := s.dc.EncodeJPEG(w, quality); err != nil {
		return fmt.Errorf("raster: encode jpeg: %w", err)
	}
	return nil
}

// SavePNG writes the image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context. The fonts are not closed.
func (s *Surface) Close() error {
	return s.dc.Close()
}
