// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package record captures tierbar draw calls as a gg recording.
//
// The resulting recording.Recording is immutable and can be played back to
// any registered recording backend. The built-in "raster" backend is
// registered by this package; others (e.g. PDF, SVG) register themselves
// when imported:
//
//	s := record.New(400, 120, fonts)
//	r.Render(s, 400, 120)
//	rec := s.Finish()
//
//	b, err := record.Playback(rec, "raster")
//	if err != nil {
//	    return err
//	}
//	err = b.(recording.FileBackend).SaveToFile("bar.png")
//
// The raster playback backend does not rasterize text yet: labels are
// recorded but missing from Snapshot images.
package record

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"
	"github.com/gogpu/tierbar"
	"github.com/gogpu/tierbar/surface"
)

// Surface implements tierbar.Surface with a recording.Recorder.
// Text is measured with the given Fonts, or approximated by the recorder
// when fonts is nil.
//
// A Surface is NOT safe for concurrent use and must not be drawn on
// after Finish.
type Surface struct {
	rec   *recording.Recorder
	fonts *tierbar.Fonts
}

var _ surface.Target = (*Surface)(nil)

// Name is the registry name of this target.
const Name = "recording"

// PlaybackBackend is the recording backend Snapshot plays back into.
const PlaybackBackend = "raster"

func init() {
	surface.Register(Name, 5, func(opts surface.Options) (surface.Target, error) {
		if err := opts.Validate(); err != nil {
			return nil, fmt.Errorf("%w: width=%d, height=%d", err, opts.Width, opts.Height)
		}
		return New(opts.Width, opts.Height, opts.Fonts), nil
	}, nil)
}

// New creates a recording surface of the given size.
func New(width, height int, fonts *tierbar.Fonts) *Surface {
	return &Surface{
		rec:   recording.NewRecorder(width, height),
		fonts: fonts,
	}
}

// Recorder returns the underlying recorder.
func (s *Surface) Recorder() *recording.Recorder { return s.rec }

// StrokeLine implements tierbar.Surface.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, st tierbar.LineStyle) {
	s.rec.SetStrokeRGBA(st.Color.R, st.Color.G, st.Color.B, st.Color.A)
	s.rec.SetLineWidth(st.Width)
	s.rec.SetLineCapGG(st.Cap)
	s.rec.DrawLine(x1, y1, x2, y2)
	s.rec.Stroke()
}

// FillCircle implements tierbar.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c gg.RGBA) {
	s.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	s.rec.DrawCircle(cx, cy, r)
	s.rec.Fill()
}

// FillPolygon implements tierbar.Surface.
func (s *Surface) FillPolygon(pts []gg.Point, c gg.RGBA) {
	if len(pts) < 3 {
		return
	}
	s.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	s.rec.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.rec.LineTo(p.X, p.Y)
	}
	s.rec.ClosePath()
	s.rec.Fill()
}

// DrawText implements tierbar.Surface.
func (s *Surface) DrawText(text string, x, y float64, st tierbar.TextStyle) {
	if s.fonts != nil {
		s.rec.SetFont(s.fonts.Face(st.Size))
		s.rec.SetFontFamily(s.fonts.Name())
	}
	s.rec.SetFontSize(st.Size)
	s.rec.SetFillRGBA(st.Color.R, st.Color.G, st.Color.B, st.Color.A)
	s.rec.DrawString(text, x, y)
}

// MeasureText implements tierbar.Surface.
func (s *Surface) MeasureText(text string, st tierbar.TextStyle) (w, h float64) {
	if s.fonts != nil {
		return s.fonts.MeasureText(text, st)
	}
	s.rec.SetFontSize(st.Size)
	return s.rec.MeasureString(text)
}

// Finish ends recording and returns the immutable result.
func (s *Surface) Finish() *recording.Recording {
	return s.rec.FinishRecording()
}

// Playback creates the named backend and replays rec into it.
func Playback(rec *recording.Recording, backend string) (recording.Backend, error) {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return nil, err
	}
	if err := rec.Playback(b); err != nil {
		return nil, fmt.Errorf("record: playback to %s: %w", backend, err)
	}
	return b, nil
}

// Backends lists the registered playback backends.
func Backends() []string { return recording.Backends() }

// Clear fills the whole recording with c.
func (s *Surface) Clear(c gg.RGBA) { s.rec.ClearWithColor(c) }

// imageBackend is implemented by backends that expose their pixels.
type imageBackend interface {
	Image() image.Image
}

// Snapshot implements surface.Target. It finishes the recording and plays
// it back into the PlaybackBackend; the surface must not be drawn on
// afterwards.
func (s *Surface) Snapshot() (image.Image, error) {
	rec := s.Finish()
	tierbar.Logger().Debug("record: playback",
		slog.Int("commands", len(rec.Commands())),
		slog.String("backend", PlaybackBackend))
	b, err := Playback(rec, PlaybackBackend)
	if err != nil {
		return nil, err
	}
	ib, ok := b.(imageBackend)
	if !ok {
		return nil, errors.New("record: playback backend does not expose an image")
	}
	return ib.Image(), nil
}

// Close implements surface.Target. A recorder holds no resources.
func (s *Surface) Close() error { return nil }
