// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/tierbar"
)

// ErrInvalidDimensions is returned by factories when width or height is
// not positive.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// Target is a drawing target that yields an image.
type Target interface {
	tierbar.Surface

	// Clear fills the whole target with c.
	Clear(c gg.RGBA)

	// Snapshot returns the image drawn so far. Some targets can only be
	// snapshotted once.
	Snapshot() (image.Image, error)

	// Close releases the target's resources.
	Close() error
}

// Options configure a new Target.
type Options struct {
	Width, Height int

	// Fonts used to draw and measure text. Targets that cannot draw
	// without fonts reject nil.
	Fonts *tierbar.Fonts
}

// Validate checks the dimensions.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}
