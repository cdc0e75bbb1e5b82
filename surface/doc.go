// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface selects the drawing target a tierbar is rendered into.
//
// A [Target] is a [tierbar.Surface] that can also clear itself and produce
// the finished image. Implementations register a [Factory] under a name:
//
//   - "context" (surface/raster): draws immediately with a gg.Context
//   - "recording" (surface/record): records with gg/recording and plays
//     the recording back through its raster backend
//
// Importing an implementation package registers it:
//
//	import (
//	    _ "github.com/gogpu/tierbar/surface/raster"
//	    _ "github.com/gogpu/tierbar/surface/record"
//	)
//
//	t, err := surface.NewTargetByName("context", surface.Options{
//	    Width: 400, Height: 120, Fonts: fonts,
//	})
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//
//	r.Render(t, 400, 120)
//	img, err := t.Snapshot()
package surface
