// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/tierbar"
	"github.com/gogpu/tierbar/internal/config"
	"github.com/gogpu/tierbar/surface"
	_ "github.com/gogpu/tierbar/surface/raster" // registers "context"
	"github.com/gogpu/tierbar/surface/record"
)

func newRenderCmd() *cobra.Command {
	var jf jobFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a tiered progress bar to an image",
		Long: `Render draws the bar described by a job file and writes it as PNG or JPEG.

Flags override the file. Width or height left at 0 are measured from the
labels and the style's padding.`,
		Example: `  tierbar render --config bar.yaml --out bar.png
  tierbar render -c bar.toml --width 600 --format jpeg --quality 80`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			job, err := jf.load(cmd, map[string]string{
				"width":             "width",
				"height":            "height",
				"output.path":       "out",
				"output.format":     "format",
				"output.quality":    "quality",
				"output.backend":    "backend",
				"output.background": "background",
				"output.font":       "font",
			})
			if err != nil {
				return err
			}
			return runRender(logger, job)
		},
	}

	jf.register(cmd.Flags())
	cmd.Flags().StringP("out", "o", "", "output file")
	cmd.Flags().String("format", "", "output format: "+strings.Join(config.ValidFormats(), ", "))
	cmd.Flags().Int("quality", 0, "JPEG quality (1-100)")
	cmd.Flags().String("backend", "", "drawing backend: "+strings.Join(config.ValidBackends(), ", "))
	cmd.Flags().String("background", "", "background color (hex), transparent when empty")
	cmd.Flags().String("font", "", "TTF/OTF font file (default: embedded Go Regular)")
	return cmd
}

func runRender(logger *log.Logger, job *config.File) error {
	prog := newProgress(logger)

	fonts, err := openFonts(job.Output.Font)
	if err != nil {
		return err
	}
	defer fonts.Close()

	r, err := job.Renderer()
	if err != nil {
		return err
	}
	size := jobSize(job, r, fonts)
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	logger.Debug("resolved size", "width", w, "height", h, "tiers", r.Tiers().Len(), "max", r.MaxValue())

	img, err := renderImage(logger, r, fonts, job, w, h)
	if err != nil {
		return err
	}

	if err := writeImage(job.Output, img); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s (%dx%d)", job.Output.Path, w, h))
	return nil
}

func openFonts(path string) (*tierbar.Fonts, error) {
	if path == "" {
		return tierbar.DefaultFonts()
	}
	return tierbar.LoadFonts(path)
}

// newTarget creates the target named by backend. "auto" leaves the
// choice to the surface registry.
func newTarget(backend string, opts surface.Options) (surface.Target, error) {
	if backend == "auto" {
		return surface.NewTarget(opts)
	}
	return surface.NewTargetByName(backend, opts)
}

// renderImage draws r into the target named by the job's backend.
func renderImage(logger *log.Logger, r *tierbar.Renderer, fonts *tierbar.Fonts, job *config.File, w, h int) (image.Image, error) {
	name := strings.ToLower(job.Output.Backend)
	t, err := newTarget(name, surface.Options{Width: w, Height: h, Fonts: fonts})
	if err != nil {
		return nil, err
	}
	defer t.Close()

	if job.Output.Background != "" {
		bg, err := tierbar.ParseColor(job.Output.Background)
		if err != nil {
			return nil, err
		}
		t.Clear(bg)
	}
	r.Render(t, float64(w), float64(h))
	if _, ok := t.(*record.Surface); ok && r.Config().LabelEnabled {
		logger.Warn("the recording raster backend does not rasterize text; labels are recorded but not drawn")
	}
	logger.Debug("drawn", "backend", name, "target", fmt.Sprintf("%T", t), "available", surface.List())
	return t.Snapshot()
}

func writeImage(out config.OutputConfig, img image.Image) (err error) {
	f, err := os.Create(out.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", out.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out.Path, cerr)
		}
	}()
	return encodeImage(f, out, img)
}

func encodeImage(w io.Writer, out config.OutputConfig, img image.Image) error {
	switch strings.ToLower(out.Format) {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: out.Quality})
	default:
		return png.Encode(w, img)
	}
}
