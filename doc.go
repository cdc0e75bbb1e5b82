// Package tierbar renders a horizontal tiered progress bar.
//
// # Overview
//
// A bar has a baseline track, a progress segment ending in a round
// indicator, diamond markers on intermediate tiers, and optional labels
// and sub-labels under each tier. Tier positions are proportional to each
// tier's value over the largest value in the set.
//
// The package draws onto a [Surface], a small set of primitives (line,
// circle, polygon, text). Implementations live in sub-packages:
//
//   - surface/raster: draws with a gg.Context into an image
//   - surface/record: records with gg/recording for later playback
//
// [Scene] is an in-memory Surface that records the draw sequence itself.
//
// # Quick Start
//
//	fonts, _ := tierbar.DefaultFonts()
//	defer fonts.Close()
//
//	cfg := tierbar.DefaultConfig()
//	cfg.LabelEnabled = true
//	cfg.SubLabelEnabled = true
//
//	r := tierbar.NewRenderer(
//	    tierbar.WithConfig(cfg),
//	    tierbar.WithTiers(
//	        tierbar.TierEntry{Label: "Bronze", SubLabel: "10 points", Value: 10},
//	        tierbar.TierEntry{Label: "Silver", SubLabel: "20 points", Value: 20},
//	        tierbar.TierEntry{Label: "Gold", SubLabel: "40 points", Value: 40},
//	    ),
//	    tierbar.WithProgress(25),
//	)
//
//	s, err := raster.New(400, 120, fonts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	r.Render(s, 400, 120)
//	_ = s.SavePNG("bar.png")
//
// # Repaint
//
// Every setter marks the renderer dirty and calls the functions registered
// with [Renderer.OnInvalidate]. Hosts schedule a repaint from there and
// call [Renderer.ClearDirty] after drawing.
//
// # Coordinate System
//
// Origin at top-left, x right, y down. The track sits at [TrackY]; text is
// positioned by its baseline.
package tierbar
