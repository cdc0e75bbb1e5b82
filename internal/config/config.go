// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads tierbar render jobs from YAML, TOML or JSON files.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/tierbar"
)

// EnvPrefix prefixes environment overrides, e.g. TIERBAR_OUTPUT_FORMAT.
const EnvPrefix = "TIERBAR"

// File is a complete render job.
type File struct {
	// Width and Height of the output in pixels. Zero means "measure".
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// Style is the flat style map decoded by tierbar.DecodeStyle.
	Style map[string]any `mapstructure:"style"`

	// Tiers in bar order.
	Tiers []Tier `mapstructure:"tiers"`

	Output OutputConfig `mapstructure:"output"`
}

// Tier is one tier entry in a file.
type Tier struct {
	Label string `mapstructure:"label"`
	// SubLabel defaults to "<value> points" when empty.
	SubLabel string `mapstructure:"sub_label"`
	Value    int    `mapstructure:"value"`
}

// OutputConfig controls where and how the image is written.
type OutputConfig struct {
	// Path of the output file.
	Path string `mapstructure:"path"`
	// Format is "png" or "jpeg".
	Format string `mapstructure:"format"`
	// Quality is the JPEG quality (1-100).
	Quality int `mapstructure:"quality"`
	// Backend is "context" (draw directly), "recording" (record, then
	// play back through the recording raster backend) or "auto".
	Backend string `mapstructure:"backend"`
	// Background color, empty for transparent.
	Background string `mapstructure:"background"`
	// Font is an optional TTF/OTF path; the embedded Go font is used when empty.
	Font string `mapstructure:"font"`
}

// Default returns a File with default output settings and no tiers.
func Default() *File {
	return &File{
		Style: map[string]any{},
		Output: OutputConfig{
			Path:    "tierbar.png",
			Format:  "png",
			Quality: 90,
			Backend: "context",
		},
	}
}

// SetDefaults registers the Default values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.quality", d.Output.Quality)
	v.SetDefault("output.backend", d.Output.Backend)
	v.SetDefault("output.background", d.Output.Background)
	v.SetDefault("output.font", d.Output.Font)
}

// New returns a viper instance with defaults and environment overrides
// configured.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (format chosen by extension) and validates it.
func Load(path string) (*File, error) {
	v := New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (*File, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if f.Style == nil {
		f.Style = map[string]any{}
	}
	if errs := f.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &f, nil
}

// TierEntries converts the file's tiers, filling empty sub-labels.
func (f *File) TierEntries() []tierbar.TierEntry {
	out := make([]tierbar.TierEntry, len(f.Tiers))
	for i, t := range f.Tiers {
		sub := t.SubLabel
		if sub == "" {
			sub = strconv.Itoa(t.Value) + " points"
		}
		out[i] = tierbar.TierEntry{Label: t.Label, SubLabel: sub, Value: t.Value}
	}
	return out
}

// Renderer builds a renderer from the file's style and tiers.
func (f *File) Renderer(opts ...tierbar.Option) (*tierbar.Renderer, error) {
	st, err := tierbar.DecodeStyle(f.Style)
	if err != nil {
		return nil, fmt.Errorf("config: style: %w", err)
	}
	base := []tierbar.Option{
		tierbar.WithConfig(st.Config),
		tierbar.WithTiers(f.TierEntries()...),
		tierbar.WithProgress(st.Progress),
	}
	return tierbar.NewRenderer(append(base, opts...)...), nil
}
