// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/tierbar"
	"github.com/gogpu/tierbar/internal/config"
)

// jobFlags are the flags shared by every command that loads a job.
type jobFlags struct {
	configFile string
}

func (f *jobFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configFile, "config", "c", "", "job file (YAML, TOML or JSON)")
	fs.Float64("width", 0, "output width in pixels (0 = measure)")
	fs.Float64("height", 0, "output height in pixels (0 = measure)")
}

// load reads the job file, if any, with flags taking precedence over it.
func (f *jobFlags) load(cmd *cobra.Command, bind map[string]string) (*config.File, error) {
	v := config.New()
	for key, flag := range bind {
		if fl := cmd.Flags().Lookup(flag); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}
	if f.configFile != "" {
		v.SetConfigFile(f.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %w", f.configFile, err)
		}
	}
	return config.FromViper(v)
}

// jobSize resolves zero dimensions by measuring the renderer.
func jobSize(job *config.File, r *tierbar.Renderer, m tierbar.TextMeasurer) tierbar.Size {
	spec := func(v float64) tierbar.MeasureSpec {
		if v > 0 {
			return tierbar.ExactSpec(v)
		}
		return tierbar.UnspecifiedSpec()
	}
	return r.Measure(m, spec(job.Width), spec(job.Height))
}
