// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/tierbar"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string // setting path, e.g. "tiers[2].value"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting of a File.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidFormats returns the supported output formats.
func ValidFormats() []string { return []string{"png", "jpeg"} }

// ValidBackends returns the supported drawing backends.
// "auto" picks the highest priority target that is available.
func ValidBackends() []string { return []string{"auto", "context", "recording"} }

// Validate reports every invalid setting.
func (f *File) Validate() []ValidationError {
	var errs []ValidationError

	if f.Width < 0 {
		errs = append(errs, ValidationError{"width", f.Width, "must not be negative"})
	}
	if f.Height < 0 {
		errs = append(errs, ValidationError{"height", f.Height, "must not be negative"})
	}
	for i, t := range f.Tiers {
		if t.Value < 0 {
			errs = append(errs, ValidationError{fmt.Sprintf("tiers[%d].value", i), t.Value, "must not be negative"})
		}
	}
	if _, err := tierbar.DecodeStyle(f.Style); err != nil {
		errs = append(errs, ValidationError{"style", f.Style, err.Error()})
	}

	o := f.Output
	if !slices.Contains(ValidFormats(), strings.ToLower(o.Format)) {
		errs = append(errs, ValidationError{"output.format", o.Format, "must be one of " + strings.Join(ValidFormats(), ", ")})
	}
	if !slices.Contains(ValidBackends(), strings.ToLower(o.Backend)) {
		errs = append(errs, ValidationError{"output.backend", o.Backend, "must be one of " + strings.Join(ValidBackends(), ", ")})
	}
	if o.Quality < 1 || o.Quality > 100 {
		errs = append(errs, ValidationError{"output.quality", o.Quality, "must be between 1 and 100"})
	}
	if o.Background != "" {
		if _, err := tierbar.ParseColor(o.Background); err != nil {
			errs = append(errs, ValidationError{"output.background", o.Background, err.Error()})
		}
	}
	return errs
}
