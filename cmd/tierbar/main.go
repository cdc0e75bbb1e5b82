// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command tierbar renders tiered progress bars to images.
//
//	tierbar render --config bar.yaml --out bar.png
//	tierbar layout --config bar.yaml --width 400
package main

import (
	"context"
	"os"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
