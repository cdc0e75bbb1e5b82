// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/gg"
	"github.com/gogpu/tierbar"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "tierbar",
		Short:        "Render tiered progress bars",
		Long:         `tierbar lays out and draws a horizontal progress bar with tier markers, labels and sub-labels, and writes it to an image.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			l := newLogger(os.Stderr, level)
			tierbar.SetLogger(slogFor(l))
			gg.SetLogger(slogFor(l.WithPrefix("gg")))
			cmd.SetContext(withLogger(cmd.Context(), l))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tierbar %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newLayoutCmd())
	return root
}
