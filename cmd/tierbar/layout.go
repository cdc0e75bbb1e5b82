// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/tierbar"
	"github.com/gogpu/tierbar/internal/config"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Padding(0, 1).Faint(true)
)

func newLayoutCmd() *cobra.Command {
	var jf jobFlags

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print tier positions and label visibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := jf.load(cmd, map[string]string{
				"width":  "width",
				"height": "height",
			})
			if err != nil {
				return err
			}
			fonts, err := openFonts(job.Output.Font)
			if err != nil {
				return err
			}
			defer fonts.Close()
			return printLayout(cmd.OutOrStdout(), job, fonts)
		},
	}
	jf.register(cmd.Flags())
	return cmd
}

func printLayout(w io.Writer, job *config.File, m tierbar.TextMeasurer) error {
	r, err := job.Renderer()
	if err != nil {
		return err
	}
	size := jobSize(job, r, m)
	ticks := r.Ticks(size.Width)

	rows := make([][]string, 0, len(ticks))
	for _, t := range ticks {
		e := r.Tiers().At(t.Index)
		rows = append(rows, []string{
			strconv.Itoa(t.Index),
			e.Label,
			strconv.Itoa(e.Value),
			t.Role.String(),
			strconv.FormatFloat(t.X, 'f', 1, 64),
			yesNo(t.Labeled),
			yesNo(t.Diamond),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Label", "Value", "Role", "X", "Labeled", "Diamond").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < len(ticks) && !ticks[row].Labeled {
				return dimStyle
			}
			return cellStyle
		})

	_, err = fmt.Fprintf(w, "%s\nsize %.0fx%.0f  max %s  progress %d  indicator x %.1f\n",
		tbl.Render(), size.Width, size.Height, maxString(r.MaxValue()), r.Progress(), r.IndicatorX(size.Width))
	return err
}

func maxString(v int) string {
	if v == tierbar.Unbounded {
		return "unbounded"
	}
	return strconv.Itoa(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
