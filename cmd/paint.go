// Package cmd provides the CLI commands for Gitfiti.
//
// Copyright (c) Manav Panchal
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/heatmap"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/output"
	"github.com/manav03panchal/gitfiti/internal/painter"
	"github.com/manav03panchal/gitfiti/internal/parser"
	"github.com/manav03panchal/gitfiti/internal/runtime"
	"github.com/manav03panchal/gitfiti/internal/tui"
	"github.com/manav03panchal/gitfiti/internal/validate"
)

// Paint flags.
var (
	flagEnd        string
	flagBrush      string
	flagSVG        string
	flagNoTooltips bool
)

// paintCmd opens the interactive painter.
var paintCmd = &cobra.Command{
	Use:   "paint",
	Short: "Open the heatmap painter",
	Long: `Open the interactive heatmap painter.

Click or drag over days to paint them, or move with the arrow keys and press
space. Press v to verify the pattern and p to push it. At least one day must
carry the darkest color; the first such day is sent as the scale maximum.

Examples:
  gitfiti paint
  gitfiti paint --brush '#4'
  gitfiti paint --end yesterday
  gitfiti paint --svg canvas.svg`,
	Args: cobra.NoArgs,
	RunE: runPaint,
}

func runPaint(cmd *cobra.Command, args []string) error {
	stdout := int(os.Stdout.Fd())
	if !term.IsTerminal(stdout) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.ErrNotATerminal
	}

	end := parser.ParseEndDate(flagEnd, time.Now())
	if end.Error != nil {
		return end.Error
	}

	brackets := ctx.Palette.Brackets
	brush, err := model.ParseBrush(flagBrush, brackets)
	if err != nil {
		return err
	}

	if flagSVG != "" {
		if err := validate.SVGPath(flagSVG); err != nil {
			return err
		}
	}

	logPath, err := ctx.LogToFile()
	if err != nil {
		return err
	}
	ctx.Debugf("logging to %s", logPath)

	// A failed size query leaves the first frame unsized until the
	// program reports the window size.
	width, height, _ := term.GetSize(stdout)

	p := painter.New(painter.Config{
		Data:     model.NewGrid(end.Time),
		Brackets: brackets,
		MaxCount: ctx.Palette.Max,
		Brush:    brush,
		Tooltips: ctx.Config.Canvas.Tooltips && !flagNoTooltips,
	})
	logging.Info("painter opened",
		logging.KeyURL, logging.RedactURL(ctx.Push.URL()),
		logging.KeyBrush, brush.String())

	p, err = tui.Run(cmd.Context(), tui.Config{
		Painter:   p,
		Submitter: ctx.Push,
		Width:     width,
		Height:    height,
	})
	if err != nil {
		return err
	}

	summary := buildSummary(p)
	if flagSVG != "" {
		if err := writeSVG(p.Chart(), flagSVG); err != nil {
			return err
		}
		summary.SVGPath = flagSVG
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSummary(summary)
	}
	ctx.CLIFormatter().PrintSummary(summary)
	return nil
}

// buildSummary describes the session p ended in.
func buildSummary(p *painter.Painter) output.Summary {
	data := p.Chart().Data()
	s := output.Summary{
		State:       p.State().String(),
		Brush:       p.Brush().String(),
		PaintedDays: model.PaintedDays(data),
		Verify:      p.VerifyMessage().Text,
		Push:        p.PushMessage().Text,
		Pending:     p.Pending(),
	}
	if len(data) > 0 {
		s.Start = data[0].Date
		s.End = data[len(data)-1].Date
	}
	return s
}

// writeSVG exports the canvas as it was left.
func writeSVG(chart *heatmap.Chart, path string) error {
	opts := heatmap.DefaultSVGOptions()
	opts.Title = "gitfiti"
	if err := os.WriteFile(path, []byte(chart.SVG(opts)), 0o644); err != nil {
		if runtime.IsDiskFullError(err) {
			return runtime.WrapDiskFullError(err, "write svg", path)
		}
		return errors.NewSystemErrorWithOp("write svg", "cannot write "+path, err)
	}
	return nil
}

func init() {
	paintCmd.Flags().StringVar(&flagEnd, "end", "today",
		"Last day on the canvas (e.g. today, yesterday, -2w, 2024-12-31)")
	paintCmd.Flags().StringVarP(&flagBrush, "brush", "b", "auto",
		"Initial brush: auto, a bracket like '#4', or a count")
	paintCmd.Flags().StringVar(&flagSVG, "svg", "",
		"Write the final canvas to an SVG file on exit")
	paintCmd.Flags().BoolVar(&flagNoTooltips, "no-tooltips", false,
		"Hide the day tooltip under the cursor")

	_ = paintCmd.RegisterFlagCompletionFunc("brush", completeBrush)
	_ = paintCmd.RegisterFlagCompletionFunc("end", completeEnd)
	_ = paintCmd.RegisterFlagCompletionFunc("svg", completeSVG)

	// gitfiti with no subcommand paints too
	rootCmd.Flags().AddFlagSet(paintCmd.Flags())

	rootCmd.AddCommand(paintCmd)
}
