// Package cmd provides the CLI commands for Gitfiti.
//
// Copyright (c) Manav Panchal
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/parser"
)

// completionBrackets returns the loaded palette, or the built-in one when
// completion runs without a runtime context.
func completionBrackets() model.Brackets {
	if ctx == nil || len(ctx.Palette.Brackets) == 0 {
		return model.DefaultBrackets()
	}
	return ctx.Palette.Brackets
}

// completeBrush suggests auto and one entry per bracket.
func completeBrush(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	candidates := []string{"auto\tcycle through the brackets"}
	for i, b := range completionBrackets() {
		candidates = append(candidates, fmt.Sprintf("#%d\tpaint %d (%s)", i, b.Min, b.Color))
	}
	return filterCompletions(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeEnd suggests end dates for the canvas.
func completeEnd(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterCompletions(parser.EndDateExamples, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeSVG restricts file completion to .svg files.
func completeSVG(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"svg"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeFixed returns a completion function over a fixed set of values.
func completeFixed(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return filterCompletions(values, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func filterCompletions(candidates []string, toComplete string) []string {
	var filtered []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.Split(c, "\t")[0], toComplete) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
