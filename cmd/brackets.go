// Package cmd provides the CLI commands for Gitfiti.
//
// Copyright (c) Manav Panchal
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"github.com/spf13/cobra"
)

// bracketsCmd lists the colour brackets of the active palette.
var bracketsCmd = &cobra.Command{
	Use:     "brackets",
	Aliases: []string{"palette"},
	Short:   "List the color brackets",
	Long: `List the color brackets of the active palette and the count each brush
paints. Set GITFITI_PALETTE to a YAML file to use a custom palette.

Examples:
  gitfiti brackets
  gitfiti brackets --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintBrackets(ctx.Palette.Brackets, ctx.Palette.Max)
		}
		ctx.CLIFormatter().PrintBrackets(ctx.Palette.Brackets, ctx.Palette.Max)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bracketsCmd)
}
