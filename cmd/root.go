// Package cmd provides the CLI commands for Gitfiti.
//
// Copyright (c) Manav Panchal
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/output"
	"github.com/manav03panchal/gitfiti/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat  string
	flagColor   string
	flagDebug   bool
	flagServer  string
	flagEnvFile string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gitfiti",
	Short: "Paint your contribution heatmap from the terminal",
	Long: `Gitfiti shows a year of days as a contribution heatmap. Paint days with
the mouse or keyboard, verify the pattern, and push it to a gitfiti server
which turns it into commits.

Examples:
  gitfiti
  gitfiti paint --brush '#4'
  gitfiti paint --end yesterday --svg canvas.svg
  gitfiti brackets --format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion, help and version
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		initLogging(flagDebug)

		opts := runtime.DefaultOptions()
		opts.Format = output.ParseFormat(flagFormat)
		opts.ColorMode = parseColorMode(flagColor)
		opts.Debug = flagDebug
		opts.ServerURL = flagServer
		opts.EnvFile = flagEnvFile

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the painter
		return runPaint(cmd, args)
	},
}

func parseColorMode(s string) output.ColorMode {
	switch s {
	case "always":
		return output.ColorAlways
	case "never":
		return output.ColorNever
	default:
		return output.ColorAuto
	}
}

// initLogging sends warnings to stderr, or everything in debug mode. The
// painter later moves logging to a file.
func initLogging(debug bool) {
	if debug {
		logging.InitDebug()
		return
	}
	cfg := logging.DefaultConfig()
	cfg.Level = slog.LevelWarn
	logging.Init(cfg)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "",
		"Gitfiti server base URL (default from GITFITI_SERVER_URL or http://localhost:5000)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "",
		"Dotenv file to load (default $XDG_CONFIG_HOME/gitfiti/gitfiti.env)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", completeFixed("cli", "json", "plain"))
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeFixed("auto", "always", "never"))

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("gitfiti %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.JSONFormatter().PrintError(err.Error(), errors.GetSuggestion(err))
	} else if flagDebug {
		os.Stderr.WriteString(errors.FormatDebugError(err) + "\n")
	} else if errors.Classify(err) == errors.CategoryUser {
		os.Stderr.WriteString("Error: " + errors.FormatUserError(err) + "\n")
	} else {
		os.Stderr.WriteString("Error: " + errors.FormatByCategory(err) + "\n")
	}
	os.Exit(1)
}
