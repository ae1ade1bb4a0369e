// Package runtime provides application runtime context for Gitfiti.
package runtime

import (
	"log/slog"

	"github.com/manav03panchal/gitfiti/internal/config"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/output"
	"github.com/manav03panchal/gitfiti/internal/push"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	Formatter *output.Formatter
	Palette   config.Palette
	Push      *push.Client

	// Debug mode
	Debug bool

	closeLog func() error
}

// Options configures the runtime context.
type Options struct {
	EnvFile   string // dotenv file; empty searches the XDG config dirs
	ServerURL string // overrides the configured server base URL
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context: configuration, palette, push client
// and output formatter.
func New(opts Options) (*Context, error) {
	global, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	// Flags apply to this context only.
	cfg := *global
	if opts.ServerURL != "" {
		cfg.Server.BaseURL = opts.ServerURL
	}
	if opts.Debug {
		cfg.Log.Debug = true
	}

	palette, err := cfg.LoadPalette()
	if err != nil {
		return nil, err
	}

	client, err := push.NewClient(cfg.Server.BaseURL, cfg.Server.PushPath,
		push.WithUserAgent(cfg.Server.UserAgent))
	if err != nil {
		return nil, err
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:    &cfg,
		Formatter: formatter,
		Palette:   palette,
		Push:      client,
		Debug:     cfg.Log.Debug,
	}, nil
}

// LogToFile redirects logging to the configured log file and returns its
// path. The painter owns the terminal while it runs, so nothing may log to
// stderr.
func (c *Context) LogToFile() (string, error) {
	path := c.Config.Log.File
	if path == "" {
		var err error
		if path, err = logging.DefaultLogFile(); err != nil {
			return "", WrapDiskFullError(err, "open log", path)
		}
	}

	w, closer, err := logging.OpenFile(path)
	if err != nil {
		return path, WrapDiskFullError(err, "open log", path)
	}

	cfg := logging.DefaultConfig()
	if c.Debug {
		cfg = logging.DebugConfig()
	}
	cfg.Output = w
	logging.Init(cfg)
	c.closeLog = closer

	logging.Info("logging started", slog.String("path", path))
	return path, nil
}

// Close releases the log file, if one was opened.
func (c *Context) Close() error {
	if c.closeLog == nil {
		return nil
	}
	err := c.closeLog()
	c.closeLog = nil
	return err
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
