// Package cli implements the formbuilder command-line interface.
//
// Commands load a form definition (a file, the configured form or the
// embedded sample), drive the layout engine and print the result. Nothing
// is written back to the definition file.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
)

const appName = "formbuilder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version; main may override it at build time.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
	palette    *palette.Registry
	driver     prompt.PromptDriver
}

// Option configures a CLI.
type Option func(*CLI)

// WithPromptDriver replaces the survey driver used by the edit command.
func WithPromptDriver(driver prompt.PromptDriver) Option {
	return func(c *CLI) {
		c.driver = driver
	}
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level, opts ...Option) *CLI {
	c := &CLI{
		Logger:  newLogger(w, level),
		cfg:     config.Default(),
		palette: palette.NewRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Lay out form fields on a drag and drop grid",
		Long:         `formbuilder edits form layouts: rows of up to three fields, headers on their own row, and drop targets computed by the same policy the editor UI uses.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultConfigPath(), "config file (TOML)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.targetsCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.editCommand())
	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.LoadFrom(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Logger.Debug("config loaded", "path", c.configPath, "addr", cfg.Server.Addr)
	return nil
}

// loadDefinition reads path, falling back to the configured form and then
// to the embedded sample.
func (c *CLI) loadDefinition(path string) (formdef.Definition, error) {
	if strings.TrimSpace(path) == "" {
		path = c.cfg.Editor.Form
	}
	if strings.TrimSpace(path) == "" {
		c.Logger.Debug("using embedded sample form")
		return formdef.Sample(), nil
	}
	def, err := formdef.LoadFile(path)
	if err != nil {
		return formdef.Definition{}, err
	}
	c.Logger.Debug("form loaded", "path", path, "rows", def.Grid().RowCount())
	return def, nil
}

// dragFlags select what is being dragged: a placed field or a palette entry.
type dragFlags struct {
	field   string
	palette string
}

func (f *dragFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.field, "field", "", "internal name of the placed field being dragged")
	cmd.Flags().StringVar(&f.palette, "palette", "", "palette entry id of a new field being dragged")
	cmd.MarkFlagsMutuallyExclusive("field", "palette")
}

func (f dragFlags) set() bool {
	return f.field != "" || f.palette != ""
}

func (c *CLI) dragged(g layout.Grid, f dragFlags) (layout.DraggedItem, error) {
	switch {
	case f.field != "":
		field, ok := layout.Lookup(g, f.field)
		if !ok {
			return layout.DraggedItem{}, fmt.Errorf("field %q is not on the form", f.field)
		}
		return layout.DragField(field), nil
	case f.palette != "":
		return c.palette.Descriptor(f.palette)
	}
	return layout.DraggedItem{}, nil
}

func writeString(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
