package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/birdayz/rainlight/pkg/config"
	"github.com/birdayz/rainlight/pkg/palette"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg     config.Config
	CfgFile string

	// Flags
	Verbose  bool
	ExitZero bool
	Output   OutputFormat
	Color    ColorMode
	Latin1   bool

	Logger *slog.Logger

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Output:       OutputFormatDefault,
		Color:        ColorModeAuto,
		Logger:       newLogger(false, os.Stderr),
	}
}

// InitConfig reads the config file and applies every setting whose flag
// was not given explicitly. Called by PersistentPreRunE on the root command.
func (a *App) InitConfig(flags *pflag.FlagSet) error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if a.Cfg.Color != "" && !flags.Changed("color") {
		if err := a.Color.Set(a.Cfg.Color); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if a.Cfg.Output != "" && !flags.Changed("output") {
		if err := a.Output.Set(a.Cfg.Output); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if a.Cfg.ExitZero && !flags.Changed("exit-zero") {
		a.ExitZero = true
	}
	if a.Cfg.Latin1 && flags.Lookup("latin1") != nil && !flags.Changed("latin1") {
		a.Latin1 = true
	}

	a.Logger = newLogger(a.Verbose, a.ErrWriter)
	a.Logger.Debug("loaded config", "path", a.Cfg.Path(), "color", a.Color, "output", a.Output)
	return nil
}

// AddLatin1Flag installs --latin1 on cmd.
func (a *App) AddLatin1Flag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.Latin1, "latin1", false, "Print decoded bytes as Latin-1 characters instead of raw bytes")
}

// Palette returns a palette for the colorable output writer.
func (a *App) Palette() *palette.Palette {
	return palette.New(a.ColorableOut, palette.Mode(a.Color))
}
