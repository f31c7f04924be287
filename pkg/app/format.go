package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OutputFormat controls how results are printed.
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = "default"
	OutputFormatJSON    OutputFormat = "json"
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "json":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, json")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "json"}, cobra.ShellCompDirectiveNoFileComp
}

// ColorMode controls when output is colorized.
type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

func (e *ColorMode) String() string {
	return string(*e)
}

func (e *ColorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*e = ColorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of: auto, always, never")
	}
}

func (e *ColorMode) Type() string {
	return "ColorMode"
}

// CompleteColorMode provides shell completion for --color.
func CompleteColorMode(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
}
