package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/birdayz/rainlight/pkg/app"
	"github.com/birdayz/rainlight/pkg/config"
)

// NewCommand returns the "rainlight config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle rainlight configuration",
	}

	cmd.AddCommand(
		newViewCommand(a),
		newSetCommand(a),
		newImportCommand(a),
		newSelectColorCommand(a),
	)

	return cmd
}

func newViewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Display the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(&a.Cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "# %s\n%s", a.Cfg.Path(), out)
			return nil
		},
	}
}

func newSetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(config.Keys(), ", ") + ".",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return config.Keys(), cobra.ShellCompDirectiveNoFileComp
			case 1:
				return config.ValidValues(args[0]), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := a.Cfg.Set(key, value); err != nil {
				return err
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Set %s to %q.\n", key, value)
			return nil
		},
	}
}

func newImportCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import rainlight.* keys from a .properties file",
		Example: `  # rainlight.properties:
  #   rainlight.color=never
  #   rainlight.latin1=true
  rainlight config import rainlight.properties`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			keys, err := a.Cfg.ImportProperties(path)
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", path, err)
			}
			if len(keys) == 0 {
				fmt.Fprintf(a.OutWriter, "No %s* keys found in %s.\n", config.PropertiesPrefix, path)
				return nil
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Imported %s from %s.\n", strings.Join(keys, ", "), path)
			return nil
		},
	}
}

func newSelectColorCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-color",
		Short: "Interactively select when output is colorized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := config.ValidValues("color")
			pos := 0
			for i, m := range modes {
				if m == a.Cfg.Color {
					pos = i
				}
			}

			p := promptui.Select{
				Label:     "Select color mode",
				Items:     modes,
				CursorPos: pos,
				Stdin:     readCloser{a.InReader},
				Stdout:    writeCloser{a.OutWriter},
			}

			_, selected, err := p.Run()
			if err != nil {
				// Ctrl-C or closed stdin cancels the selection. Not an error.
				return nil
			}

			if err := a.Cfg.Set("color", selected); err != nil {
				return err
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Switched color mode to %q.\n", selected)
			return nil
		},
	}
}
