package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/rainlight/pkg/app"
	"github.com/birdayz/rainlight/pkg/cmd/completion"
	rlconfig "github.com/birdayz/rainlight/pkg/cmd/config"
	"github.com/birdayz/rainlight/pkg/cmd/decode"
	"github.com/birdayz/rainlight/pkg/cmd/encode"
	"github.com/birdayz/rainlight/pkg/codec"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New()
	root := NewRootCommand(a, version, commit)
	root.SetOut(os.Stdout)
	return run(ctx, root, a)
}

// NewRootCommand builds the command tree around a.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:   "rainlight",
		Short: "Rain Light encoder/decoder",
		Long: fmt.Sprintf(`Rain Light encoder/decoder
Mapping: %s = 1, %s = 0

Every byte of text becomes eight color words, most significant bit first.`, codec.OneColor, codec.ZeroColor),
		Example: `  rainlight encode Hello
  rainlight decode-bits 0100100001101001
  rainlight decode-colors "Forest Green Olive Green ..."`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return unknownCommand(cmd, args[0])
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.rainlight/config)")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().BoolVar(&a.ExitZero, "exit-zero", false, "Report errors but always exit with status 0")
	root.PersistentFlags().VarP(&a.Output, "output", "o", "Set output format (default, json)")
	root.PersistentFlags().Var(&a.Color, "color", "Colorize output (auto, always, never)")
	_ = root.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat)
	_ = root.RegisterFlagCompletionFunc("color", app.CompleteColorMode)

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewBitsCommand(a),
		decode.NewColorsCommand(a),
		rlconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}

func unknownCommand(cmd *cobra.Command, name string) error {
	if suggestions := cmd.SuggestionsFor(name); len(suggestions) > 0 {
		return app.NewUsageError("unknown command %q (did you mean %q?)", name, suggestions[0])
	}
	return app.NewUsageError("unknown command %q", name)
}

// run executes root and reports any error on its error writer. Usage errors
// are followed by the usage of the command that failed.
func run(ctx context.Context, root *cobra.Command, a *app.App) error {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	var uerr *app.UsageError
	if errors.As(err, &uerr) {
		_ = cmd.Usage()
	}

	if a.ExitZero {
		a.Logger.Debug("suppressing exit status", "error", err)
		return nil
	}
	return err
}
