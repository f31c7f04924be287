package encode

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"

	"github.com/birdayz/rainlight/pkg/app"
	"github.com/birdayz/rainlight/pkg/codec"
)

// templateLine is the data passed to --template for every byte.
type templateLine struct {
	Index  int
	Byte   byte
	Bits   string
	Colors []string
	Line   string
}

// NewCommand returns the "rainlight encode" command.
func NewCommand(a *app.App) *cobra.Command {
	var templateFlag string

	cmd := &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Encode text as color words, one line per byte",
		Long:  "Encode text as color words. Arguments are joined with single spaces. Every byte of the text, including each byte of a multi-byte character, becomes one line of eight colors.",
		Example: `  rainlight encode Hello
  rainlight encode -o json Hi
  rainlight encode -- -5 degrees
  rainlight encode --template '{{.Index}} {{.Bits}} {{.Line | lower}}' Hi`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				return app.NewUsageError("please provide text to encode")
			}

			var tpl *template.Template
			if templateFlag != "" {
				var err error
				tpl, err = template.New("rainlight").Funcs(sprig.HermeticTxtFuncMap()).Parse(templateFlag)
				if err != nil {
					return fmt.Errorf("failed to parse go template: %w", err)
				}
			}

			lines := codec.EncodeLines(text)
			a.Logger.Debug("encoded text", "bytes", len(lines), "tokens", len(lines)*8)

			if a.Output == app.OutputFormatJSON {
				doc := app.EncodeJSON{Input: text, Lines: make([]app.LineJSON, len(lines))}
				for i, l := range lines {
					doc.Lines[i] = app.LineJSON{
						Index:  l.Index,
						Byte:   l.Byte,
						Bits:   l.Bits(),
						Colors: l.Colors(),
					}
				}
				return a.PrintJSON(doc)
			}

			if tpl != nil {
				for _, l := range lines {
					buf := bytes.NewBuffer(nil)
					err := tpl.Execute(buf, templateLine{
						Index:  l.Index,
						Byte:   l.Byte,
						Bits:   l.Bits(),
						Colors: l.Colors(),
						Line:   l.String(),
					})
					if err != nil {
						return fmt.Errorf("failed to execute go template: %w", err)
					}
					fmt.Fprintln(a.OutWriter, buf.String())
				}
				return nil
			}

			p := a.Palette()
			fmt.Fprintf(a.ColorableOut, "Input text: %s\n", text)
			fmt.Fprintln(a.ColorableOut, "Encoded color lines (one line per byte):")
			for _, l := range lines {
				fmt.Fprintf(a.ColorableOut, "%3d: %s\n", l.Index, p.Line(l))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateFlag, "template", "", "Go template applied to every byte instead of the default output. Fields: .Index .Byte .Bits .Colors .Line; sprig functions are available")
	// Everything after the first word of text is text, even if it starts with a dash.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
