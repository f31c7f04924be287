package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/birdayz/rainlight/pkg/app"
	"github.com/birdayz/rainlight/pkg/codec"
)

// NewBitsCommand returns the "rainlight decode-bits" command.
func NewBitsCommand(a *app.App) *cobra.Command {
	var decodeMsgPack bool

	cmd := &cobra.Command{
		Use:   "decode-bits BITS...",
		Short: "Decode a string of 0s and 1s to text",
		Long:  "Decode binary digits to text, eight digits per byte. Arguments are concatenated and every character other than 0 and 1 is ignored.",
		Example: `  rainlight decode-bits 0100100001101001
  rainlight decode-bits 01001000 01101001`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bits := strings.Join(args, "")
			return printDecoded(a, bits, decodeMsgPack)
		},
	}

	a.AddLatin1Flag(cmd)
	cmd.Flags().BoolVar(&decodeMsgPack, "decode-msgpack", false, "Also decode the bytes as MessagePack and print them as JSON")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// NewColorsCommand returns the "rainlight decode-colors" command.
func NewColorsCommand(a *app.App) *cobra.Command {
	var decodeMsgPack bool

	cmd := &cobra.Command{
		Use:   "decode-colors WORDS...",
		Short: "Decode Forest Green / Olive Green words to text",
		Long:  "Decode color words to text. Matching is case-insensitive and anything that is not one of the two color names is ignored.",
		Example: `  rainlight decode-colors "Olive Green | Forest Green | Olive Green | Olive Green | Forest Green | Olive Green | Olive Green | Olive Green"
  rainlight encode Hi | rainlight decode-colors "$(cat)"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := strings.Join(args, " ")
			if words == "" {
				return errors.New("please provide color words to decode")
			}

			bits := codec.ColorsToBits(words)
			a.Logger.Debug("detected bits", "words", len(words), "bits", len(bits))
			if a.Output != app.OutputFormatJSON {
				fmt.Fprintf(a.OutWriter, "Detected bits: %s\n", bits)
			}
			return printDecoded(a, bits, decodeMsgPack)
		},
	}

	a.AddLatin1Flag(cmd)
	cmd.Flags().BoolVar(&decodeMsgPack, "decode-msgpack", false, "Also decode the bytes as MessagePack and print them as JSON")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func printDecoded(a *app.App, bits string, decodeMsgPack bool) error {
	data, err := codec.DecodeBytes(bits)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	a.Logger.Debug("decoded bits", "bytes", len(data))

	text := string(data)
	if a.Latin1 {
		text = codec.Latin1(text)
	}

	var obj any
	if decodeMsgPack {
		obj, err = app.DecodeMsgPack(data)
		if err != nil {
			return err
		}
	}

	if a.Output == app.OutputFormatJSON {
		// JSON strings are UTF-8; anything else would be replaced by U+FFFD.
		encoding := app.TextEncodingUTF8
		if a.Latin1 {
			encoding = app.TextEncodingLatin1
		} else if !utf8.ValidString(text) {
			text = codec.Latin1(text)
			encoding = app.TextEncodingLatin1
		}
		return a.PrintJSON(app.DecodeJSON{
			Bits:     codec.BitString(data),
			Text:     text,
			Encoding: encoding,
			MsgPack:  obj,
		})
	}

	fmt.Fprintf(a.OutWriter, "Decoded text: %s\n", text)
	if decodeMsgPack {
		b, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("could not encode msgpack value as json: %w", err)
		}
		fmt.Fprintf(a.OutWriter, "Decoded msgpack: %s\n", b)
	}
	return nil
}
