package app

import (
	"encoding/json"
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/vmihailenco/msgpack/v5"
)

// LineJSON is one encoded byte in --output json.
type LineJSON struct {
	Index  int      `json:"index"`
	Byte   byte     `json:"byte"`
	Bits   string   `json:"bits"`
	Colors []string `json:"colors"`
}

// EncodeJSON is the document printed by encode with --output json.
type EncodeJSON struct {
	Input string     `json:"input"`
	Lines []LineJSON `json:"lines"`
}

// Values of DecodeJSON.Encoding.
const (
	TextEncodingUTF8   = "utf-8"
	TextEncodingLatin1 = "latin1"
)

// DecodeJSON is the document printed by the decode commands with
// --output json. Text holds the decoded bytes as UTF-8 when they are valid
// UTF-8, otherwise one Latin-1 character per byte, as Encoding says.
type DecodeJSON struct {
	Bits     string `json:"bits"`
	Text     string `json:"text"`
	Encoding string `json:"encoding"`
	MsgPack  any    `json:"msgpack,omitempty"`
}

// PrintJSON writes v as indented JSON, colorized when the palette is.
func (a *App) PrintJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	f := prettyjson.NewFormatter()
	f.DisabledColor = !a.Palette().Enabled()
	out, err := f.Format(data)
	if err != nil {
		return fmt.Errorf("format output: %w", err)
	}
	fmt.Fprintln(a.ColorableOut, string(out))
	return nil
}

// DecodeMsgPack decodes data as a single MessagePack value.
func DecodeMsgPack(data []byte) (any, error) {
	var obj any
	if err := msgpack.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("could not decode msgpack data: %w", err)
	}
	return obj, nil
}

// UsageError is an error caused by how the command was invoked. The
// dispatcher prints usage after it.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError formats a UsageError.
func NewUsageError(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}
