// Package codec converts text to sequences of color tokens and back.
//
// Every byte becomes eight tokens, most-significant bit first. A set bit is
// "Forest Green", a cleared bit is "Olive Green".
package codec

import (
	"strconv"
	"strings"

	"github.com/yyyoichi/bitstream-go"
)

// Line is one encoded byte of input.
type Line struct {
	// Index is 1-based.
	Index   int
	Byte    byte
	Symbols []Symbol
}

// Colors returns the color token of every symbol in l.
func (l Line) Colors() []string {
	colors := make([]string, len(l.Symbols))
	for i, s := range l.Symbols {
		colors[i] = s.String()
	}
	return colors
}

// Bits returns the binary digits of l, MSB first.
func (l Line) Bits() string {
	var sb strings.Builder
	sb.Grow(len(l.Symbols))
	for _, s := range l.Symbols {
		sb.WriteByte(s.Digit())
	}
	return sb.String()
}

func (l Line) String() string {
	return strings.Join(l.Colors(), Separator)
}

// ByteToSymbols returns the eight symbols of b, MSB first.
func ByteToSymbols(b byte) []Symbol {
	return bytesToSymbols([]byte{b})
}

// ByteToColors returns the eight color tokens of b, MSB first.
func ByteToColors(b byte) []string {
	return Line{Symbols: ByteToSymbols(b)}.Colors()
}

// EncodeLines encodes every byte of text, including each byte of a
// multi-byte UTF-8 sequence.
func EncodeLines(text string) []Line {
	data := []byte(text)
	syms := bytesToSymbols(data)
	lines := make([]Line, len(data))
	for i, b := range data {
		lines[i] = Line{
			Index:   i + 1,
			Byte:    b,
			Symbols: syms[i*8 : (i+1)*8 : (i+1)*8],
		}
	}
	return lines
}

// EncodeText returns one line of joined color tokens per byte of text.
func EncodeText(text string) []string {
	lines := EncodeLines(text)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

// BitString returns the binary digits of data, MSB first.
func BitString(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	for _, s := range bytesToSymbols(data) {
		sb.WriteByte(s.Digit())
	}
	return sb.String()
}

func bytesToSymbols(data []byte) []Symbol {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range data {
		w.Write8(0, 8, b)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	syms := make([]Symbol, len(data)*8)
	for i := range syms {
		// i < len(data)*8, so the read is always within the written bits.
		bit, _ := r.ReadBitAt(i)
		syms[i] = SymbolOf(bit)
	}
	return syms
}

// DecodeBytes turns a string of binary digits into bytes. Characters other
// than '0' and '1' are ignored.
func DecodeBytes(bits string) ([]byte, error) {
	cleaned := cleanBits(bits)
	if len(cleaned) == 0 || len(cleaned)%8 != 0 {
		return nil, ErrInvalidInput
	}

	out := make([]byte, 0, len(cleaned)/8)
	for i := 0; i < len(cleaned); i += 8 {
		chunk := cleaned[i : i+8]
		v, err := strconv.ParseUint(chunk, 2, 8)
		if err != nil {
			return nil, &ParseError{Chunk: chunk, Err: err}
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// DecodeBits is DecodeBytes returning the bytes as a string.
func DecodeBits(bits string) (string, error) {
	b, err := DecodeBytes(bits)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func cleanBits(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '0' || r == '1' {
			return r
		}
		return -1
	}, s)
}

var phrases = strings.NewReplacer(
	strings.ToLower(OneColor), "1",
	strings.ToLower(ZeroColor), "0",
)

// ColorsToBits extracts the bit string spelled by the color phrases in text.
// Matching is case-insensitive and everything else is discarded. Digits
// already present in text are kept.
func ColorsToBits(text string) string {
	normalized := phrases.Replace(strings.ToLower(text))
	normalized = strings.Map(func(r rune) rune {
		if r == '0' || r == '1' {
			return r
		}
		return ' '
	}, normalized)
	return strings.Join(strings.Fields(normalized), "")
}

// Latin1 maps every byte of s to the code point of the same value.
func Latin1(s string) string {
	runes := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		runes[i] = rune(s[i])
	}
	return string(runes)
}
