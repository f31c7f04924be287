package codec

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteToColors(t *testing.T) {
	require.Equal(t, []string{
		ZeroColor, OneColor, ZeroColor, ZeroColor,
		ZeroColor, ZeroColor, ZeroColor, OneColor,
	}, ByteToColors('A'))

	require.Equal(t, []string{
		OneColor, OneColor, OneColor, OneColor,
		OneColor, OneColor, OneColor, OneColor,
	}, ByteToColors(0xff))
}

func TestByteRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		colors := ByteToColors(b)
		require.Len(t, colors, 8)

		bits := ColorsToBits(strings.Join(colors, " "))
		require.Len(t, bits, 8)

		decoded, err := DecodeBytes(bits)
		require.NoError(t, err)
		require.Equal(t, []byte{b}, decoded, "byte %d", i)
	}
}

func TestEncodeText(t *testing.T) {
	lines := EncodeText("A")
	require.Len(t, lines, 1)
	require.Equal(t, "Olive Green | Forest Green | Olive Green | Olive Green | Olive Green | Olive Green | Olive Green | Forest Green", lines[0])

	require.Empty(t, EncodeText(""))
}

func TestEncodeLines(t *testing.T) {
	lines := EncodeLines("Hé")
	// 'é' is two bytes in UTF-8.
	require.Len(t, lines, 3)

	assert.Equal(t, 1, lines[0].Index)
	assert.Equal(t, byte('H'), lines[0].Byte)
	assert.Equal(t, "01001000", lines[0].Bits())

	assert.Equal(t, 2, lines[1].Index)
	assert.Equal(t, byte(0xc3), lines[1].Byte)
	assert.Equal(t, "11000011", lines[1].Bits())

	assert.Equal(t, 3, lines[2].Index)
	assert.Equal(t, byte(0xa9), lines[2].Byte)
	assert.Equal(t, "10101001", lines[2].Bits())
}

func TestTextRoundTrip(t *testing.T) {
	tests := []string{
		"Hi",
		"Hello, World!",
		"こんにちはHello",
		"\x00\x7f\x80\xff",
		" spaced  out ",
	}
	for _, text := range tests {
		t.Run(strconv.Quote(text), func(t *testing.T) {
			bits := ColorsToBits(strings.Join(EncodeText(text), "\n"))
			require.Equal(t, BitString([]byte(text)), bits)

			decoded, err := DecodeBits(bits)
			require.NoError(t, err)
			require.Equal(t, text, decoded)
		})
	}
}

func TestDecodeBits(t *testing.T) {
	tests := []struct {
		name    string
		bits    string
		want    string
		wantErr error
	}{
		{name: "hi", bits: "0100100001101001", want: "Hi"},
		{name: "noise is ignored", bits: "0100 1000-0110_1001\n", want: "Hi"},
		{name: "null byte", bits: "00000000", want: "\x00"},
		{name: "empty", bits: "", wantErr: ErrInvalidInput},
		{name: "only noise", bits: "abc xyz", wantErr: ErrInvalidInput},
		{name: "seven digits", bits: "0000000", wantErr: ErrInvalidInput},
		{name: "nine digits", bits: "000000001", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBits(tt.bits)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorsToBits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Forest Green Olive Green", want: "10"},
		{in: "forest green | olive green | FOREST GREEN", want: "101"},
		{in: "Forest GreenOlive Green", want: "10"},
		{in: "green forest olive", want: ""},
		{in: "", want: ""},
		{in: "Forest Green, 0, Olive Green", want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ColorsToBits(tt.in))
		})
	}
}

func TestColorsToBitsIgnoresCase(t *testing.T) {
	in := strings.Join(EncodeText("Rain light"), " ")
	want := ColorsToBits(in)
	require.NotEmpty(t, want)
	require.Equal(t, want, ColorsToBits(strings.ToUpper(in)))
	require.Equal(t, want, ColorsToBits(strings.ToLower(in)))
}

func TestDecodeEightZeroes(t *testing.T) {
	in := strings.TrimSpace(strings.Repeat("Olive Green ", 8))
	bits := ColorsToBits(in)
	require.Equal(t, "00000000", bits)

	text, err := DecodeBits(bits)
	require.NoError(t, err)
	require.Equal(t, "\x00", text)
}

func TestBitString(t *testing.T) {
	require.Equal(t, "0100100001101001", BitString([]byte("Hi")))
	require.Equal(t, "", BitString(nil))
}

func TestLatin1(t *testing.T) {
	require.Equal(t, "é", Latin1("\xe9"))
	require.Equal(t, "Hi", Latin1("Hi"))
	require.Equal(t, "Ã©", Latin1("é"))
}

func TestSymbol(t *testing.T) {
	require.Equal(t, OneColor, One.String())
	require.Equal(t, ZeroColor, Zero.String())
	require.Equal(t, byte('1'), One.Digit())
	require.Equal(t, byte('0'), Zero.Digit())
	require.Equal(t, One, SymbolOf(true))
	require.Equal(t, Zero, SymbolOf(false))
	require.NotEqual(t, One.Hex(), Zero.Hex())
}

func TestParseError(t *testing.T) {
	_, cause := strconv.ParseUint("0102", 2, 8)
	var err error = &ParseError{Chunk: "0102", Err: cause}

	require.EqualError(t, err, "could not parse bit chunk: 0102")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.ErrorIs(t, err, strconv.ErrSyntax)
}
