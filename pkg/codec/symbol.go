package codec

// Symbol is one bit of encoded data, displayed as a color name.
type Symbol uint8

const (
	Zero Symbol = iota
	One
)

const (
	// OneColor is the token for a set bit.
	OneColor = "Forest Green"
	// ZeroColor is the token for a cleared bit.
	ZeroColor = "Olive Green"

	// Separator joins the tokens of one encoded byte.
	Separator = " | "
)

var symbols = [...]struct {
	name  string
	digit byte
	hex   string
}{
	Zero: {name: ZeroColor, digit: '0', hex: "#808000"},
	One:  {name: OneColor, digit: '1', hex: "#228B22"},
}

// SymbolOf returns One for a set bit and Zero otherwise.
func SymbolOf(bit bool) Symbol {
	if bit {
		return One
	}
	return Zero
}

// String returns the color name of s.
func (s Symbol) String() string {
	return symbols[s&1].name
}

// Digit returns '0' or '1'.
func (s Symbol) Digit() byte {
	return symbols[s&1].digit
}

// Hex returns the RGB hex value of the color s is named after.
func (s Symbol) Hex() string {
	return symbols[s&1].hex
}
