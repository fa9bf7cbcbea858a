// Package charset defines the named alphabets tokens are sampled from.
package charset

import (
	"errors"
	"fmt"
	"strings"
)

// Charset names an alphabet.
type Charset string

// Supported charsets.
const (
	Alnum  Charset = "alnum"
	Hex    Charset = "hex"
	Digits Charset = "digits"
	Words  Charset = "words"
)

// ErrUnknownCharset is returned by Parse for names outside Names().
var ErrUnknownCharset = errors.New("unknown charset")

var (
	alnumChars  = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")
	hexChars    = []byte("0123456789abcdef")
	digitChars  = []byte("0123456789")
	commonWords = []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india",
		"juliet", "kilo", "lima", "mike", "november", "oscar", "papa", "quebec", "romeo",
		"sierra", "tango", "uniform", "victor", "whiskey", "xray", "yankee", "zulu",
	}
)

// Names returns all charset names in display order.
func Names() []string {
	return []string{string(Alnum), string(Hex), string(Digits), string(Words)}
}

// Parse resolves a charset by name.
func Parse(name string) (Charset, error) {
	switch cs := Charset(strings.ToLower(strings.TrimSpace(name))); cs {
	case Alnum, Hex, Digits, Words:
		return cs, nil
	default:
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownCharset, name, strings.Join(Names(), ", "))
	}
}

// Alphabet returns a copy of the symbol alphabet. It is nil for Words.
func (c Charset) Alphabet() []byte {
	var chars []byte

	switch c {
	case Alnum:
		chars = alnumChars
	case Hex:
		chars = hexChars
	case Digits:
		chars = digitChars
	default:
		return nil
	}

	return append([]byte(nil), chars...)
}

// Words returns a copy of the word list used by the Words charset.
func (c Charset) Words() []string {
	if c != Words {
		return nil
	}

	return append([]string(nil), commonWords...)
}

// Contains reports whether r is a symbol of a symbol charset.
func (c Charset) Contains(r rune) bool {
	if r > 0x7f {
		return false
	}

	for _, b := range c.Alphabet() {
		if rune(b) == r {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (c Charset) String() string {
	return string(c)
}
