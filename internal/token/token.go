// Package token samples the random part of a flag.
//
// Every charset, the word list included, draws from the same unpredictable
// source. New(nil) uses crypto/rand; tests pass a seeded reader.
package token

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/flaggen/flaggen/internal/charset"
	"github.com/flaggen/flaggen/internal/uniuri"
)

// ErrNegativeLength is returned if a negative token length was requested.
var ErrNegativeLength = errors.New("token length can not be negative")

// Sampler draws tokens from a random byte stream.
type Sampler struct {
	src uniuri.Source
}

// New returns a Sampler reading from r, or from crypto/rand if r is nil.
func New(r io.Reader) *Sampler {
	return &Sampler{src: uniuri.Reader(r)}
}

// Sample returns a token of exactly length characters from cs.
func (s *Sampler) Sample(length int, cs charset.Charset) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}

	if length == 0 {
		return "", nil
	}

	if cs == charset.Words {
		return s.sampleWords(length, cs.Words())
	}

	chars := cs.Alphabet()
	if chars == nil {
		return "", errors.Wrapf(charset.ErrUnknownCharset, "charset %q", cs)
	}

	tok, err := s.src.NewLenChars(length, chars)
	if err != nil {
		return "", errors.Wrap(err, "sample token")
	}

	return tok, nil
}

// sampleWords concatenates uniformly chosen words until length is reached
// and cuts the result to exactly length characters.
func (s *Sampler) sampleWords(length int, words []string) (string, error) {
	var b strings.Builder

	b.Grow(length + len("november"))

	for b.Len() < length {
		i, err := s.src.Intn(len(words))
		if err != nil {
			return "", errors.Wrap(err, "sample word")
		}

		b.WriteString(words[i])
	}

	return b.String()[:length], nil
}
