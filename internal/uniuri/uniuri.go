package uniuri

import (
	"crypto/rand"
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16
)

// StdChars is a set of standard characters allowed in uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

const (
	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenBufLen is the minimum length of temporary buffer for random bytes
	// to fill after the first read didn't produce the full result.
	// If the initial buffer is smaller, this value is ignored.
	minRegenBufLen = 16

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// Source samples symbols from the bytes of an underlying reader.
type Source struct {
	r io.Reader
}

// Reader returns a Source reading from r. A nil reader falls back to crypto/rand.
func Reader(r io.Reader) Source {
	if r == nil {
		r = rand.Reader
	}

	return Source{r: r}
}

// New returns a new random string of the standard length, consisting of
// standard characters.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a new random string of the provided length, consisting
// of the provided byte slice of allowed characters (maximum 256).
// It panics if crypto/rand fails or the arguments are invalid.
func NewLenChars(length int, chars []byte) string {
	s, err := Reader(nil).NewLenChars(length, chars)
	if err != nil {
		panic(err.Error())
	}

	return s
}

// estimatedBufLen returns the estimated number of random bytes to request
// given that byte values greater than maxByte will be rejected.
func estimatedBufLen(need, maxByte int) int {
	return int(math.Ceil(float64(need) * (maxByteValue / float64(maxByte))))
}

// NewLenCharsBytes returns a random byte slice of the provided length, consisting
// of the provided byte slice of allowed characters (maximum 256).
// Bytes that would bias the modulo are rejected, so every symbol is equally likely.
func (s Source) NewLenCharsBytes(length int, chars []byte) ([]byte, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}

	if length == 0 {
		return []byte{}, nil
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		return nil, ErrAlphabetSize
	}

	maxRb := maxByteValue - (byteRange % clen)
	bufLen := max(estimatedBufLen(length, maxRb), length)
	bufLen = min(bufLen, maxBufLen)

	buf := make([]byte, bufLen) // storage for random bytes
	out := make([]byte, length) // storage for result

	var i int // index in out
	for {
		if _, err := io.ReadFull(s.r, buf[:bufLen]); err != nil {
			return nil, errors.Wrap(err, "uniuri: error reading random bytes")
		}

		for _, rb := range buf[:bufLen] {
			c := int(rb)
			if c > maxRb {
				// skip this number to avoid modulo bias
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return out, nil
			}
		}

		// adjust new requested length, but no smaller than minRegenBufLen
		bufLen = estimatedBufLen(length-i, maxRb)
		if bufLen < minRegenBufLen && minRegenBufLen < cap(buf) {
			bufLen = minRegenBufLen
		}

		bufLen = min(bufLen, maxBufLen, cap(buf))
	}
}

// NewLenChars is the string form of NewLenCharsBytes.
func (s Source) NewLenChars(length int, chars []byte) (string, error) {
	b, err := s.NewLenCharsBytes(length, chars)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Intn returns a uniformly distributed index in [0, n). n must be in [1, 256].
func (s Source) Intn(n int) (int, error) {
	if n == 1 {
		return 0, nil
	}

	if n < 1 || n > byteRange {
		return 0, ErrAlphabetSize
	}

	indices := make([]byte, n)
	for i := range indices {
		indices[i] = byte(i)
	}

	b, err := s.NewLenCharsBytes(1, indices)
	if err != nil {
		return 0, err
	}

	return int(b[0]), nil
}
