package emitter

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// mantissaDigits fixes the precision of the 8-byte mantissa integer in
// the Number payload (spec §4.4.4). math.Frexp always returns a
// fraction in [0.5, 1) backed by a 53-bit float64 significand, so
// scaling by 2^63 is exact in both directions: encoding and decoding
// never lose a bit.
const mantissaDigits = 63

// encodeNumber writes the Number payload (spec §4.4.4): a sign byte,
// an 8-byte big-endian mantissa integer, then a length-prefixed
// absolute exponent.
func encodeNumber(dst []byte, x float64) ([]byte, error) {
	frac, exp := math.Frexp(x)

	var sign byte
	if exp >= 0 {
		sign |= 1 << 0
	}
	if !math.Signbit(x) {
		sign |= 1 << 1
	}
	dst = append(dst, sign)

	mantissaInt := uint64(math.Abs(frac) * float64(uint64(1)<<mantissaDigits))
	var m [8]byte
	for i := 0; i < 8; i++ {
		m[i] = byte(mantissaInt >> uint(8*(7-i)))
	}
	dst = append(dst, m[:]...)

	absExp := exp
	if absExp < 0 {
		absExp = -absExp
	}
	return encodeLength(dst, uint64(absExp))
}

// decodeNumber reads one Number payload from r. It is the inverse of
// encodeNumber and is exercised only by this package's own round-trip
// tests (spec.md's P4 is a property of the payload, not a public API
// the core exposes — the separate runtime is the only consumer of a
// .solbin file).
func decodeNumber(r io.Reader) (float64, error) {
	var sign [1]byte
	if _, err := io.ReadFull(r, sign[:]); err != nil {
		return 0, errors.Wrap(err, "reading number sign byte")
	}
	expNonNegative := sign[0]&(1<<0) != 0
	valueNonNegative := sign[0]&(1<<1) != 0

	var m [8]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return 0, errors.Wrap(err, "reading number mantissa")
	}
	var mantissaInt uint64
	for _, b := range m {
		mantissaInt = mantissaInt<<8 | uint64(b)
	}

	absExp, err := decodeLength(r)
	if err != nil {
		return 0, errors.Wrap(err, "reading number exponent")
	}
	exp := int(absExp)
	if !expNonNegative {
		exp = -exp
	}

	frac := float64(mantissaInt) / float64(uint64(1)<<mantissaDigits)
	x := math.Ldexp(frac, exp)
	if !valueNonNegative {
		x = -x
	}
	return x, nil
}

// isBooleanToken reports whether a Token's text has the reserved
// spelling that the emitter specializes into tag 0x07 (spec §4.4.4).
func isBooleanToken(s string) (value bool, ok bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
