package emitter

import (
	"io"

	"github.com/pkg/errors"
)

// Length band bounds (spec §4.4.3): band b's total width is 1, 2, 4 or 8
// bytes for b = 1..4, the top 4 bits of the first byte carrying the band
// tag and the rest carrying the value.
const (
	maxBand1 = 1<<4 - 1
	maxBand2 = 1<<12 - 1
	maxBand3 = 1<<28 - 1
	maxBand4 = 1<<60 - 1
)

// ErrLengthOverflow is returned by encodeLength when n exceeds 2^60-1,
// the largest value any band can hold (spec §4.4.6, LengthOverflow).
var ErrLengthOverflow = errors.New("length exceeds 2^60-1")

// encodeLength appends the band-prefixed encoding of n to dst and
// returns the result, choosing the smallest band that fits n (spec
// §4.4.3, P5).
func encodeLength(dst []byte, n uint64) ([]byte, error) {
	switch {
	case n <= maxBand1:
		return append(dst, byte(1<<4)|byte(n)), nil
	case n <= maxBand2:
		return append(dst, byte(2<<4)|byte(n>>8), byte(n)), nil
	case n <= maxBand3:
		return append(dst,
			byte(3<<4)|byte(n>>24),
			byte(n>>16), byte(n>>8), byte(n)), nil
	case n <= maxBand4:
		return append(dst,
			byte(4<<4)|byte(n>>56),
			byte(n>>48), byte(n>>40), byte(n>>32),
			byte(n>>24), byte(n>>16), byte(n>>8), byte(n)), nil
	default:
		return nil, ErrLengthOverflow
	}
}

// decodeLength reads one band-prefixed length from r, dispatching on the
// first byte's top nibble.
func decodeLength(r io.Reader) (uint64, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return 0, errors.Wrap(err, "reading length band tag")
	}
	band := first[0] >> 4
	high := uint64(first[0] & 0x0F)

	var rest []byte
	switch band {
	case 1:
		return high, nil
	case 2:
		rest = make([]byte, 1)
	case 3:
		rest = make([]byte, 3)
	case 4:
		rest = make([]byte, 7)
	default:
		return 0, errors.Errorf("invalid length band tag %d", band)
	}
	if _, err := io.ReadFull(r, rest); err != nil {
		return 0, errors.Wrap(err, "reading length band payload")
	}
	n := high
	for _, b := range rest {
		n = n<<8 | uint64(b)
	}
	return n, nil
}
