package emitter

import (
	"bytes"
	"testing"
)

func TestEncodeLengthBandSelection(t *testing.T) {
	cases := []struct {
		n        uint64
		wantBand byte
		wantLen  int
	}{
		{0, 1, 1},
		{maxBand1, 1, 1},
		{maxBand1 + 1, 2, 2},
		{maxBand2, 2, 2},
		{maxBand2 + 1, 3, 4},
		{maxBand3, 3, 4},
		{maxBand3 + 1, 4, 8},
		{maxBand4, 4, 8},
	}
	for _, c := range cases {
		enc, err := encodeLength(nil, c.n)
		if err != nil {
			t.Fatalf("encodeLength(%d): %v", c.n, err)
		}
		if len(enc) != c.wantLen {
			t.Fatalf("encodeLength(%d): len=%d, want %d", c.n, len(enc), c.wantLen)
		}
		if band := enc[0] >> 4; band != c.wantBand {
			t.Fatalf("encodeLength(%d): band=%d, want %d", c.n, band, c.wantBand)
		}
		got, err := decodeLength(bytes.NewReader(enc))
		if err != nil {
			t.Fatalf("decodeLength: %v", err)
		}
		if got != c.n {
			t.Fatalf("round-trip %d: got %d", c.n, got)
		}
	}
}

func TestEncodeLengthOverflow(t *testing.T) {
	_, err := encodeLength(nil, maxBand4+1)
	if err != ErrLengthOverflow {
		t.Fatalf("got %v, want ErrLengthOverflow", err)
	}
}

func TestEncodeLengthRoundTripSweep(t *testing.T) {
	for _, n := range []uint64{1, 2, 3, 17, 300, 5000, 70000, 1 << 27, 1 << 30, 1 << 40, maxBand4} {
		enc, err := encodeLength(nil, n)
		if err != nil {
			t.Fatalf("encodeLength(%d): %v", n, err)
		}
		got, err := decodeLength(bytes.NewReader(enc))
		if err != nil {
			t.Fatalf("decodeLength(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("round-trip %d: got %d", n, got)
		}
	}
}
