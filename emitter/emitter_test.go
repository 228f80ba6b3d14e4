package emitter

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/assemblr/solc/reader"
)

func mustEmit(t *testing.T, src string) []byte {
	t.Helper()
	top, err := reader.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	out, err := Emit(top)
	if err != nil {
		t.Fatalf("Emit(%q): %v", src, err)
	}
	return out
}

// TestMagicAndTerminator exercises (P1): every successful emission
// starts with SOLBIN and ends with the 0x00 terminator.
func TestMagicAndTerminator(t *testing.T) {
	for _, src := range []string{"42", `"hi"`, "true false", "(a b)", "^[x]", "a.b"} {
		out := mustEmit(t, src)
		if !bytes.Equal(out[:6], Magic[:]) {
			t.Fatalf("%q: missing SOLBIN magic, got %x", src, out[:6])
		}
		if out[len(out)-1] != 0x00 {
			t.Fatalf("%q: missing terminator, got %x", src, out[len(out)-1])
		}
	}
}

// TestScenarioS2String is (S2): "hi" emits SOLBIN, tag 0x06, band-1
// length 2, the bytes 'h','i', terminator.
func TestScenarioS2String(t *testing.T) {
	out := mustEmit(t, `"hi"`)
	want := append(append([]byte{}, Magic[:]...), 0x06, 0x12, 'h', 'i', 0x00)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// TestScenarioS3Booleans is (S3): "true false" emits two boolean
// encodings then the terminator.
func TestScenarioS3Booleans(t *testing.T) {
	out := mustEmit(t, "true false")
	want := append(append([]byte{}, Magic[:]...), 0x07, 0x01, 0x07, 0x00, 0x00)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// TestScenarioS4FrozenList is (S4): "(a b)" emits a literal List
// payload: tag 0x02, object_mode 0x00, literal 0x01, band-1 length 2,
// then each token.
func TestScenarioS4FrozenList(t *testing.T) {
	out := mustEmit(t, "(a b)")
	want := append(append([]byte{}, Magic[:]...),
		0x02, 0x00, 0x01, 0x12,
		0x04, 0x11, 'a',
		0x04, 0x11, 'b',
		0x00,
	)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// TestScenarioS5FunctionShorthand is (S5): "^[x]" emits a plain List of
// length 3 containing the token "^", an empty List, and a List with one
// token — not a Function (tag 0x03); see DESIGN.md.
func TestScenarioS5FunctionShorthand(t *testing.T) {
	out := mustEmit(t, "^[x]")
	want := append(append([]byte{}, Magic[:]...),
		0x02, 0x00, 0x00, 0x13, // outer List: object_mode=0 literal=0 len=3
		0x04, 0x11, '^', // Token("^")
		0x02, 0x00, 0x00, 0x10, // empty params List
		0x02, 0x00, 0x00, 0x11, 0x04, 0x11, 'x', // statements List: len=1, Token(x)
		0x00,
	)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// TestFunctionShorthandPlainListAmbiguity guards the misfire the review
// caught: a perfectly ordinary 3-element list whose head happens to be
// the bare token "^" (spec §4.1.5 allows '^' as an explicit token) must
// emit as the plain List it is (tag 0x02, band-1 length 3), with no
// special-casing triggered by its first child.
func TestFunctionShorthandPlainListAmbiguity(t *testing.T) {
	out := mustEmit(t, "[^ 2 3]")
	if out[6] != 0x02 {
		t.Fatalf("expected outer tag 0x02 (List), got 0x%02x", out[6])
	}
	if out[7] != 0x00 || out[8] != 0x00 || out[9] != 0x13 {
		t.Fatalf("expected object_mode=0 literal=0 len=3, got % x", out[7:10])
	}
	if out[len(out)-1] != 0x00 {
		t.Fatalf("missing terminator, got %x", out[len(out)-1])
	}
}

func TestEmitSnapshots(t *testing.T) {
	for _, src := range []string{
		"42", `"hi"`, "true false", "(a b)", "^[x]", "a.b",
		"^(a b) { a }", "@{ x 1 }", "@Point{ x 1 y 2 }", "[1 2 3]",
	} {
		out := mustEmit(t, src)
		snaps.MatchSnapshot(t, src, out)
	}
}

