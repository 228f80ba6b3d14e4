package solc

import (
	"bytes"
	"testing"
)

func TestCompileMagicAndTerminator(t *testing.T) {
	out, err := Compile([]byte("42 (a b) ^[x]"), nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("SOLBIN")) {
		t.Fatalf("missing SOLBIN magic, got %x", out[:6])
	}
	if out[len(out)-1] != 0x00 {
		t.Fatalf("missing terminator, got %x", out[len(out)-1])
	}
}

func TestCompilePropagatesParseError(t *testing.T) {
	_, err := Compile([]byte("(a b"), nil)
	if err == nil {
		t.Fatalf("expected an error for unclosed list")
	}
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions([]byte(`strict_escapes: true`))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if !opts.StrictEscapes {
		t.Fatalf("StrictEscapes = false, want true")
	}
	if opts.Warnings == nil {
		t.Fatalf("Warnings logger should default, not be nil")
	}
}

func TestLoadOptionsEmpty(t *testing.T) {
	opts, err := LoadOptions([]byte(``))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.StrictEscapes {
		t.Fatalf("StrictEscapes should default to false")
	}
}

func TestParseNilOptions(t *testing.T) {
	top, err := Parse([]byte(`"hi"`), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if top.Len() != 1 {
		t.Fatalf("got %d children, want 1", top.Len())
	}
}
