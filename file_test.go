package solc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestCompileFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog.sol")
	outPath := filepath.Join(dir, "prog.solbin")

	if err := os.WriteFile(srcPath, []byte(`42 "hi"`), 0644); err != nil {
		t.Fatalf("WriteFile(src): %v", err)
	}
	if err := CompileFile(srcPath, outPath, nil); err != nil {
		t.Fatalf("CompileFile: %v", err)
	}

	blob, err := ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(blob, []byte("SOLBIN")) {
		t.Fatalf("missing SOLBIN magic, got %x", blob[:6])
	}
}

func TestReadFileRejectsNonSolbin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-solbin.bin")
	if err := os.WriteFile(path, []byte("not a solbin blob"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Fatalf("expected an error for a non-SOLBIN file")
	}
}

func TestCompileFilePropagatesParseError(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "bad.sol")
	outPath := filepath.Join(dir, "bad.solbin")
	if err := os.WriteFile(srcPath, []byte("(a b"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := CompileFile(srcPath, outPath, nil); err == nil {
		t.Fatalf("expected an error for unclosed list")
	}
}
