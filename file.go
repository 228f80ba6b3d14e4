package solc

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/assemblr/solc/emitter"
)

// WriteFile writes a SOLBIN blob to fileName, adapted from the image
// file-save idiom (os.OpenFile with O_CREATE, a single write, deferred
// Close) rather than the source's temp-file-then-copy approach (spec
// Design Note §9: "a simple growable in-memory buffer is equivalent and
// preferred" — the blob is already fully built in memory by the time
// this is called).
func WriteFile(fileName string, blob []byte) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return errors.Wrapf(err, "solc: writing %s", fileName)
	}
	defer f.Close()
	if _, err := f.Write(blob); err != nil {
		return errors.Wrapf(err, "solc: writing %s", fileName)
	}
	return nil
}

// ReadFile reads a SOLBIN blob from fileName and validates its magic
// header.
func ReadFile(fileName string) ([]byte, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "solc: reading %s", fileName)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "solc: reading %s", fileName)
	}
	blob := make([]byte, st.Size())
	if _, err := io.ReadFull(f, blob); err != nil {
		return nil, errors.Wrapf(err, "solc: reading %s", fileName)
	}
	if len(blob) < len(emitter.Magic) || string(blob[:len(emitter.Magic)]) != string(emitter.Magic[:]) {
		return nil, errors.Errorf("solc: %s is not a SOLBIN file", fileName)
	}
	return blob, nil
}

// CompileFile reads Sol source from srcPath, compiles it, and writes the
// resulting SOLBIN blob to outPath.
func CompileFile(srcPath, outPath string, opts *Options) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return errors.Wrapf(err, "solc: reading %s", srcPath)
	}
	blob, err := Compile(src, opts)
	if err != nil {
		return err
	}
	return WriteFile(outPath, blob)
}
