// Package solio provides a small growable output buffer with sticky-error
// write semantics, used by the emitter to accumulate a SOLBIN blob.
package solio

import (
	"bytes"

	"github.com/pkg/errors"
)

// Buffer wraps a bytes.Buffer and remembers the first write error, if any.
// Once an error has been recorded, further writes are no-ops that keep
// returning the same error. This lets callers chain a long sequence of
// Write/WriteByte calls in the emitter without checking an error after
// every single one, then check once at the end.
type Buffer struct {
	buf bytes.Buffer
	Err error
}

// NewBuffer returns an empty Buffer ready for writing.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends p to the buffer. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.Err != nil {
		return 0, b.Err
	}
	n, err := b.buf.Write(p)
	if err != nil {
		b.Err = errors.Wrap(err, "solio: write failed")
	}
	return n, b.Err
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	if b.Err != nil {
		return b.Err
	}
	if err := b.buf.WriteByte(c); err != nil {
		b.Err = errors.Wrap(err, "solio: write failed")
	}
	return b.Err
}

// Bytes returns the accumulated buffer contents. The slice is only valid
// if Err is nil.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of bytes currently buffered.
func (b *Buffer) Len() int {
	return b.buf.Len()
}
