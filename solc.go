package solc

import (
	"github.com/assemblr/solc/emitter"
	"github.com/assemblr/solc/reader"
	"github.com/assemblr/solc/value"
)

// Parse is reader.Parse with solc's own Options, named "input" in error
// messages. Pass nil for the zero-config default.
func Parse(source []byte, opts *Options) (*value.List, error) {
	return reader.ParseSource("input", source, opts.readerOptions())
}

// Emit is emitter.Emit; it takes the tree Parse returns.
func Emit(top *value.List) ([]byte, error) {
	return emitter.Emit(top)
}

// Compile runs the full pipeline (spec §2): parse source into a value
// tree, then emit that tree as a SOLBIN binary blob.
func Compile(source []byte, opts *Options) ([]byte, error) {
	top, err := Parse(source, opts)
	if err != nil {
		return nil, err
	}
	return Emit(top)
}
