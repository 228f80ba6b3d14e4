package solc

import (
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/assemblr/solc/reader"
)

// Options configures a Compile/Parse call. It is the YAML-loadable
// counterpart of reader.Options.
type Options struct {
	// StrictEscapes promotes an unrecognised string escape from a
	// warning to a fatal error (spec §4.1.7, §7).
	StrictEscapes bool `yaml:"strict_escapes"`

	// Warnings receives non-fatal diagnostics. Not YAML-configurable;
	// defaults to a logger on os.Stderr.
	Warnings *log.Logger `yaml:"-"`
}

// DefaultOptions returns the zero-config default.
func DefaultOptions() *Options {
	return &Options{
		Warnings: log.New(os.Stderr, "sol: ", 0),
	}
}

// LoadOptions decodes YAML configuration bytes into an Options, filling
// in the non-YAML fields (the warnings sink) with their defaults.
//
// Example configuration:
//
//	strict_escapes: true
func LoadOptions(data []byte) (*Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, errors.Wrap(err, "solc: decoding options")
	}
	if opts.Warnings == nil {
		opts.Warnings = log.New(os.Stderr, "sol: ", 0)
	}
	return opts, nil
}

func (o *Options) readerOptions() *reader.Options {
	if o == nil {
		return nil
	}
	return &reader.Options{
		Warnings:      o.Warnings,
		StrictEscapes: o.StrictEscapes,
	}
}
