package reader

import (
	"log"
	"os"
)

// Options configures non-fatal reader behaviour. ParseSource accepts nil
// or a zero value: a nil Warnings is replaced with the DefaultOptions
// logger.
type Options struct {
	// Warnings receives BadEscape diagnostics (spec §4.1.7, §7). Never
	// nil after DefaultOptions/normalizeOptions.
	Warnings *log.Logger
	// StrictEscapes promotes BadEscape from a warning to a fatal error
	// of kind KindBadFunctionForm. Off by default, matching
	// spec §7's "Warning only; literal fallthrough".
	StrictEscapes bool
}

// DefaultOptions returns the zero-config default: warnings to stderr,
// BadEscape non-fatal.
func DefaultOptions() *Options {
	return &Options{
		Warnings: log.New(os.Stderr, "sol: ", 0),
	}
}

func normalizeOptions(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	if o.Warnings == nil {
		cp := *o
		cp.Warnings = log.New(os.Stderr, "sol: ", 0)
		return &cp
	}
	return o
}
