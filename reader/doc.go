// Package reader implements the Sol lexer/parser (spec §4.1-§4.3): it
// turns source bytes into a value.List tree, expanding the dotted-getter,
// '^' function-shorthand and '@' object-mode-sugar forms along the way.
package reader
