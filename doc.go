// Package solc is the core of a compiler front-end for Sol, a small
// s-expression language: it turns source bytes into a value.List tree
// (package reader) and that tree into a tagged SOLBIN binary (package
// emitter). Compile wires the two stages together; Parse and Emit are
// also exported individually for callers that need the intermediate
// tree.
package solc
