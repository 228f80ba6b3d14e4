// Package value implements the Sol AST value universe: List, Token,
// String, Number, Frozen and ObjectLiteral (spec §3.1). It is a pure
// owned tree with no reference counting and no runtime coupling — the
// reader builds it, the emitter walks it once.
//
// Values are modelled as an interface with a private marker method,
// implemented by one concrete type per kind, so that the emitter's
// type switch plays the role the reference implementation's
// type-id-plus-downcast dispatch does.
package value
