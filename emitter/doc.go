// Package emitter walks a value.List tree and produces the tagged
// SOLBIN binary encoding (spec §4.4, §6.2).
package emitter
