package emitter

import "fmt"

// Tag identifies the kind of the next encoded Value (spec §4.4.2).
type Tag byte

const (
	TagEnd Tag = iota
	TagObjectLiteral
	TagList
	// TagFunction is named by the tag table but never written by this
	// emitter: the '^' shorthand's output has no on-the-wire marker
	// distinguishing it from an ordinary List that happens to start with
	// the token "^", and the one worked example that covers it (spec §8
	// S5) and the original emitter both encode it as a plain List. See
	// DESIGN.md and emitter.go's encodeList.
	TagFunction
	TagToken
	TagNumber
	TagString
	TagBoolean
	TagFrozen
)

var tagNames = [...]string{
	"end",
	"object_literal",
	"list",
	"function",
	"token",
	"number",
	"string",
	"boolean",
	"frozen",
}

// String returns the tag's wire name, or "tag(0xNN)" for a value outside
// the table (spec §4.4.6, UnsupportedValue).
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(0x%02x)", byte(t))
}

// Magic is the fixed 6-byte header every SOLBIN blob begins with.
var Magic = [6]byte{'S', 'O', 'L', 'B', 'I', 'N'}
