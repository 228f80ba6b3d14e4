package value

import "fmt"

// Value is the Sol AST tagged sum (spec §3.1): *List, Token, String,
// Number, *Frozen or *ObjectLiteral.
type Value interface {
	solValue()
}

// Token is an interned identifier: a non-empty byte string containing no
// whitespace and none of "( ) [ ] { } ; \"".
type Token string

func (Token) solValue() {}

// String is a byte sequence after escape decoding (spec §4.1.7).
type String []byte

func (String) solValue() {}

// Number is an IEEE-754 double (spec §3.1, §4.4.4).
type Number float64

func (Number) solValue() {}

// List is an ordered sequence of Values plus the two dispatch flags the
// runtime needs: ObjectMode and FreezeCount.
//
// FreezeCount follows spec §3.1: -1 means "implicitly frozen as long as
// it appears in code" (produced by the dotted-getter rewrite, §4.2),
// 0 is the default (no freezing), and values >= 1 are explicit freezes.
// The reader never produces anything above 1, but the invariant
// (FreezeCount >= -1) is the only constraint the value model enforces.
type List struct {
	ObjectMode  bool
	FreezeCount int
	Children    []Value
}

func (*List) solValue() {}

// NewList returns an empty List with the default flags.
func NewList() *List {
	return &List{}
}

// Append adds v as the next child of l.
func (l *List) Append(v Value) {
	l.Children = append(l.Children, v)
}

// Len returns the number of children (spec §3.1: "A List's length equals
// the number of child Values").
func (l *List) Len() int {
	return len(l.Children)
}

// Frozen wraps a Value, marking it "evaluate as literal, not as an
// application" (spec §3.1, §4.1.3, §4.4.4).
type Frozen struct {
	Inner Value
}

func (*Frozen) solValue() {}

// ObjectLiteralEntry is one key/value pair of an ObjectLiteral, in
// insertion order.
type ObjectLiteralEntry struct {
	Key Token
	Val Value
}

// ObjectLiteral is a parent token name (possibly empty, meaning "no
// explicit parent") plus an ordered mapping from key token to Value.
// Keys are unique within a literal; re-inserting an existing key
// overwrites its value in place, preserving the original position
// (spec §4.3: "the last one wins (ordered overwrite)").
type ObjectLiteral struct {
	Parent  string
	Entries []ObjectLiteralEntry
}

func (*ObjectLiteral) solValue() {}

// NewObjectLiteral returns an empty ObjectLiteral with the given parent
// name ("" means no explicit parent).
func NewObjectLiteral(parent string) *ObjectLiteral {
	return &ObjectLiteral{Parent: parent}
}

// Set inserts or overwrites key with val. If key already exists, its
// existing slot is overwritten and its position preserved; otherwise a
// new entry is appended.
func (o *ObjectLiteral) Set(key Token, val Value) {
	for i := range o.Entries {
		if o.Entries[i].Key == key {
			o.Entries[i].Val = val
			return
		}
	}
	o.Entries = append(o.Entries, ObjectLiteralEntry{Key: key, Val: val})
}

// Get returns the value associated with key and whether it was found.
func (o *ObjectLiteral) Get(key Token) (Value, bool) {
	for _, e := range o.Entries {
		if e.Key == key {
			return e.Val, true
		}
	}
	return nil, false
}

func (t Token) String() string {
	return string(t)
}

func (s String) String() string {
	return fmt.Sprintf("%q", []byte(s))
}
