package emitter

import (
	"github.com/assemblr/solc/internal/solio"
	"github.com/assemblr/solc/value"
)

// Emit walks top and produces the self-delimiting SOLBIN blob (spec
// §4.4.1, §6.2): the magic prefix, each top-level child's tagged
// encoding in order, then a single 0x00 terminator.
func Emit(top *value.List) ([]byte, error) {
	buf := solio.NewBuffer()
	if _, err := buf.Write(Magic[:]); err != nil {
		return nil, err
	}
	for _, child := range top.Children {
		if err := encodeValue(buf, child); err != nil {
			return nil, err
		}
	}
	if err := buf.WriteByte(byte(TagEnd)); err != nil {
		return nil, err
	}
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

// encodeValue writes one tag-prefixed Value encoding (spec §4.4.2,
// §4.4.4) to buf.
func encodeValue(buf *solio.Buffer, v value.Value) error {
	switch val := v.(type) {
	case value.Token:
		return encodeToken(buf, val)
	case value.String:
		return encodeString(buf, val)
	case value.Number:
		return encodeNumberValue(buf, val)
	case *value.Frozen:
		return encodeFrozen(buf, val)
	case *value.List:
		return encodeList(buf, val, false)
	case *value.ObjectLiteral:
		return encodeObjectLiteral(buf, val)
	default:
		return &UnsupportedValueError{Value: v}
	}
}

func encodeToken(buf *solio.Buffer, tok value.Token) error {
	if b, ok := isBooleanToken(string(tok)); ok {
		if err := buf.WriteByte(byte(TagBoolean)); err != nil {
			return err
		}
		var payload byte
		if b {
			payload = 1
		}
		return buf.WriteByte(payload)
	}
	if err := buf.WriteByte(byte(TagToken)); err != nil {
		return err
	}
	return writeLengthPrefixed(buf, []byte(tok))
}

func encodeString(buf *solio.Buffer, s value.String) error {
	if err := buf.WriteByte(byte(TagString)); err != nil {
		return err
	}
	return writeLengthPrefixed(buf, []byte(s))
}

func encodeNumberValue(buf *solio.Buffer, n value.Number) error {
	if err := buf.WriteByte(byte(TagNumber)); err != nil {
		return err
	}
	payload, err := encodeNumber(nil, float64(n))
	if err != nil {
		return err
	}
	_, err = buf.Write(payload)
	return err
}

// encodeFrozen implements the Frozen-List folding rule (spec §4.4.2,
// §4.4.4): a Frozen wrapping a List never uses tag 0x08; it is encoded
// as a List payload (0x02) with the literal flag set. Only a Frozen
// wrapping a non-list Value uses 0x08, the inner Value's full encoding
// following verbatim.
func encodeFrozen(buf *solio.Buffer, fr *value.Frozen) error {
	if lst, ok := fr.Inner.(*value.List); ok {
		return encodeList(buf, lst, true)
	}
	if err := buf.WriteByte(byte(TagFrozen)); err != nil {
		return err
	}
	return encodeValue(buf, fr.Inner)
}

// encodeList always writes a List payload (tag 0x02), even for a List
// shaped like the '^' shorthand's output (Token("^"), params,
// statements). Tag 0x03 is never emitted: spec §8's one worked example
// for this shape (S5, "^[x]") and every revision of the original
// emitter's write_list agree that a '^'-headed List is just a List on
// the wire, and neither the reader nor any other component ever
// attaches a marker distinguishing "written with '^'" from "an ordinary
// list that happens to start with the token ^" (spec §4.1.5 allows '^'
// as a bare token, so `[^ 2 3]` is a perfectly ordinary three-element
// list). Guessing the tag from shape misfires on exactly that input.
// See DESIGN.md.
func encodeList(buf *solio.Buffer, lst *value.List, literal bool) error {
	if err := buf.WriteByte(byte(TagList)); err != nil {
		return err
	}
	return encodeListPayload(buf, lst, literal)
}

// encodeListPayload writes a List's payload (spec §4.4.4): object_mode
// byte, literal byte, length-prefixed child count, then each child.
func encodeListPayload(buf *solio.Buffer, lst *value.List, literal bool) error {
	var objByte, litByte byte
	if lst.ObjectMode {
		objByte = 1
	}
	if literal {
		litByte = 1
	}
	if err := buf.WriteByte(objByte); err != nil {
		return err
	}
	if err := buf.WriteByte(litByte); err != nil {
		return err
	}
	lenBytes, err := encodeLength(nil, uint64(len(lst.Children)))
	if err != nil {
		return err
	}
	if _, err := buf.Write(lenBytes); err != nil {
		return err
	}
	for _, child := range lst.Children {
		if err := encodeValue(buf, child); err != nil {
			return err
		}
	}
	return nil
}

// encodeObjectLiteral writes the ObjectLiteral payload (spec §4.4.4):
// length-prefixed parent name, length-prefixed entry count, then for
// each entry a length-prefixed key followed by the value's full
// encoding.
func encodeObjectLiteral(buf *solio.Buffer, lit *value.ObjectLiteral) error {
	if err := buf.WriteByte(byte(TagObjectLiteral)); err != nil {
		return err
	}
	if err := writeLengthPrefixed(buf, []byte(lit.Parent)); err != nil {
		return err
	}
	countBytes, err := encodeLength(nil, uint64(len(lit.Entries)))
	if err != nil {
		return err
	}
	if _, err := buf.Write(countBytes); err != nil {
		return err
	}
	for _, entry := range lit.Entries {
		if err := writeLengthPrefixed(buf, []byte(entry.Key)); err != nil {
			return err
		}
		if err := encodeValue(buf, entry.Val); err != nil {
			return err
		}
	}
	return nil
}

func writeLengthPrefixed(buf *solio.Buffer, data []byte) error {
	lenBytes, err := encodeLength(nil, uint64(len(data)))
	if err != nil {
		return err
	}
	if _, err := buf.Write(lenBytes); err != nil {
		return err
	}
	_, err = buf.Write(data)
	return err
}
