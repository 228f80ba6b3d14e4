package reader

import "fmt"

// Kind identifies the fatal reasons a Parse can fail (spec §4.1.1, §7).
//
// KindUnterminatedString and the "any empty dotted-getter segment is
// BadFunctionForm" rule applied by the dotted-getter rewrite are not
// named by spec.md's closed error table; see DESIGN.md for why they
// were added / how the gap was resolved.
type Kind int

const (
	// KindUnclosedList: EOF before a matching ')' or ']'.
	KindUnclosedList Kind = iota
	// KindUnclosedLiteral: EOF before '}', or a '}' encountered where
	// an object-literal value was still expected.
	KindUnclosedLiteral
	// KindBadLiteralKey: an object-literal key that is not a Token.
	KindBadLiteralKey
	// KindBadLiteralParent: an @parent{...} parent that does not lex
	// as a token, or is not followed by '{'.
	KindBadLiteralParent
	// KindBadFunctionForm: a '^' modifier placed before a construct
	// that is not a valid body, or a dotted-getter token with an
	// empty segment.
	KindBadFunctionForm
	// KindUnterminatedString: EOF before a string literal's closing
	// '"'. Not named in spec.md's error table, which is silent on
	// this case; added because the string grammar plainly requires a
	// closing quote.
	KindUnterminatedString
)

func (k Kind) String() string {
	switch k {
	case KindUnclosedList:
		return "UnclosedList"
	case KindUnclosedLiteral:
		return "UnclosedLiteral"
	case KindBadLiteralKey:
		return "BadLiteralKey"
	case KindBadLiteralParent:
		return "BadLiteralParent"
	case KindBadFunctionForm:
		return "BadFunctionForm"
	case KindUnterminatedString:
		return "UnterminatedString"
	default:
		return "Unknown"
	}
}

// Position is a 1-based line/column into the source being read.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Error is the single fatal error a Parse can return. Per spec §1/§7
// there is no error recovery: the first malformed construct aborts the
// compilation, so unlike the teacher's batched ErrAsm, reader.Error
// carries exactly one Kind/Position/message.
type Error struct {
	Name string
	Kind Kind
	Pos  Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%s: %s: %s", e.Name, e.Pos, e.Kind, e.Msg)
}
