package value

import (
	"fmt"
	"io"
	"strconv"
)

// Dump writes an indented textual rendering of v to w, for debugging and
// golden tests. Adapted from the disassembly-dump idiom (one dumpX
// helper per shape, writing directly to an io.Writer and propagating the
// first error), repurposed here for AST pretty-printing rather than VM
// bytecode disassembly.
func Dump(w io.Writer, v Value) error {
	return dump(w, v, 0)
}

func indent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, "  "); err != nil {
			return err
		}
	}
	return nil
}

func dump(w io.Writer, v Value, depth int) error {
	if err := indent(w, depth); err != nil {
		return err
	}
	switch t := v.(type) {
	case Token:
		_, err := fmt.Fprintf(w, "Token(%s)\n", string(t))
		return err
	case String:
		_, err := fmt.Fprintf(w, "String(%q)\n", []byte(t))
		return err
	case Number:
		_, err := io.WriteString(w, "Number("+strconv.FormatFloat(float64(t), 'g', -1, 64)+")\n")
		return err
	case *Frozen:
		if _, err := io.WriteString(w, "Frozen(\n"); err != nil {
			return err
		}
		if err := dump(w, t.Inner, depth+1); err != nil {
			return err
		}
		return indentWrite(w, depth, ")\n")
	case *List:
		if _, err := fmt.Fprintf(w, "List(object_mode=%v freeze_count=%d len=%d\n", t.ObjectMode, t.FreezeCount, len(t.Children)); err != nil {
			return err
		}
		for _, c := range t.Children {
			if err := dump(w, c, depth+1); err != nil {
				return err
			}
		}
		return indentWrite(w, depth, ")\n")
	case *ObjectLiteral:
		parent := t.Parent
		if parent == "" {
			parent = "<none>"
		}
		if _, err := fmt.Fprintf(w, "ObjectLiteral(parent=%s len=%d\n", parent, len(t.Entries)); err != nil {
			return err
		}
		for _, e := range t.Entries {
			if err := indentWrite(w, depth+1, string(e.Key)+":\n"); err != nil {
				return err
			}
			if err := dump(w, e.Val, depth+2); err != nil {
				return err
			}
		}
		return indentWrite(w, depth, ")\n")
	default:
		return fmt.Errorf("value: Dump: unhandled Value type %T", v)
	}
}

func indentWrite(w io.Writer, depth int, s string) error {
	if err := indent(w, depth); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
