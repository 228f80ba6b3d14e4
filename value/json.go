package value

// ToJSON renders v into a plain map[string]any / []any / scalar shape
// suitable for encoding/json and for querying with github.com/tidwall/gjson
// style paths in tests. Every node carries a "kind" discriminator so
// golden snapshots read unambiguously.
func ToJSON(v Value) any {
	switch t := v.(type) {
	case Token:
		return map[string]any{"kind": "token", "value": string(t)}
	case String:
		return map[string]any{"kind": "string", "value": string(t)}
	case Number:
		return map[string]any{"kind": "number", "value": float64(t)}
	case *Frozen:
		return map[string]any{"kind": "frozen", "inner": ToJSON(t.Inner)}
	case *List:
		children := make([]any, len(t.Children))
		for i, c := range t.Children {
			children[i] = ToJSON(c)
		}
		return map[string]any{
			"kind":         "list",
			"object_mode":  t.ObjectMode,
			"freeze_count": t.FreezeCount,
			"children":     children,
		}
	case *ObjectLiteral:
		entries := make([]any, len(t.Entries))
		for i, e := range t.Entries {
			entries[i] = map[string]any{"key": string(e.Key), "value": ToJSON(e.Val)}
		}
		return map[string]any{
			"kind":    "object_literal",
			"parent":  t.Parent,
			"entries": entries,
		}
	default:
		return map[string]any{"kind": "unknown"}
	}
}
