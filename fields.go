// fields.go — immutable structured attributes for xgx-cause core.
//
// Design:
//   • Internal representation: append-only []Field (deterministic order).
//   • Builders are non-mutating: return NEW slices (no aliasing).
//   • Public view for callers: copy-on-read map[string]any.
//
// Rationale:
//   • Go map iteration order is unspecified; a slice preserves insertion
//     order so Render output stays byte-stable.
//   • Slice append may re-use capacity; "mutation" always allocates a fresh
//     backing array to keep published nodes immutable.
package xgxcause

// Field is a single structured attribute attached to an ErrorValue.
// Keys SHOULD be snake_case; the core does not enforce it.
type Field struct {
	Key string
	Val any
}

// fieldList is the internal immutable attribute representation.
// Treat it as append-only; never modify elements in place once published.
type fieldList []Field

// noFields is the canonical empty attribute list.
var noFields = make(fieldList, 0)

// cloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func cloneAppend(dst fieldList, add ...Field) fieldList {
	n, m := len(dst), len(add)
	if m == 0 {
		if n == 0 {
			return noFields
		}
		out := make(fieldList, n)
		copy(out, dst)
		return out
	}
	out := make(fieldList, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// fieldsFromKV parses variadic key-value arguments into a fieldList.
//
// Rules:
//   • Pairs are read left-to-right as (key, value).
//   • A non-string "key" drops the ENTIRE pair (key and its value) so the
//     remaining pairs stay aligned.
//   • A trailing key with no value becomes (key, nil).
func fieldsFromKV(kv ...any) fieldList {
	if len(kv) == 0 {
		return noFields
	}
	out := make(fieldList, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return noFields
	}
	return out
}

// fieldsToMap builds a NEW map from a fieldList (copy-on-read).
// Later duplicate keys overwrite earlier ones (last-write-wins).
func fieldsToMap(fs fieldList) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
