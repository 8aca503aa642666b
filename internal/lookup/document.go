package lookup

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Get walks a dotted path through nested documents. It reports false when a
// segment is missing or the value at the end is null.
func Get(doc bson.M, path string) (any, bool) {
	var cur any = doc
	for _, key := range strings.Split(path, ".") {
		next, ok := field(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

func field(v any, key string) (any, bool) {
	switch d := v.(type) {
	case bson.M:
		val, ok := d[key]
		return val, ok
	case map[string]any:
		val, ok := d[key]
		return val, ok
	case bson.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}

// Text resolves path to a display string, falling back to def when the value is
// missing or null. Non-string scalars are rendered as-is.
func Text(doc bson.M, path, def string) string {
	v, ok := Get(doc, path)
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case bson.ObjectID:
		return s.Hex()
	case bson.DateTime:
		return s.Time().UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(s)
	}
}

// Date resolves path to a time in UTC.
func Date(doc bson.M, path string) (time.Time, bool) {
	v, ok := Get(doc, path)
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case bson.DateTime:
		return t.Time().UTC(), true
	case time.Time:
		return t.UTC(), true
	}
	return time.Time{}, false
}

// Document returns the embedded document at path as a map.
func Document(doc bson.M, path string) (bson.M, bool) {
	v, ok := Get(doc, path)
	if !ok {
		return nil, false
	}
	return AsDocument(v)
}

// AsDocument converts any embedded document representation to bson.M.
func AsDocument(v any) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]any:
		return bson.M(d), true
	case bson.D:
		m := make(bson.M, len(d))
		for _, e := range d {
			m[e.Key] = e.Value
		}
		return m, true
	}
	return nil, false
}

// Array returns the array at path.
func Array(doc bson.M, path string) ([]any, bool) {
	v, ok := Get(doc, path)
	if !ok {
		return nil, false
	}
	return asSlice(v)
}

func asSlice(v any) ([]any, bool) {
	switch a := v.(type) {
	case bson.A:
		return a, true
	case []any:
		return a, true
	case []bson.M:
		out := make([]any, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, true
	}
	return nil, false
}

// Unwind emits one copy of each document per element of the array at the
// top-level field, replacing the array with that element. A non-null value that
// is not an array counts as a one-element array. Documents whose field is
// missing, null or an empty array are dropped.
func Unwind(docs []bson.M, fieldName string) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		v := doc[fieldName]
		if v == nil {
			continue
		}
		items, ok := asSlice(v)
		if !ok {
			items = []any{v}
		}
		for _, item := range items {
			row := make(bson.M, len(doc))
			for k, v := range doc {
				row[k] = v
			}
			row[fieldName] = item
			out = append(out, row)
		}
	}
	return out
}

// Key normalizes a reference value into something usable as a map key.
// Numbers compare by value regardless of their BSON width.
func Key(v any) (any, bool) {
	switch k := v.(type) {
	case bson.ObjectID:
		return k, !k.IsZero()
	case string:
		return k, true
	case int32:
		return float64(k), true
	case int64:
		return float64(k), true
	case int:
		return float64(k), true
	case float64:
		return k, true
	case bool:
		return k, true
	}
	return nil, false
}
