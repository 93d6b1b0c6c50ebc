// Package record holds the ordered record model shared by generation,
// masking and rendering.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// TimeLayout is the ISO-8601 form used for timestamps: UTC with milliseconds.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Record is an ordered mapping from field name to value.
// Values are strings or ints in generated data.
type Record struct {
	keys   []string
	values map[string]any
}

// New returns an empty record.
func New() Record {
	return Record{values: make(map[string]any)}
}

// Set stores v under key. An existing key keeps its position.
func (r *Record) Set(key string, v any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in order. The slice is a copy.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Each calls fn for every field in order.
func (r Record) Each(fn func(key string, v any)) {
	for _, k := range r.keys {
		fn(k, r.values[k])
	}
}

// Equal reports whether both records hold the same fields in the same order
// with equal coerced values.
func (r Record) Equal(o Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k {
			return false
		}
		if String(r.values[k]) != String(o.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the record as an object with keys in order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(r.values[k]); err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", k, err)
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keeping key order. Integral numbers
// decode to int, other numbers to float64.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("unmarshal record: expected object, got %v", tok)
	}

	*r = New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("unmarshal record: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unmarshal record: unexpected key %v", tok)
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("unmarshal record: field %q: %w", key, err)
		}
		if n, ok := v.(json.Number); ok {
			v = number(n)
		}
		r.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	return nil
}

func number(n json.Number) any {
	if i, err := strconv.Atoi(n.String()); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// String coerces a field value to its textual form.
//
// Strings are returned as-is, integers in base 10, floats in their shortest
// decimal form, times as UTC ISO-8601 with milliseconds, booleans as
// true/false and nil as the empty string. Anything else goes through
// fmt.Sprint.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format(TimeLayout)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
