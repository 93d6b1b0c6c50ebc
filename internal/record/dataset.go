package record

import (
	"encoding/json"
	"fmt"
)

// Dataset is an ordered sequence of records.
type Dataset []Record

// Uniform reports whether every record carries the same keys in the same
// order as the first one.
func (d Dataset) Uniform() bool {
	if len(d) == 0 {
		return true
	}
	want := d[0].keys
	for _, r := range d[1:] {
		if len(r.keys) != len(want) {
			return false
		}
		for i, k := range r.keys {
			if want[i] != k {
				return false
			}
		}
	}
	return true
}

// Header returns the first record's keys, or nil for an empty dataset.
func (d Dataset) Header() []string {
	if len(d) == 0 {
		return nil
	}
	return d[0].Keys()
}

// Equal reports whether both datasets hold equal records in order.
func (d Dataset) Equal(o Dataset) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if !d[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes an array of ordered records.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal dataset: %w", err)
	}

	out := make(Dataset, len(raw))
	for i, m := range raw {
		if err := out[i].UnmarshalJSON(m); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	*d = out
	return nil
}
