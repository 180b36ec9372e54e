package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one flat row: an ordered mapping from column name to a scalar
// value (string, number or nil). Column order is insertion order and is
// what the serializers use to lay out INSERT statements.
type Record struct {
	keys   []string
	values map[string]interface{}
}

func New() *Record {
	return &Record{
		values: make(map[string]interface{}),
	}
}

// Set appends a column if it is new, otherwise overwrites its value.
func (r *Record) Set(key string, value interface{}) *Record {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Keys returns the column names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value for key, or nil when the column is absent.
func (r *Record) Value(key string) interface{} {
	return r.values[key]
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Values returns the row values ordered by the given columns.
func (r *Record) Values(columns []string) []interface{} {
	out := make([]interface{}, len(columns))
	for i, col := range columns {
		out[i] = r.values[col]
	}
	return out
}

// SameShape checks that every record carries exactly the first record's
// column set. Serializers take the schema from the first record, so a
// mismatch anywhere would produce malformed output.
func SameShape(records []*Record) error {
	if len(records) == 0 {
		return nil
	}
	first := records[0]
	for i, rec := range records[1:] {
		if rec.Len() != first.Len() {
			return fmt.Errorf("record %d has %d columns, expected %d", i+1, rec.Len(), first.Len())
		}
		for _, key := range first.keys {
			if _, ok := rec.values[key]; !ok {
				return fmt.Errorf("record %d is missing column %s", i+1, key)
			}
		}
	}
	return nil
}

// MarshalJSON emits the record as a JSON object with keys in insertion
// order and without HTML escaping, so accented text survives as-is.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // drop the newline Encode appends
		buf.WriteByte(':')
		if err := enc.Encode(r.values[key]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
