// Package cdata converts game data tables between JSON records and the
// fixed-format C initializer text used by the decompilation build.
package cdata

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value represents any record field value: int, float64, bool, string,
// List, *Record or nil.
type Value any

// List represents an ordered list of values.
type List []Value

// Record is an insertion-ordered mapping from field name to value.
// A whole table is a Record keyed by record key.
type Record struct {
	fields *orderedmap.OrderedMap[string, Value]
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, Value]()}
}

// Set stores v under name. A new name is appended, an existing one keeps
// its position.
func (r *Record) Set(name string, v Value) {
	if r.fields == nil {
		r.fields = orderedmap.New[string, Value]()
	}
	r.fields.Set(name, v)
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}
	return r.fields.Get(name)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// IsNull reports whether r is the all-zero placeholder record.
func (r *Record) IsNull() bool {
	return r.Len() == 0
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	if r.Len() == 0 {
		return keys
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every field in insertion order and stops at the first error.
func (r *Record) Each(fn func(name string, v Value) error) error {
	if r.Len() == 0 {
		return nil
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || r.fields == nil {
		return []byte("{}"), nil
	}
	return r.fields.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object keeping the order of its keys,
// nested objects included.
func (r *Record) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeRecord(data)
	if err != nil {
		return err
	}
	r.fields = decoded.fields
	return nil
}

// MarshalIndent encodes v the way table documents are written to disk.
func MarshalIndent(v Value) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}
