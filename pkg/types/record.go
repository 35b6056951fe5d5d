// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Synthetic fields added to every record on top of the PDF's own info keys.
const (
	FieldURL     = "URL"
	FieldPDFFile = "PDF File"
)

// Record holds the metadata fields of one PDF file in insertion order.
type Record struct {
	fields map[string]Value
	order  []string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Set stores a field. Re-setting an existing key keeps its original position.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.fields[key]; !ok {
		r.order = append(r.order, key)
	}
	r.fields[key] = v
}

// SetText is shorthand for Set(key, Text(s)).
func (r *Record) SetText(key, s string) {
	r.Set(key, Text(s))
}

// Delete removes key. Deleting an absent key is a no-op.
func (r *Record) Delete(key string) {
	if _, ok := r.fields[key]; !ok {
		return
	}
	delete(r.fields, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Has reports whether key is set.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.order)
}

// File returns the PDF File field as plain text, or "" if absent.
func (r *Record) File() string {
	v, ok := r.fields[FieldPDFFile]
	if !ok || v.Kind != KindText {
		return ""
	}
	return v.Text
}
