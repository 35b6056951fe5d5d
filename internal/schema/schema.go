// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema unifies the field names of many metadata records into one
// report header.
package schema

import "github.com/pdiddy/pdfmeta/pkg/types"

// Header is an ordered set of field names. It always starts with URL and
// PDF File; every other key follows in the order it was first merged.
type Header struct {
	keys  []string
	count map[string]int
}

// NewHeader returns a header seeded with the synthetic fields.
func NewHeader() *Header {
	h := &Header{count: make(map[string]int)}
	h.add(types.FieldURL)
	h.add(types.FieldPDFFile)
	return h
}

func (h *Header) add(key string) {
	if _, ok := h.count[key]; ok {
		return
	}
	h.count[key] = 0
	h.keys = append(h.keys, key)
}

// Merge adds the record's keys and counts one observation for each.
func (h *Header) Merge(rec *types.Record) {
	for _, k := range rec.Keys() {
		h.add(k)
		h.count[k]++
	}
}

// Keys returns the header in column order.
func (h *Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of columns.
func (h *Header) Len() int { return len(h.keys) }

// Count returns how many merged records carried key.
func (h *Header) Count(key string) int { return h.count[key] }
