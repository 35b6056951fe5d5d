// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
)

// ValueKind enumerates the shapes a metadata value can take. The set is
// closed: anything the PDF libraries return that does not fit one of the
// concrete kinds is carried as KindUnsupported.
type ValueKind int

const (
	KindText ValueKind = iota
	KindBytes
	KindInteger
	KindMapping
	KindSequence
	KindSet
	KindUnsupported
)

var kindNames = map[ValueKind]string{
	KindText:        "text",
	KindBytes:       "bytes",
	KindInteger:     "integer",
	KindMapping:     "mapping",
	KindSequence:    "sequence",
	KindSet:         "set",
	KindUnsupported: "unsupported",
}

func (k ValueKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is one metadata value. Only the field matching Kind is meaningful.
type Value struct {
	Kind ValueKind

	Text    string
	Bytes   []byte
	Integer int64

	// Map holds the entries of a KindMapping value.
	Map map[string]Value

	// Items holds the elements of a KindSequence or KindSet value.
	Items []Value

	// Raw is the original Go value behind a KindUnsupported value.
	Raw any
}

func Text(s string) Value       { return Value{Kind: KindText, Text: s} }
func Bytes(b []byte) Value      { return Value{Kind: KindBytes, Bytes: b} }
func Integer(n int64) Value     { return Value{Kind: KindInteger, Integer: n} }
func Sequence(v ...Value) Value { return Value{Kind: KindSequence, Items: v} }
func Set(v ...Value) Value      { return Value{Kind: KindSet, Items: v} }
func Unsupported(raw any) Value { return Value{Kind: KindUnsupported, Raw: raw} }

// Mapping builds a KindMapping value. A nil map yields an empty mapping.
func Mapping(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{Kind: KindMapping, Map: m}
}

// SortedKeys returns the keys of a mapping value in lexical order.
func (v Value) SortedKeys() []string {
	keys := make([]string, 0, len(v.Map))
	for k := range v.Map {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromAny classifies a Go value into the closed kind set. Values of unknown
// type come back as KindUnsupported so callers can apply a fallback.
func FromAny(x any) Value {
	switch t := x.(type) {
	case Value:
		return t
	case string:
		return Text(t)
	case []byte:
		return Bytes(t)
	case int:
		return Integer(int64(t))
	case int8:
		return Integer(int64(t))
	case int16:
		return Integer(int64(t))
	case int32:
		return Integer(int64(t))
	case int64:
		return Integer(t)
	case uint8:
		return Integer(int64(t))
	case uint16:
		return Integer(int64(t))
	case uint32:
		return Integer(int64(t))
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = FromAny(e)
		}
		return Mapping(m)
	case map[string]string:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = Text(e)
		}
		return Mapping(m)
	case map[string]struct{}:
		items := make([]Value, 0, len(t))
		for _, k := range sortedSetKeys(t) {
			items = append(items, Text(k))
		}
		return Set(items...)
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromAny(e)
		}
		return Sequence(items...)
	case []string:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = Text(e)
		}
		return Sequence(items...)
	default:
		return Unsupported(x)
	}
}

func sortedSetKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
