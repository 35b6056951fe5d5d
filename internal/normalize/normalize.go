// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts metadata values into text before they are
// written to the report.
package normalize

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/pdiddy/pdfmeta/pkg/types"
)

// ErrDecode is returned for byte strings that are neither UTF-16 with a
// byte order mark nor valid UTF-8.
var ErrDecode = errors.New("cannot decode byte string")

// Value returns v with every byte string decoded and every scalar rendered
// as text. Mappings, sequences and sets keep their kind and have their
// members normalized; mapping keys are untouched. Unsupported values fall
// back to their fmt rendering.
func Value(v types.Value) (types.Value, error) {
	switch v.Kind {
	case types.KindText:
		return v, nil
	case types.KindBytes:
		s, err := DecodeBytes(v.Bytes)
		if err != nil {
			return types.Value{}, err
		}
		return types.Text(s), nil
	case types.KindInteger:
		return types.Text(strconv.FormatInt(v.Integer, 10)), nil
	case types.KindMapping:
		m := make(map[string]types.Value, len(v.Map))
		for k, e := range v.Map {
			n, err := Value(e)
			if err != nil {
				return types.Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = n
		}
		return types.Mapping(m), nil
	case types.KindSequence, types.KindSet:
		items := make([]types.Value, len(v.Items))
		for i, e := range v.Items {
			n, err := Value(e)
			if err != nil {
				return types.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = n
		}
		return types.Value{Kind: v.Kind, Items: items}, nil
	default:
		return types.Text(fallback(v.Raw)), nil
	}
}

// DecodeBytes decodes a byte string to text: UTF-16 when it starts with a
// byte order mark, otherwise UTF-8 (an optional UTF-8 BOM is dropped).
func DecodeBytes(b []byte) (string, error) {
	switch {
	case bytes.HasPrefix(b, []byte{0xfe, 0xff}), bytes.HasPrefix(b, []byte{0xff, 0xfe}):
		if len(b)%2 != 0 {
			return "", fmt.Errorf("%w: odd UTF-16 length %d", ErrDecode, len(b))
		}
		out, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if bytes.ContainsRune(out, utf8.RuneError) {
			return "", fmt.Errorf("%w: invalid UTF-16 code units", ErrDecode)
		}
		return string(out), nil
	case utf8.Valid(b):
		return strings.TrimPrefix(string(b), "\ufeff"), nil
	default:
		return "", fmt.Errorf("%w: invalid UTF-8", ErrDecode)
	}
}

// Cell normalizes v and renders it as a single CSV cell. Containers render
// as {k: v, ...} for mappings (sorted by key), [a, b] for sequences and
// {a, b} for sets.
func Cell(v types.Value) (string, error) {
	n, err := Value(v)
	if err != nil {
		return "", err
	}
	return render(n), nil
}

func render(v types.Value) string {
	switch v.Kind {
	case types.KindMapping:
		parts := make([]string, 0, len(v.Map))
		for _, k := range v.SortedKeys() {
			parts = append(parts, k+": "+render(v.Map[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case types.KindSequence:
		return "[" + joinItems(v.Items) + "]"
	case types.KindSet:
		return "{" + joinItems(v.Items) + "}"
	default:
		return v.Text
	}
}

func joinItems(items []types.Value) string {
	parts := make([]string, len(items))
	for i, e := range items {
		parts[i] = render(e)
	}
	return strings.Join(parts, ", ")
}

func fallback(raw any) string {
	if raw == nil {
		return ""
	}
	return fmt.Sprint(raw)
}
