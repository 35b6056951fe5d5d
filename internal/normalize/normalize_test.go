// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfmeta/pkg/types"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   types.Value
		want types.Value
	}{
		{"text unchanged", types.Text("Alpha"), types.Text("Alpha")},
		{"utf-8 bytes", types.Bytes([]byte("Producer 1.0")), types.Text("Producer 1.0")},
		{"utf-8 bom dropped", types.Bytes([]byte("\xef\xbb\xbfTitle")), types.Text("Title")},
		{"utf-16be bom", types.Bytes([]byte{0xfe, 0xff, 0x00, 0x48, 0x00, 0xe9}), types.Text("Hé")},
		{"utf-16le bom", types.Bytes([]byte{0xff, 0xfe, 0x48, 0x00, 0x69, 0x00}), types.Text("Hi")},
		{"integer", types.Integer(42), types.Text("42")},
		{"negative integer", types.Integer(-7), types.Text("-7")},
		{
			"mapping keeps keys and kind",
			types.Mapping(map[string]types.Value{"n": types.Integer(1), "b": types.Bytes([]byte("x"))}),
			types.Mapping(map[string]types.Value{"n": types.Text("1"), "b": types.Text("x")}),
		},
		{
			"sequence keeps kind",
			types.Sequence(types.Integer(1), types.Bytes([]byte("two"))),
			types.Sequence(types.Text("1"), types.Text("two")),
		},
		{
			"set keeps kind",
			types.Set(types.Text("a"), types.Integer(2)),
			types.Set(types.Text("a"), types.Text("2")),
		},
		{
			"nested containers",
			types.Sequence(types.Mapping(map[string]types.Value{"k": types.Set(types.Integer(9))})),
			types.Sequence(types.Mapping(map[string]types.Value{"k": types.Set(types.Text("9"))})),
		},
		{"unsupported float falls back to text", types.Unsupported(1.5), types.Text("1.5")},
		{"unsupported bool falls back to text", types.Unsupported(true), types.Text("true")},
		{"unsupported nil is empty", types.Unsupported(nil), types.Text("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Value(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueUnsupportedDate(t *testing.T) {
	d := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	got, err := Value(types.FromAny(d))
	require.NoError(t, err)
	assert.Equal(t, types.KindText, got.Kind)
	assert.Equal(t, d.String(), got.Text)
}

func TestValueDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   types.Value
	}{
		{"invalid utf-8", types.Bytes([]byte{0xc3, 0x28})},
		{"odd utf-16 length", types.Bytes([]byte{0xfe, 0xff, 0x00})},
		{"nested in mapping", types.Mapping(map[string]types.Value{"k": types.Bytes([]byte{0xff})})},
		{"nested in sequence", types.Sequence(types.Text("ok"), types.Bytes([]byte{0x80}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Value(tt.in)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		name string
		in   types.Value
		want string
	}{
		{"text", types.Text("plain"), "plain"},
		{"bytes", types.Bytes([]byte("raw")), "raw"},
		{"integer", types.Integer(12), "12"},
		{"sequence", types.Sequence(types.Text("a"), types.Integer(2)), "[a, 2]"},
		{"set", types.Set(types.Text("x"), types.Text("y")), "{x, y}"},
		{
			"mapping sorted by key",
			types.Mapping(map[string]types.Value{"b": types.Integer(2), "a": types.Text("1")}),
			"{a: 1, b: 2}",
		},
		{"empty sequence", types.Sequence(), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cell(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
