// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdfmeta/pkg/types"
)

// maxDepth bounds recursion through nested info values, which may reference
// each other indirectly.
const maxDepth = 8

// Reader is the default backend, built on github.com/ledongthuc/pdf. It
// implements both MetadataExtractor and TextExtractor.
type Reader struct {
	password string
}

// NewReader returns a Reader that offers password to encrypted files.
func NewReader(password string) *Reader {
	return &Reader{password: password}
}

func (r *Reader) Name() string { return string(types.BackendPDF) }

// open parses the PDF at path. The returned file must be closed by the caller.
func (r *Reader) open(path string) (*os.File, *pdf.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening PDF %s: %v", ErrCorrupt, path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: stat %s: %v", ErrCorrupt, path, err)
	}
	doc, err := pdf.NewReaderEncrypted(f, info.Size(), oncePassword(r.password))
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, path, err)
	}
	return f, doc, nil
}

// Metadata returns the trailer's /Info dictionary. Only the latest trailer
// is consulted; earlier incremental-update dictionaries are ignored.
func (r *Reader) Metadata(path string) (rec *types.Record, err error) {
	defer func() {
		if p := recover(); p != nil {
			rec, err = nil, recovered(path, p)
		}
	}()

	f, doc, err := r.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info := doc.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return nil, fmt.Errorf("%w: %s", ErrNoMetadata, path)
	}

	rec = types.NewRecord()
	for _, key := range info.Keys() {
		rec.Set(key, convertValue(info.Key(key), 0))
	}
	return rec, nil
}

// Text concatenates the plain text of every page. Pages whose text cannot be
// decoded are skipped.
func (r *Reader) Text(path string) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text, err = "", recovered(path, p)
		}
	}()

	f, doc, err := r.open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		s, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// convertValue maps a PDF object onto the closed value model. Strings are
// kept as bytes when they are UTF-16 (BOM) or UTF-8 so the normalizer does
// the decoding; other strings are PDFDocEncoding and decoded here.
func convertValue(v pdf.Value, depth int) types.Value {
	if depth > maxDepth {
		return types.Unsupported(v.String())
	}
	switch v.Kind() {
	case pdf.Null:
		return types.Text("")
	case pdf.String:
		raw := v.RawString()
		if hasUTF16BOM(raw) || utf8.ValidString(raw) {
			return types.Bytes([]byte(raw))
		}
		return types.Text(v.Text())
	case pdf.Name:
		return types.Text(v.Name())
	case pdf.Integer:
		return types.Integer(v.Int64())
	case pdf.Real:
		return types.Unsupported(v.Float64())
	case pdf.Bool:
		return types.Unsupported(v.Bool())
	case pdf.Dict:
		m := make(map[string]types.Value, len(v.Keys()))
		for _, k := range v.Keys() {
			m[k] = convertValue(v.Key(k), depth+1)
		}
		return types.Mapping(m)
	case pdf.Array:
		items := make([]types.Value, v.Len())
		for i := range items {
			items[i] = convertValue(v.Index(i), depth+1)
		}
		return types.Sequence(items...)
	default:
		return types.Unsupported(v.String())
	}
}

func hasUTF16BOM(s string) bool {
	return strings.HasPrefix(s, "\xfe\xff") || strings.HasPrefix(s, "\xff\xfe")
}
