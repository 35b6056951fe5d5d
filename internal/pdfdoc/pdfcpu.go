// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdfmeta/pkg/types"
)

// PDFCPU reads document info through pdfcpu's info API. It only implements
// MetadataExtractor.
type PDFCPU struct {
	password string
}

// NewPDFCPU returns a pdfcpu backend that offers password to encrypted files.
func NewPDFCPU(password string) *PDFCPU {
	return &PDFCPU{password: password}
}

func (p *PDFCPU) Name() string { return string(types.BackendPDFCPU) }

// Metadata reads the PDF at path with relaxed validation and maps the info
// fields back onto their raw /Info key names.
func (p *PDFCPU) Metadata(path string) (rec *types.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, err = nil, recovered(path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening PDF %s: %v", ErrCorrupt, path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if p.password != "" {
		conf.UserPW = p.password
	}

	info, err := api.PDFInfo(f, path, nil, conf)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, path, err)
	}

	rec = infoRecord(info)
	if rec.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMetadata, path)
	}
	return rec, nil
}

// infoRecord converts pdfcpu's flattened info into a record. Empty fields
// are treated as absent.
func infoRecord(info *pdfcpu.PDFInfo) *types.Record {
	rec := types.NewRecord()
	for _, f := range []struct {
		key, val string
	}{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
		{"CreationDate", info.CreationDate},
		{"ModDate", info.ModificationDate},
	} {
		if f.val != "" {
			rec.SetText(f.key, f.val)
		}
	}

	if kw := types.FromAny(info.Keywords); !isEmpty(kw) {
		rec.Set("Keywords", kw)
	}

	props := types.FromAny(info.Properties)
	for _, k := range props.SortedKeys() {
		rec.Set(k, props.Map[k])
	}
	return rec
}

func isEmpty(v types.Value) bool {
	switch v.Kind {
	case types.KindText:
		return v.Text == ""
	case types.KindSequence, types.KindSet:
		return len(v.Items) == 0
	case types.KindUnsupported:
		return v.Raw == nil
	}
	return false
}
