// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report builds the flattened CSV metadata report for a directory
// of PDF files and their URL sidecars.
package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/pdfmeta/internal/pdfdoc"
	"github.com/pdiddy/pdfmeta/internal/scan"
	"github.com/pdiddy/pdfmeta/internal/schema"
	"github.com/pdiddy/pdfmeta/internal/sidecar"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

// Outcome is the per-file result of metadata extraction.
type Outcome string

const (
	OutcomeOK              Outcome = "ok"
	OutcomeMissingMetadata Outcome = "missing-metadata"
	OutcomeCorrupt         Outcome = "corrupt"
)

// FileResult records what happened to one PDF file. Record is set only for
// OutcomeOK. URLErr is set when the sidecar could not supply a URL; the
// record is kept in that case.
type FileResult struct {
	File    string
	Outcome Outcome
	Record  *types.Record
	Err     error
	URLErr  error
}

// Batch is the in-memory result of scanning a directory.
type Batch struct {
	Header  *schema.Header
	Records []*types.Record
	Results []FileResult
}

// Skipped returns the results whose file contributed no record.
func (b *Batch) Skipped() []FileResult {
	var out []FileResult
	for _, r := range b.Results {
		if r.Outcome != OutcomeOK {
			out = append(out, r)
		}
	}
	return out
}

// Collect scans cfg.RootDir, extracts metadata for every PDF, attaches the
// sidecar URL and merges the keys into the header. A failing file is
// recorded and skipped; only an unreadable root directory aborts.
func Collect(ext pdfdoc.MetadataExtractor, cfg types.ReportConfig, w io.Writer) (*Batch, error) {
	names, err := scan.PDFFiles(cfg.RootDir)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Header: schema.NewHeader()}
	for _, name := range names {
		res := CollectFile(ext, cfg, name)
		batch.Results = append(batch.Results, res)

		switch res.Outcome {
		case OutcomeOK:
			batch.Header.Merge(res.Record)
			batch.Records = append(batch.Records, res.Record)
			if res.URLErr != nil {
				fmt.Fprintf(w, "added:   %s (no URL: %v)\n", name, res.URLErr)
			} else {
				fmt.Fprintf(w, "added:   %s\n", name)
			}
		case OutcomeMissingMetadata:
			fmt.Fprintf(w, "skipped: %s (no metadata)\n", name)
		default:
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, res.Err)
		}
	}
	return batch, nil
}

// CollectFile processes one PDF named name inside cfg.RootDir.
func CollectFile(ext pdfdoc.MetadataExtractor, cfg types.ReportConfig, name string) FileResult {
	path := filepath.Join(cfg.RootDir, name)
	res := FileResult{File: name}

	rec, err := ext.Metadata(path)
	if err != nil {
		res.Err = err
		res.Outcome = OutcomeCorrupt
		if errors.Is(err, pdfdoc.ErrNoMetadata) {
			res.Outcome = OutcomeMissingMetadata
		}
		return res
	}
	rec.SetText(types.FieldPDFFile, name)
	// URL comes from the sidecar only; an embedded /Info URL never fills it.
	rec.Delete(types.FieldURL)

	url, err := sidecar.ReadURL(sidecar.Path(path), cfg.SidecarEncoding)
	if err != nil {
		res.URLErr = err
	} else {
		rec.SetText(types.FieldURL, url)
	}

	res.Outcome = OutcomeOK
	res.Record = rec
	return res
}
