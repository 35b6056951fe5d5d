// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pdfmeta/internal/pdfdoc"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

// Messages printed by Run.
const (
	MsgNoRoot   = "You must specify a directory to scan the PDF files."
	MsgBuilding = "...Building report..."
)

// Summary holds counts from one report run.
type Summary struct {
	Rows            int
	MissingMetadata int
	Corrupt         int
	MissingURL      int
	RowErrors       int
}

// Files returns the number of PDF files seen.
func (s Summary) Files() int {
	return s.Rows + s.RowErrors + s.MissingMetadata + s.Corrupt
}

// HasSkips reports whether any file was dropped or lacked a URL.
func (s Summary) HasSkips() bool {
	return s.MissingMetadata+s.Corrupt+s.MissingURL+s.RowErrors > 0
}

// Run builds the report described by cfg. With no root directory it prints
// a notice and does nothing. Per-file problems are listed as warnings and
// never fail the run; only an unreadable root or an unwritable output does.
func Run(ext pdfdoc.MetadataExtractor, cfg types.ReportConfig, w io.Writer) (Summary, error) {
	cfg = cfg.WithDefaults()
	if cfg.RootDir == "" {
		fmt.Fprintln(w, MsgNoRoot)
		return Summary{}, nil
	}
	fmt.Fprintln(w, MsgBuilding)

	batch, err := Collect(ext, cfg, w)
	if err != nil {
		return Summary{}, err
	}

	header := batch.Header.Keys()
	rows, rowErrs := RenderRows(header, batch.Records)

	if err := writeReportFile(cfg.OutputPath, header, rows); err != nil {
		return Summary{}, err
	}

	summary := summarize(batch, rows, rowErrs)
	entries := SkipEntries(batch, rowErrs)
	for _, e := range entries {
		fmt.Fprintf(w, "warning: %s %s: %s\n", e.Stage, e.File, e.Reason)
	}

	if cfg.SkipReportPath != "" {
		if err := WriteSkipReport(cfg.SkipReportPath, cfg.RootDir, entries); err != nil {
			fmt.Fprintf(w, "warning: skip report write failed: %v\n", err)
		}
	}
	if cfg.SQLitePath != "" {
		if err := ExportSQLite(context.Background(), cfg.SQLitePath, header, rows); err != nil {
			fmt.Fprintf(w, "warning: sqlite export failed: %v\n", err)
		}
	}

	fmt.Fprintf(w, "\nReport summary: %d rows, %d without metadata, %d failed, %d without URL, %d rows dropped (files: %d)\n",
		summary.Rows, summary.MissingMetadata, summary.Corrupt, summary.MissingURL, summary.RowErrors, summary.Files())
	fmt.Fprintf(w, "Wrote %s\n", cfg.OutputPath)
	return summary, nil
}

func writeReportFile(path string, header []string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	if err := WriteCSV(f, header, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report %s: %w", path, err)
	}
	return nil
}

func summarize(batch *Batch, rows []Row, rowErrs []RowError) Summary {
	s := Summary{Rows: len(rows), RowErrors: len(rowErrs)}
	for _, r := range batch.Results {
		switch r.Outcome {
		case OutcomeMissingMetadata:
			s.MissingMetadata++
		case OutcomeCorrupt:
			s.Corrupt++
		case OutcomeOK:
			if r.URLErr != nil {
				s.MissingURL++
			}
		}
	}
	return s
}
