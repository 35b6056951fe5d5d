// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pdiddy/pdfmeta/internal/normalize"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

// Row is one rendered report line.
type Row struct {
	File  string
	Cells []string
}

// RowError records a record that could not be rendered.
type RowError struct {
	File string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %s: %v", e.File, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// RenderRow renders rec against header. Keys the record lacks become empty
// cells.
func RenderRow(header []string, rec *types.Record) (Row, error) {
	cells := make([]string, len(header))
	for i, key := range header {
		v, ok := rec.Get(key)
		if !ok {
			continue
		}
		cell, err := normalize.Cell(v)
		if err != nil {
			return Row{}, fmt.Errorf("field %q: %w", key, err)
		}
		cells[i] = cell
	}
	return Row{File: rec.File(), Cells: cells}, nil
}

// RenderRows renders every record. A record that fails is left out and
// reported; the others are still rendered.
func RenderRows(header []string, records []*types.Record) ([]Row, []RowError) {
	var rows []Row
	var errs []RowError
	for _, rec := range records {
		row, err := RenderRow(header, rec)
		if err != nil {
			errs = append(errs, RowError{File: rec.File(), Err: err})
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs
}

// WriteCSV writes the header line followed by one line per row.
func WriteCSV(out io.Writer, header []string, rows []Row) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Cells); err != nil {
			return fmt.Errorf("writing row %s: %w", row.File, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
