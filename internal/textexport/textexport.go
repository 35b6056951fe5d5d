// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textexport writes the plain text of every PDF in a directory to a
// separate output directory.
package textexport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfmeta/internal/pdfdoc"
	"github.com/pdiddy/pdfmeta/internal/scan"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

// ErrSameDir is returned when the output directory is the input directory;
// writing there would overwrite the URL sidecars.
var ErrSameDir = errors.New("output directory must differ from the root directory")

// BatchResult holds the outcome of a text export run.
type BatchResult struct {
	Exported int
	Failed   int
}

// Total returns the number of PDF files processed.
func (r BatchResult) Total() int {
	return r.Exported + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ExportDir extracts text from every PDF under cfg.RootDir into
// cfg.OutDir/<name>.txt, printing per-file status to w.
func ExportDir(ext pdfdoc.TextExtractor, cfg types.TextConfig, w io.Writer) (BatchResult, error) {
	if err := checkDirs(cfg.RootDir, cfg.OutDir); err != nil {
		return BatchResult{}, err
	}

	names, err := scan.PDFFiles(cfg.RootDir)
	if err != nil {
		return BatchResult{}, err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating %s: %w", cfg.OutDir, err)
	}

	var result BatchResult
	for _, name := range names {
		if err := exportFile(ext, cfg, name); err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", name, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "exported: %s\n", name)
		result.Exported++
	}

	fmt.Fprintf(w, "\nBatch summary: %d exported, %d failed (total: %d)\n",
		result.Exported, result.Failed, result.Total())
	return result, nil
}

func exportFile(ext pdfdoc.TextExtractor, cfg types.TextConfig, name string) error {
	text, err := ext.Text(filepath.Join(cfg.RootDir, name))
	if err != nil {
		return err
	}
	out := filepath.Join(cfg.OutDir, strings.TrimSuffix(name, scan.PDFExt)+".txt")
	return os.WriteFile(out, []byte(text), 0o644)
}

func checkDirs(root, out string) error {
	if root == "" {
		return scan.ErrNoRoot
	}
	if out == "" {
		return fmt.Errorf("no output directory configured")
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", out, err)
	}
	if absRoot == absOut {
		return ErrSameDir
	}
	return nil
}
