// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists the PDF files of an input directory.
package scan

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// PDFExt is the file extension that marks an input document. The match is
// case-sensitive.
const PDFExt = ".pdf"

// ErrNoRoot is returned when no root directory was configured.
var ErrNoRoot = errors.New("no root directory configured")

// PDFFiles returns the names (not paths) of the regular files in root whose
// name ends with ".pdf", in directory listing order.
func PDFFiles(root string) ([]string, error) {
	if root == "" {
		return nil, ErrNoRoot
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading root directory %s: %w", root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), PDFExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
