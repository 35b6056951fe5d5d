// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file holds one secret: the file name is the key and the trimmed
// contents are the value.
//
// Known keys: pdf-password (user password offered to encrypted PDFs).
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PDFPassword is the key of the encrypted-PDF password file.
const PDFPassword = "pdf-password"

// Secrets maps key names to values.
type Secrets map[string]string

// Lookup returns explicit when it is non-empty, otherwise the stored value
// for key, otherwise "".
func (s Secrets) Lookup(key, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return s[key]
}

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty set. Unreadable files are reported to warn and skipped.
func Load(dir string, warn io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}
	return out, nil
}
