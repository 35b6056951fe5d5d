// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc reads document-info metadata and plain text from PDF files
// through pluggable library backends.
package pdfdoc

import (
	"errors"
	"fmt"

	"github.com/pdiddy/pdfmeta/pkg/types"
)

var (
	// ErrCorrupt marks a file the backend could not open or parse as a PDF.
	ErrCorrupt = errors.New("unreadable or malformed PDF")

	// ErrNoMetadata marks a well-formed PDF without a document info dictionary.
	ErrNoMetadata = errors.New("no document info dictionary")
)

// MetadataExtractor returns the first document info dictionary of a PDF.
// Backends return errors wrapping ErrCorrupt or ErrNoMetadata.
type MetadataExtractor interface {
	// Name returns the backend name.
	Name() string

	// Metadata reads the PDF at path and returns its info fields.
	Metadata(path string) (*types.Record, error)
}

// TextExtractor returns the plain text content of a PDF.
type TextExtractor interface {
	Text(path string) (string, error)
}

// NewMetadataExtractor builds the metadata backend selected by cfg.
func NewMetadataExtractor(cfg types.ExtractorConfig) (MetadataExtractor, error) {
	switch cfg.Backend {
	case types.BackendPDF, "":
		return NewReader(cfg.Password), nil
	case types.BackendPDFCPU:
		return NewPDFCPU(cfg.Password), nil
	default:
		return nil, fmt.Errorf("unsupported backend %q: use %s or %s", cfg.Backend, types.BackendPDF, types.BackendPDFCPU)
	}
}

// NewTextExtractor builds the text backend selected by cfg. Only the pdf
// backend can extract text.
func NewTextExtractor(cfg types.ExtractorConfig) (TextExtractor, error) {
	switch cfg.Backend {
	case types.BackendPDF, "":
		return NewReader(cfg.Password), nil
	default:
		return nil, fmt.Errorf("backend %q cannot extract text: use %s", cfg.Backend, types.BackendPDF)
	}
}

// recovered converts a library panic into an ErrCorrupt error.
func recovered(path string, r any) error {
	return fmt.Errorf("%w: %s: parser panicked: %v", ErrCorrupt, path, r)
}

// oncePassword returns a password callback that offers pw a single time.
// Callers that loop until the callback returns "" stop after one attempt.
func oncePassword(pw string) func() string {
	offered := false
	return func() string {
		if offered {
			return ""
		}
		offered = true
		return pw
	}
}
