// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sidecar reads the download URL stored next to each PDF in a
// same-named text file.
package sidecar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/pdfmeta/pkg/types"
)

const (
	pdfExt = ".pdf"
	txtExt = ".txt"
)

var (
	ErrMissing = errors.New("sidecar file missing")
	ErrEmpty   = errors.New("sidecar file has no URL line")
	ErrDecode  = errors.New("sidecar file not decodable")
)

// Path returns the sidecar path for pdfPath: the trailing ".pdf" replaced
// by ".txt" in the same directory.
func Path(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, pdfExt) + txtExt
}

// Decoder returns the x/text decoder for enc. "utf-16" honours a byte order
// mark and falls back to little-endian.
func Decoder(enc types.SidecarEncoding) (*encoding.Decoder, error) {
	switch strings.ToLower(string(enc)) {
	case "", string(types.EncodingUTF16):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case string(types.EncodingUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), nil
	case string(types.EncodingUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), nil
	case string(types.EncodingUTF8):
		return unicode.UTF8BOM.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported sidecar encoding %q", enc)
	}
}

// ReadURL decodes the first line of the sidecar at path and returns it
// without its line break. The rest of the file is not read.
func ReadURL(path string, enc types.SidecarEncoding) (string, error) {
	dec, err := Decoder(enc)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return "", fmt.Errorf("opening sidecar %s: %w", path, err)
	}
	defer f.Close()

	line, err := firstLine(bufio.NewReader(transform.NewReader(f, dec)))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if line == "" {
		return "", fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return line, nil
}

// firstLine reads up to the first line break. A lone "\r", "\n" or "\r\n"
// all end the line.
func firstLine(r *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
		switch c {
		case '\r', '\n':
			return b.String(), nil
		case utf8.RuneError:
			return "", errors.New("invalid code units")
		}
		b.WriteRune(c)
	}
}
