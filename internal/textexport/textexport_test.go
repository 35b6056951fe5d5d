// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textexport

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/pdfmeta/internal/pdfdoc"
	"github.com/pdiddy/pdfmeta/internal/pdftest"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

// fakeText implements pdfdoc.TextExtractor with canned output per file name.
type fakeText struct {
	texts map[string]string
}

func (f *fakeText) Text(path string) (string, error) {
	if s, ok := f.texts[filepath.Base(path)]; ok {
		return s, nil
	}
	return "", errors.New("bad pdf")
}

func setupDirs(t *testing.T) types.TextConfig {
	t.Helper()
	tmp := t.TempDir()
	root := filepath.Join(tmp, "pdfs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	return types.TextConfig{RootDir: root, OutDir: filepath.Join(tmp, "text")}
}

func TestExportDir(t *testing.T) {
	cfg := setupDirs(t)
	for _, n := range []string{"a.pdf", "b.pdf"} {
		pdftest.WriteFile(t, cfg.RootDir, n, []byte("pdf"))
	}
	ext := &fakeText{texts: map[string]string{"a.pdf": "alpha text"}}

	var log bytes.Buffer
	result, err := ExportDir(ext, cfg, &log)
	if err != nil {
		t.Fatal(err)
	}

	if result.Exported != 1 || result.Failed != 1 {
		t.Errorf("result = %+v, want 1 exported, 1 failed", result)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutDir, "a.txt"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "alpha text" {
		t.Errorf("output = %q, want %q", data, "alpha text")
	}
	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("log should contain summary line")
	}
}

func TestExportDirWithReader(t *testing.T) {
	cfg := setupDirs(t)
	pdftest.Write(t, cfg.RootDir, "doc.pdf", pdftest.Doc{Pages: []string{"Hello"}})

	result, err := ExportDir(pdfdoc.NewReader(""), cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Exported != 1 {
		t.Fatalf("exported = %d, want 1", result.Exported)
	}
	data, err := os.ReadFile(filepath.Join(cfg.OutDir, "doc.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Hello") {
		t.Errorf("output %q does not contain page text", data)
	}
}

func TestExportDirRefusesRootAsOutput(t *testing.T) {
	cfg := setupDirs(t)
	cfg.OutDir = cfg.RootDir + string(filepath.Separator)

	_, err := ExportDir(&fakeText{}, cfg, &bytes.Buffer{})
	if !errors.Is(err, ErrSameDir) {
		t.Errorf("err = %v, want ErrSameDir", err)
	}
}

func TestExportDirNoRoot(t *testing.T) {
	_, err := ExportDir(&fakeText{}, types.TextConfig{OutDir: t.TempDir()}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for empty root")
	}
}
