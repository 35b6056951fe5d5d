// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Skip stages, in pipeline order.
const (
	StageMetadata = "metadata"
	StageURL      = "url"
	StageRow      = "row"
)

// SkipEntry describes one file that was dropped or degraded.
type SkipEntry struct {
	File   string `json:"file" yaml:"file"`
	Stage  string `json:"stage" yaml:"stage"`
	Reason string `json:"reason" yaml:"reason"`
}

// SkipReport is written next to the CSV when a skip report path is set.
type SkipReport struct {
	RootDir     string      `json:"root_dir" yaml:"root_dir"`
	GeneratedAt string      `json:"generated_at" yaml:"generated_at"`
	Entries     []SkipEntry `json:"entries" yaml:"entries"`
}

// SkipEntries lists every metadata skip, missing URL and dropped row.
func SkipEntries(batch *Batch, rowErrs []RowError) []SkipEntry {
	var entries []SkipEntry
	for _, r := range batch.Results {
		switch {
		case r.Outcome != OutcomeOK:
			entries = append(entries, SkipEntry{File: r.File, Stage: StageMetadata, Reason: r.Err.Error()})
		case r.URLErr != nil:
			entries = append(entries, SkipEntry{File: r.File, Stage: StageURL, Reason: r.URLErr.Error()})
		}
	}
	for _, e := range rowErrs {
		entries = append(entries, SkipEntry{File: e.File, Stage: StageRow, Reason: e.Err.Error()})
	}
	return entries
}

// WriteSkipReport marshals the entries to YAML at path.
func WriteSkipReport(path, rootDir string, entries []SkipEntry) error {
	rep := SkipReport{
		RootDir:     rootDir,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:     entries,
	}
	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling skip report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
