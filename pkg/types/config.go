// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MetadataBackend identifies the PDF library used to read document info.
type MetadataBackend string

const (
	BackendPDF    MetadataBackend = "pdf"
	BackendPDFCPU MetadataBackend = "pdfcpu"
)

// SidecarEncoding names the text encoding of the URL sidecar files.
type SidecarEncoding string

const (
	EncodingUTF16   SidecarEncoding = "utf-16"
	EncodingUTF16LE SidecarEncoding = "utf-16le"
	EncodingUTF16BE SidecarEncoding = "utf-16be"
	EncodingUTF8    SidecarEncoding = "utf-8"
)

// Defaults applied when a config value is left empty.
const (
	DefaultOutputPath = "pdf_report.csv"
	DefaultBackend    = BackendPDF
	DefaultEncoding   = EncodingUTF16
)

// ExtractorConfig holds settings for the PDF metadata and text backends.
type ExtractorConfig struct {
	// Backend selects the PDF library: pdf (ledongthuc/pdf) or pdfcpu.
	Backend MetadataBackend `json:"backend" yaml:"backend"`

	// Password is offered once when a PDF is encrypted.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	ExtractorConfig `yaml:",inline"`

	// RootDir is the directory holding the name.pdf / name.txt pairs.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// OutputPath is where the CSV report is written (default pdf_report.csv).
	OutputPath string `json:"output" yaml:"output"`

	// SidecarEncoding is the encoding of the URL sidecar files (default utf-16).
	SidecarEncoding SidecarEncoding `json:"sidecar_encoding" yaml:"sidecar_encoding"`

	// SkipReportPath, when set, receives a YAML list of skipped files and rows.
	SkipReportPath string `json:"skip_report,omitempty" yaml:"skip_report,omitempty"`

	// SQLitePath, when set, receives a copy of the report as a SQLite database.
	SQLitePath string `json:"sqlite,omitempty" yaml:"sqlite,omitempty"`
}

// WithDefaults returns a copy of cfg with empty fields filled in.
func (cfg ReportConfig) WithDefaults() ReportConfig {
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}
	if cfg.SidecarEncoding == "" {
		cfg.SidecarEncoding = DefaultEncoding
	}
	return cfg
}

// TextConfig holds settings for the plain-text export.
type TextConfig struct {
	ExtractorConfig `yaml:",inline"`

	// RootDir is the directory scanned for PDF files.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// OutDir receives one name.txt file per PDF. It must differ from RootDir.
	OutDir string `json:"out_dir" yaml:"out_dir"`
}
