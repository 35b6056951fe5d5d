// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmeta/internal/pdfdoc"
	"github.com/pdiddy/pdfmeta/internal/report"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the PDF metadata CSV report",
	Long: `Report reads every *.pdf in the root directory, takes the first document
info dictionary of each, adds the PDF File name and the URL from the
same-named .txt sidecar (UTF-16 by default), and writes one CSV row per PDF.

Files that cannot be parsed are skipped and listed as warnings; a missing
sidecar only leaves the URL column empty. The command exits 0 whatever was
skipped.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("output", types.DefaultOutputPath, "CSV report path")
	reportCmd.Flags().String("sidecar-encoding", string(types.DefaultEncoding), "sidecar encoding: utf-16, utf-16le, utf-16be or utf-8")
	reportCmd.Flags().String("skip-report", "", "write skipped files and reasons to this YAML file")
	reportCmd.Flags().String("sqlite", "", "also export the report to this SQLite database")

	bindFlag(reportCmd, "output", "output", false)
	bindFlag(reportCmd, "sidecar_encoding", "sidecar-encoding", false)
	bindFlag(reportCmd, "skip_report", "skip-report", false)
	bindFlag(reportCmd, "sqlite", "sqlite", false)

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := types.ReportConfig{
		ExtractorConfig: extractorConfig(),
		RootDir:         viper.GetString("root_dir"),
		OutputPath:      viper.GetString("output"),
		SidecarEncoding: types.SidecarEncoding(viper.GetString("sidecar_encoding")),
		SkipReportPath:  viper.GetString("skip_report"),
		SQLitePath:      viper.GetString("sqlite"),
	}

	ext, err := pdfdoc.NewMetadataExtractor(cfg.ExtractorConfig)
	if err != nil {
		return err
	}

	_, err = report.Run(ext, cfg, os.Stdout)
	return err
}
