// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmeta/internal/pdfdoc"
	"github.com/pdiddy/pdfmeta/internal/textexport"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Extract plain text from every PDF in the root directory",
	Long: `Text writes the plain text of each *.pdf in the root directory to
<out-dir>/<name>.txt. The output directory must differ from the root
directory so URL sidecars are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runText,
}

func init() {
	textCmd.Flags().String("out-dir", "text", "directory for extracted text files")
	bindFlag(textCmd, "text_out_dir", "out-dir", false)

	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	cfg := types.TextConfig{
		ExtractorConfig: extractorConfig(),
		RootDir:         viper.GetString("root_dir"),
		OutDir:          viper.GetString("text_out_dir"),
	}

	ext, err := pdfdoc.NewTextExtractor(cfg.ExtractorConfig)
	if err != nil {
		return err
	}

	result, err := textexport.ExportDir(ext, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed text extraction", result.Failed)
	}
	return nil
}
