// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfmeta CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmeta/internal/secrets"
	"github.com/pdiddy/pdfmeta/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the pdfmeta CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfmeta",
	Short: "Report PDF document metadata and download URLs as CSV",
	Long: `pdfmeta scans a directory of name.pdf / name.txt pairs, reads each PDF's
document info dictionary and the download URL from the first line of its
text sidecar, and writes one flattened CSV row per PDF.

The root directory is configuration: set root_dir in pdfmeta.yaml, the
PDFMETA_ROOT_DIR environment variable, or the --root-dir flag.

Run without a subcommand, pdfmeta behaves like "pdfmeta report".`,
	Args:         cobra.NoArgs,
	RunE:         runReport,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfmeta.yaml or ~/.config/pdfmeta/config.yaml)")
	rootCmd.PersistentFlags().String("root-dir", "", "directory holding the PDF and TXT files")
	rootCmd.PersistentFlags().String("backend", string(types.DefaultBackend), "metadata backend: pdf or pdfcpu")
	rootCmd.PersistentFlags().String("password", "", "user password for encrypted PDFs (default: .secrets/pdf-password)")

	bindFlag(rootCmd, "root_dir", "root-dir", true)
	bindFlag(rootCmd, "backend", "backend", true)
	bindFlag(rootCmd, "password", "password", true)
}

// bindFlag maps a viper key onto a command flag so that flag, environment
// and config file all feed the same setting.
func bindFlag(cmd *cobra.Command, key, flag string, persistent bool) {
	fs := cmd.Flags()
	if persistent {
		fs = cmd.PersistentFlags()
	}
	if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfmeta")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfmeta"))
		}
	}

	viper.SetEnvPrefix("PDFMETA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// extractorConfig collects the backend settings shared by all subcommands.
func extractorConfig() types.ExtractorConfig {
	return types.ExtractorConfig{
		Backend:  types.MetadataBackend(viper.GetString("backend")),
		Password: loadedSecrets.Lookup(secrets.PDFPassword, viper.GetString("password")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
