// Root command for the folio CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/folio/pkg/folio"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataFile  string
	flagJSON      bool
)

// configDataFile holds the data_file value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataFile string

// appLogger carries the store's operational warnings (skipped backups,
// backup write failures) to stderr.
var appLogger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "folio",
	Short:   "Folio manages the portfolio site's content document",
	Version: folio.Version,
	Long: `Folio edits the JSON document that drives the portfolio website:
personal info, about text, skills, projects, contact details, and the
site theme and logo. Every save backs up the previous file into the
backup directory first.

Invocations are one-shot: each command opens the document, applies its
change, and saves. Example:

  folio personal set --name "Ada Lovelace"
  folio skill add --name Sketching --category Traditional --proficiency 90
  folio show`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg := zap.NewDevelopmentConfig()
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if log, err := logCfg.Build(); err == nil {
			appLogger = log
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataFile = cfg.GetString(cfgKeyDataFile)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = appLogger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.folio)")
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "portfolio document path (default: $(CWD)/data/portfolio-data.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(personalCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(expertiseCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(socialCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(logoCmd)
}
