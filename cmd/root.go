package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gofsi/internal/config"
	"github.com/alexiusacademia/gofsi/internal/logging"
	"github.com/alexiusacademia/gofsi/internal/version"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Set up in PersistentPreRunE
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gofsi",
	Short: "Fire Safety Inspector's Calculator",
	Long: `gofsi - Go Fire Safety Inspector

A CLI tool for fire safety inspectors. Describe a building by its
occupancy and floors and gofsi determines the fire safety measures
required under the Fire Code of the Philippines (RA 9514) and the
NFPA standards it adopts.

This tool helps inspectors perform:
  - Occupant load and floor area aggregation
  - Requirement selection with sprinkler exemptions
  - Fire flow, egress, fire load and fire pump calculations
  - Hazardous materials fee assessment
  - Code and standard lookup`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("path", path), zap.String("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gofsi v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Fire Safety Inspector                                ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for determining the fire safety requirements of")
		fmt.Fprintln(out, "  a building under RA 9514 and the NFPA standards.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Floor area and occupant load per occupancy type")
		fmt.Fprintln(out, "    • Required fire safety measures with sprinkler exemptions")
		fmt.Fprintln(out, "    • Fire flow, egress, fire load and fire pump calculators")
		fmt.Fprintln(out, "    • Hazardous materials fee assessment")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gofsi --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.gofsi.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// activeConfig returns the loaded config, or defaults when run outside Execute
func activeConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}
