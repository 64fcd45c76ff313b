package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/golash/internal/config"
	"github.com/alexiusacademia/golash/internal/logging"
	"github.com/alexiusacademia/golash/internal/version"
	"github.com/spf13/cobra"
)

var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "golash",
	Short: "Cargo Lashing Restraint Calculator",
	Long: `golash - Go Cargo Lashing Calculator

A CLI tool that checks whether a cargo unit secured to a transport
deck by tensioned lashings will slide under worst-case braking,
acceleration, cornering, slope and wind loading.

This tool helps load planners:
  - Derive longitudinal and lateral design forces (EN 12195-1 coefficients)
  - Check transverse and longitudinal sliding
  - Count the additional lashings needed when restraint is insufficient
  - Resolve lashing forces into 3D vectors for tipping analysis
  - Evaluate batches of cargo configurations in parallel`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configDir); err != nil {
			return err
		}
		level := config.GetString("logLevel")
		if verbose {
			level = "debug"
		}
		logging.Setup(os.Stderr, level, os.Getenv("NO_COLOR") == "")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   golash v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Cargo Lashing Calculator                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for checking cargo lashing arrangements")
		fmt.Println("  against sliding on road transport decks.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Braking, acceleration, cornering, slope and wind design forces")
		fmt.Println("    • Transverse and longitudinal sliding checks")
		fmt.Println("    • Additional lashing count for insufficient arrangements")
		fmt.Println("    • Spherical force vectors for tipping analysis")
		fmt.Println("    • PDF reports, force diagrams and Excel batch summaries")
		fmt.Println()
		fmt.Println("  Use 'golash --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
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

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing golash.yaml and .env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
