package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	cfgpkg "github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "olympics-effect",
	Short: "Quantify the Olympic hosting effect from national indicator data",
	Long: `olympics-effect compares economic, social, and environmental indicators
around the Sydney 2000 and Beijing 2008 Games. It aligns each country's
time series on a host-year-relative axis, derives growth rates, and
computes Pearson correlation matrices per indicator group.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.olympics-effect/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	// A .env in the working directory may set OLYMPICS_* variables.
	_ = godotenv.Load()
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// requireConfig returns the loaded configuration or the built-in defaults
// when loading failed.
func requireConfig() *cfgpkg.Config {
	if cfg != nil {
		return cfg
	}
	return cfgpkg.Default()
}
