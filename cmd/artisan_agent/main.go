// Package main provides the entry point for the artisan agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "artisan_agent",
	Short: "AI content agent for local artisans",
	Long:  "Artisan Agent generates content recommendations, marketing stories, and posting calendars for craft artisans, persisting everything as local JSON snapshots.",
}

var (
	flagConfig  string
	flagDataDir string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "Directory holding collection snapshots")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print debug logs")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
