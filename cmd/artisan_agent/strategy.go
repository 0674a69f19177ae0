package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Build the integrated strategy document for an artisan",
	Long:  "Generates fresh recommendations, then combines them with the artisan's stored stories and connected social accounts into the cross-platform strategy document.",
	RunE:  runStrategy,
}

var strategyProfileID string

func init() {
	strategyCmd.Flags().StringVarP(&strategyProfileID, "profile", "p", "", "Artisan profile id (required)")

	if err := strategyCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(strategyCmd)
}

func runStrategy(cmd *cobra.Command, _ []string) error {
	ag, closeClient, err := buildAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeClient()

	set, err := ag.Recommend(cmd.Context(), strategyProfileID, nil)
	if err != nil {
		return err
	}

	recs := append(append([]types.ContentRecommendation{}, set.General...), set.Specialized...)

	strategy, err := ag.IntegratedStrategy(strategyProfileID, recs)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintStrategy(strategy)
	}
	return writeJSON(strategy)
}
