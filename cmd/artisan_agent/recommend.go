package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate content recommendations for a stored artisan",
	Long:  "Runs both the general strategist and the craft-specialized engine for a stored profile, optionally seeded with a craft analysis JSON file.",
	RunE:  runRecommend,
}

var (
	recommendProfileID    string
	recommendAnalysisFile string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfileID, "profile", "p", "", "Artisan profile id (required)")
	recommendCmd.Flags().StringVarP(&recommendAnalysisFile, "analysis", "a", "", "Path to craft analysis JSON file")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	var analysis *types.CraftAnalysis
	if recommendAnalysisFile != "" {
		analysis = &types.CraftAnalysis{}
		if err := readJSONFile(recommendAnalysisFile, analysis); err != nil {
			return err
		}
	}

	ag, closeClient, err := buildAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeClient()

	set, err := ag.Recommend(cmd.Context(), recommendProfileID, analysis)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintRecommendations("General Recommendations", set.General)
		printer().PrintRecommendations("Specialized Recommendations", set.Specialized)
	}
	return writeJSON(set)
}
