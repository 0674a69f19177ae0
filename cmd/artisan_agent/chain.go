package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Generate the five-story marketing chain for an artisan",
	Long:  "Composes the fixed awareness-to-conversion story sequence (behind the scenes, process, cultural heritage, customer, origin), optionally rewriting each story toward a sales objective, and stores every story.",
	RunE:  runChain,
}

var (
	chainProfileID     string
	chainAnalysisFile  string
	chainObjectiveFile string
)

func init() {
	chainCmd.Flags().StringVarP(&chainProfileID, "profile", "p", "", "Artisan profile id (required)")
	chainCmd.Flags().StringVarP(&chainAnalysisFile, "analysis", "a", "", "Path to craft analysis JSON file")
	chainCmd.Flags().StringVarP(&chainObjectiveFile, "objective", "s", "", "Path to sales objective JSON file")

	if err := chainCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(chainCmd)
}

func runChain(cmd *cobra.Command, _ []string) error {
	var analysis *types.CraftAnalysis
	if chainAnalysisFile != "" {
		analysis = &types.CraftAnalysis{}
		if err := readJSONFile(chainAnalysisFile, analysis); err != nil {
			return err
		}
	}

	var objective *types.SalesObjective
	if chainObjectiveFile != "" {
		objective = &types.SalesObjective{}
		if err := readJSONFile(chainObjectiveFile, objective); err != nil {
			return err
		}
	}

	ag, closeClient, err := buildAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeClient()

	ids, err := ag.GenerateStoryChain(cmd.Context(), chainProfileID, analysis, objective)
	if err != nil {
		return err
	}

	return writeJSON(map[string][]string{"story_ids": ids})
}
