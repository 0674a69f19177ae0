package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite a stored story toward a sales objective",
	Long:  "Applies a sales-focused rewrite to a stored story and persists the result. The rewrite is best effort: when generation fails the story is returned unchanged.",
	RunE:  runOptimize,
}

var (
	optimizeStoryID       string
	optimizeObjectiveFile string
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeStoryID, "story", "s", "", "Story id (required)")
	optimizeCmd.Flags().StringVarP(&optimizeObjectiveFile, "objective", "o", "", "Path to sales objective JSON file")

	if err := optimizeCmd.MarkFlagRequired("story"); err != nil {
		panic(fmt.Sprintf("failed to mark story flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	var objective types.SalesObjective
	if err := readJSONFile(optimizeObjectiveFile, &objective); err != nil {
		return err
	}

	ag, closeClient, err := buildAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeClient()

	st, err := ag.OptimizeStory(cmd.Context(), optimizeStoryID, objective)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintStory(st)
	}
	return writeJSON(st)
}
