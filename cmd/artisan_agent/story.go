package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Compose and store one story for an artisan",
	RunE:  runStory,
}

var (
	storyProfileID    string
	storyTypeName     string
	storyPlatforms    []string
	storyAnalysisFile string
)

func init() {
	storyCmd.Flags().StringVarP(&storyProfileID, "profile", "p", "", "Artisan profile id (required)")
	storyCmd.Flags().StringVarP(&storyTypeName, "type", "t", "behind_scenes", "Story type (origin_story, craft_journey, cultural_heritage, customer_story, behind_scenes, seasonal_story, process_story, inspiration_story)")
	storyCmd.Flags().StringSliceVar(&storyPlatforms, "platforms", []string{"instagram", "facebook"}, "Target platforms")
	storyCmd.Flags().StringVarP(&storyAnalysisFile, "analysis", "a", "", "Path to craft analysis JSON file")

	if err := storyCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(storyCmd)
}

func runStory(cmd *cobra.Command, _ []string) error {
	var analysis *types.CraftAnalysis
	if storyAnalysisFile != "" {
		analysis = &types.CraftAnalysis{}
		if err := readJSONFile(storyAnalysisFile, analysis); err != nil {
			return err
		}
	}

	ag, closeClient, err := buildAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeClient()

	st, err := ag.GenerateStory(cmd.Context(), storyProfileID, types.ParseStoryType(storyTypeName), storyPlatforms, analysis)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintStory(st)
	}
	return writeJSON(st)
}
