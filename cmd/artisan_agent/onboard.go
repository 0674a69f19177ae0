package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/agent"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Run the complete onboarding workflow for a new artisan",
	Long:  "Creates the artisan profile, generates general and specialized recommendations, connects social media accounts, optionally composes initial stories, and emits the integrated strategy.",
	RunE:  runOnboard,
}

var onboardInputFile string

func init() {
	onboardCmd.Flags().StringVarP(&onboardInputFile, "in", "i", "", "Path to onboarding input JSON file (required)")

	if err := onboardCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	var in agent.OnboardInput
	if err := readJSONFile(onboardInputFile, &in); err != nil {
		return err
	}

	ag, closeClient, err := buildAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeClient()

	result, err := ag.Onboard(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("onboarding failed: %w", err)
	}

	if flagVerbose {
		printer().PrintRecommendations("General Recommendations", result.Recommendations.General)
		printer().PrintRecommendations("Specialized Recommendations", result.Recommendations.Specialized)
		printer().PrintStrategy(result.Strategy)
	}
	return writeJSON(result)
}
