package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Build the integrated content calendar for an artisan",
	Long:  "Lays fresh recommendations over the coming days (even day indices, cycling) and attaches the artisan's stored stories every third day until the supply runs out.",
	RunE:  runCalendar,
}

var (
	calendarProfileID string
	calendarDays      int
	calendarNoStories bool
)

func init() {
	calendarCmd.Flags().StringVarP(&calendarProfileID, "profile", "p", "", "Artisan profile id (required)")
	calendarCmd.Flags().IntVarP(&calendarDays, "days", "d", 30, "Number of days to plan")
	calendarCmd.Flags().BoolVar(&calendarNoStories, "no-stories", false, "Leave stored stories out of the calendar")

	if err := calendarCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	if calendarDays < 0 {
		return fmt.Errorf("days must be non-negative, got %d", calendarDays)
	}

	ag, closeClient, err := buildAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeClient()

	calendar, err := ag.ContentCalendar(cmd.Context(), calendarProfileID, calendarDays, !calendarNoStories)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintCalendar(calendar)
	}
	return writeJSON(calendar)
}
