package main

import (
	"github.com/spf13/cobra"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List stored artisan profiles",
	RunE:  runProfiles,
}

var (
	profilesCraft    string
	profilesLocation string
	profilesStats    bool
)

func init() {
	profilesCmd.Flags().StringVar(&profilesCraft, "craft", "", "Filter ids by craft type")
	profilesCmd.Flags().StringVar(&profilesLocation, "location", "", "Filter ids by location substring")
	profilesCmd.Flags().BoolVar(&profilesStats, "stats", false, "Show craft and experience distributions")

	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	switch {
	case profilesCraft != "":
		return writeJSON(st.FindProfilesByCraft(types.ParseCraftType(profilesCraft)))
	case profilesLocation != "":
		return writeJSON(st.FindProfilesByLocation(profilesLocation))
	case profilesStats:
		return writeJSON(map[string]map[string]int{
			"craft_statistics":        st.CraftStatistics(),
			"experience_distribution": st.ExperienceDistribution(),
		})
	default:
		profiles := st.ListProfiles()
		if flagVerbose {
			printer().PrintProfiles(profiles)
		}
		return writeJSON(profiles)
	}
}
