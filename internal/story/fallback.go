package story

import (
	"fmt"
	"strings"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// fallbackStory builds the deterministic raw story used when generation or
// parsing fails. Every requested platform gets a placeholder adaptation.
func fallbackStory(storyType types.StoryType, platforms []string) *types.RawStory {
	fw := FrameworkFor(storyType)
	name := storyType.Humanize()

	adaptations := make(map[string]string, len(platforms))
	for _, platform := range platforms {
		adaptations[platform] = "Platform-optimized content coming soon"
	}

	return &types.RawStory{
		Title: fmt.Sprintf("The Art of %s", name),
		Narrative: fmt.Sprintf(
			"Every craft tells a story, and this %s is no different. Through dedication and skill, our artisan brings tradition to life.",
			strings.ReplaceAll(string(storyType), "_", " ")),
		Hook:                "In the heart of India, tradition meets artistry...",
		CallToAction:        fw.CallToAction,
		EmotionalTone:       fw.EmotionalArc,
		TargetAudience:      "Craft enthusiasts and cultural appreciators",
		KeyMessages:         []string{"Authentic craftsmanship", "Cultural heritage", "Artistic excellence"},
		SupportingAssets:    []string{"process_video", "finished_product_photo"},
		PlatformAdaptations: adaptations,
	}
}
