package strategy

import (
	"fmt"
	"strings"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// FallbackRecommendations builds deterministic recommendations purely from
// the knowledge base. It is invoked whenever the generative call or its
// parsing fails, has no external dependency, and always returns a non-empty,
// structurally valid result.
func FallbackRecommendations(profile *types.ArtisanProfile) []types.ContentRecommendation {
	craft := profile.Specialization
	level := knowledge.SkillLevelFor(profile.ExperienceYears)
	tags := UnionHashtags(nil, knowledge.Hashtags(craft, level))
	postingTime := knowledge.OptimalPostingTime(craft)
	craftTitle := titleCase(string(craft))

	return []types.ContentRecommendation{
		{
			ContentType:     types.ContentProcessVideo,
			TitleSuggestion: fmt.Sprintf("Creating Beautiful %s - Behind the Scenes", craftTitle),
			Description:     "Show your craft creation process to engage viewers",
			BestTimeToPost:  postingTime,
			Hashtags:        tags,
			TargetPlatforms: []string{"instagram", "youtube"},
			PriorityScore:   0.9,
			Reasoning:       "Process videos are highly engaging for craft content",
		},
		{
			ContentType:     types.ContentFinishedProduct,
			TitleSuggestion: fmt.Sprintf("Latest %s Creation", craftTitle),
			Description:     "Showcase your finished masterpiece",
			BestTimeToPost:  postingTime,
			Hashtags:        tags,
			TargetPlatforms: []string{"instagram", "facebook"},
			PriorityScore:   0.8,
			Reasoning:       "Finished product photos drive sales interest",
		},
	}
}

// titleCase uppercases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
