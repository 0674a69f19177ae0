package strategy

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// BuildCalendar lays base recommendations and stored stories onto a
// consecutive run of days starting at start. Recommendations land on even day
// indices, cycling through the base list; stories land on every third day in
// order until the supply runs out. Each day also carries flattened post
// suggestions, recommendations first.
func BuildCalendar(start time.Time, days int, base []types.ContentRecommendation, stories []*types.StoryContent) map[string]types.CalendarDay {
	calendar := make(map[string]types.CalendarDay, max(days, 0))
	storyIndex := 0

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		day := types.CalendarDay{Date: date}

		if i%2 == 0 && len(base) > 0 {
			day.Recommendations = []types.ContentRecommendation{base[i%len(base)]}
		}

		if i%3 == 0 && storyIndex < len(stories) {
			story := stories[storyIndex]
			day.Story = &types.StoryRef{
				StoryID:   story.StoryID,
				StoryType: story.StoryType,
				Title:     story.Title,
				Platforms: adaptationPlatforms(story),
			}
			storyIndex++
		}

		day.SuggestedPosts = dailyPostSuggestions(day.Recommendations, day.Story)
		calendar[date] = day
	}

	log.Info().Int("days", days).Int("stories_placed", storyIndex).
		Msg("built content calendar")
	return calendar
}

// dailyPostSuggestions flattens a day's recommendations and story into post
// suggestions, recommendations first.
func dailyPostSuggestions(recs []types.ContentRecommendation, story *types.StoryRef) []types.PostSuggestion {
	suggestions := make([]types.PostSuggestion, 0, len(recs)+1)

	for _, rec := range recs {
		title := rec.TitleSuggestion
		if title == "" {
			title = "Content Post"
		}
		desc := rec.Description
		if desc == "" {
			desc = "Regular content post"
		}
		platforms := rec.TargetPlatforms
		if len(platforms) == 0 {
			platforms = []string{"instagram"}
		}
		suggestions = append(suggestions, types.PostSuggestion{
			Kind:        "content_recommendation",
			Title:       title,
			Description: desc,
			Platforms:   platforms,
		})
	}

	if story != nil {
		title := story.Title
		if title == "" {
			title = "Story Post"
		}
		platforms := story.Platforms
		if len(platforms) == 0 {
			platforms = []string{"instagram", "facebook"}
		}
		suggestions = append(suggestions, types.PostSuggestion{
			Kind:        "story_content",
			Title:       title,
			Description: "Storytelling content for audience engagement",
			Platforms:   platforms,
		})
	}

	return suggestions
}

// adaptationPlatforms lists the platforms a story has adaptations for, in
// stable order.
func adaptationPlatforms(story *types.StoryContent) []string {
	platforms := make([]string, 0, len(story.PlatformAdaptations))
	for platform := range story.PlatformAdaptations {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	return platforms
}
