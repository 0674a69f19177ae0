package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// chainStage pairs a story archetype with the platforms it targets in the
// marketing funnel.
type chainStage struct {
	storyType types.StoryType
	platforms []string
}

// chainSequence is the fixed awareness-to-conversion funnel order.
var chainSequence = [types.ChainLength]chainStage{
	{types.StoryBehindScenes, []string{"instagram", "facebook"}},
	{types.StoryProcess, []string{"youtube", "instagram"}},
	{types.StoryCulturalHeritage, []string{"facebook", "pinterest"}},
	{types.StoryCustomer, []string{"instagram", "facebook"}},
	{types.StoryOrigin, []string{"youtube", "facebook"}},
}

// ComposeChain generates the five-story marketing chain. Individual stage
// failures are absorbed by the per-story fallback, so the chain always comes
// back complete and in order.
func (c *Composer) ComposeChain(ctx context.Context, profile *types.ArtisanProfile, profileID string, analysis *types.CraftAnalysis, recs []types.ContentRecommendation) *types.MarketingStoryChain {
	marketing := marketingContext(recs)

	chain := &types.MarketingStoryChain{
		Stories: make([]types.StoryContent, 0, types.ChainLength),
	}
	for i, stage := range chainSequence {
		story := c.Compose(ctx, ComposeInput{
			Profile:          profile,
			ProfileID:        profileID,
			Analysis:         analysis,
			StoryType:        stage.storyType,
			Platforms:        stage.platforms,
			MarketingContext: marketing,
			SequencePosition: i + 1,
			TotalStories:     types.ChainLength,
		})
		chain.Stories = append(chain.Stories, *story)
	}

	log.Info().Int("stories", len(chain.Stories)).Str("profile_id", profileID).
		Msg("composed marketing story chain")
	return chain
}

// marketingContext condenses the recommendations into the prompt block shared
// by every chain stage: up to three platforms and ten hashtags, plus the
// recommended content types and posting times.
func marketingContext(recs []types.ContentRecommendation) string {
	if len(recs) == 0 {
		return ""
	}

	var contentTypes, postingTimes []string
	platforms := dedupeCapped(collect(recs, func(r types.ContentRecommendation) []string {
		return r.TargetPlatforms
	}), 3)
	hashtags := dedupeCapped(collect(recs, func(r types.ContentRecommendation) []string {
		if len(r.Hashtags) > 5 {
			return r.Hashtags[:5]
		}
		return r.Hashtags
	}), 10)
	for _, rec := range recs {
		contentTypes = append(contentTypes, string(rec.ContentType))
		postingTimes = append(postingTimes, rec.BestTimeToPost)
	}

	var sb strings.Builder
	sb.WriteString("MARKETING CONTEXT:\n")
	sb.WriteString(fmt.Sprintf("- Recommended Content Types: %s\n", strings.Join(contentTypes, ", ")))
	sb.WriteString(fmt.Sprintf("- Priority Platforms: %s\n", strings.Join(platforms, ", ")))
	sb.WriteString(fmt.Sprintf("- Key Hashtags: %s\n", strings.Join(hashtags, ", ")))
	sb.WriteString(fmt.Sprintf("- Optimal Posting Times: %s\n", strings.Join(postingTimes, ", ")))
	return sb.String()
}

// collect flattens one string-slice field across recommendations.
func collect(recs []types.ContentRecommendation, field func(types.ContentRecommendation) []string) []string {
	var out []string
	for _, rec := range recs {
		out = append(out, field(rec)...)
	}
	return out
}

// dedupeCapped removes duplicates preserving first-seen order, then caps the
// result at limit entries.
func dedupeCapped(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
