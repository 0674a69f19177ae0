// Package strategy turns raw generative output into validated, bounded
// content recommendations and schedules them into calendars. Every
// generation path degrades to a deterministic knowledge-base fallback, so
// callers always receive a structurally valid result.
package strategy

import (
	"strconv"
	"strings"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

const defaultPriority = 0.7

// EnrichRecommendations merges raw recommendation entries with the craft
// knowledge base and enforces the recommendation invariants: closed content
// type, at most 15 unique hashtags, a posting time, a priority score in
// [0,1], and at least one target platform. A bad entry degrades field by
// field rather than aborting the batch.
func EnrichRecommendations(raws []types.RawRecommendation, craft types.CraftType, level knowledge.SkillLevel) []types.ContentRecommendation {
	enriched := make([]types.ContentRecommendation, 0, len(raws))

	for _, raw := range raws {
		title := raw.TitleSuggestion
		if title == "" {
			title = "Share Your Craft Story"
		}
		description := raw.Description
		if description == "" {
			description = "Showcase your beautiful handmade craft"
		}
		postingTime := raw.BestTimeToPost
		if postingTime == "" {
			postingTime = knowledge.OptimalPostingTime(craft)
		}
		platforms := raw.TargetPlatforms
		if len(platforms) == 0 {
			platforms = []string{string(types.PlatformInstagram)}
		}
		reasoning := raw.Reasoning
		if reasoning == "" {
			reasoning = "Great content for engagement"
		}

		enriched = append(enriched, types.ContentRecommendation{
			ContentType:     types.ParseContentType(raw.ContentType),
			TitleSuggestion: title,
			Description:     description,
			BestTimeToPost:  postingTime,
			Hashtags:        UnionHashtags(raw.Hashtags, knowledge.Hashtags(craft, level)),
			TargetPlatforms: platforms,
			PriorityScore:   parsePriority(raw.PriorityScore),
			Reasoning:       reasoning,
		})
	}

	return enriched
}

// UnionHashtags merges supplied and knowledge-base hashtags, dropping
// duplicates and truncating to the 15-tag bound. Supplied tags keep their
// position ahead of knowledge tags.
func UnionHashtags(supplied, known []string) []string {
	seen := make(map[string]bool, len(supplied)+len(known))
	merged := make([]string, 0, types.MaxHashtags)

	for _, tag := range append(append([]string{}, supplied...), known...) {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
		if len(merged) == types.MaxHashtags {
			break
		}
	}

	return merged
}

// parsePriority coerces the loosely typed priority value into a float in
// [0,1], defaulting when absent or unparseable.
func parsePriority(v any) float64 {
	var score float64
	switch val := v.(type) {
	case float64:
		score = val
	case int:
		score = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return defaultPriority
		}
		score = parsed
	default:
		return defaultPriority
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
