package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/prompts"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// SpecializedEngine produces craft-specific recommendations that lean on the
// knowledge tables harder than the general strategist does.
type SpecializedEngine struct {
	client llm.Client
}

// NewSpecializedEngine creates an engine around a generative client.
func NewSpecializedEngine(client llm.Client) *SpecializedEngine {
	return &SpecializedEngine{client: client}
}

// SpecializedRecommendations generates recommendations tuned to the artisan's
// craft and skill band. Never empty: failures degrade to the craft fallback.
func (e *SpecializedEngine) SpecializedRecommendations(ctx context.Context, profile *types.ArtisanProfile, analysis *types.CraftAnalysis) []types.ContentRecommendation {
	level := knowledge.SkillLevelFor(profile.ExperienceYears)
	prompt := prompts.Specialized(profile, analysis, level)

	strategist := ContentStrategist{client: e.client}
	raws, err := strategist.generateRecommendations(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("craft", string(profile.Specialization)).
			Msg("specialized generation failed, using craft fallback")
		return e.craftFallbacks(profile, level)
	}

	enriched := EnrichRecommendations(raws, profile.Specialization, level)
	if len(enriched) == 0 {
		return e.craftFallbacks(profile, level)
	}

	log.Info().Int("count", len(enriched)).Str("craft", string(profile.Specialization)).
		Msg("generated specialized recommendations")
	return enriched
}

// TechniqueRecommendations builds a tutorial recommendation for one named
// technique. Unknown techniques for the craft return an empty slice.
func (e *SpecializedEngine) TechniqueRecommendations(profile *types.ArtisanProfile, technique string) []types.ContentRecommendation {
	known := false
	for _, t := range knowledge.Techniques(profile.Specialization) {
		if t == technique {
			known = true
			break
		}
	}
	if !known {
		log.Warn().Str("technique", technique).Str("craft", string(profile.Specialization)).
			Msg("technique not found for craft")
		return nil
	}

	craftTitle := titleCase(string(profile.Specialization))
	tags := UnionHashtags(
		knowledge.Hashtags(profile.Specialization, knowledge.SkillAdvanced),
		[]string{"#" + strings.ReplaceAll(technique, " ", "")},
	)

	return []types.ContentRecommendation{{
		ContentType:     types.ContentTutorial,
		TitleSuggestion: fmt.Sprintf("Mastering %s in %s", titleCase(technique), craftTitle),
		Description:     fmt.Sprintf("Step-by-step guide to %s technique", technique),
		BestTimeToPost:  knowledge.OptimalPostingTime(profile.Specialization),
		Hashtags:        tags,
		TargetPlatforms: []string{"youtube", "instagram"},
		PriorityScore:   0.95,
		Reasoning:       fmt.Sprintf("Technique-specific content showcases expertise in %s", technique),
	}}
}

// marketStrategy describes how to pitch a craft to one target market.
type marketStrategy struct {
	platforms []string
	hashtags  []string
}

var marketStrategies = map[string]marketStrategy{
	"home decor": {
		platforms: []string{"pinterest", "instagram", "facebook"},
		hashtags:  []string{"#homedecor", "#interiordesign", "#handmadehome"},
	},
	"fashion": {
		platforms: []string{"instagram", "pinterest", "tiktok"},
		hashtags:  []string{"#fashion", "#style", "#handmadefashion"},
	},
	"art collectors": {
		platforms: []string{"instagram", "youtube", "facebook"},
		hashtags:  []string{"#artcollection", "#investment", "#uniqueart"},
	},
}

// MarketRecommendations builds a showcase recommendation aimed at one target
// market. Markets without a dedicated strategy borrow the home decor one.
func (e *SpecializedEngine) MarketRecommendations(profile *types.ArtisanProfile, targetMarket string) []types.ContentRecommendation {
	typical := false
	for _, m := range knowledge.Profile(profile.Specialization).Markets {
		if m == targetMarket {
			typical = true
			break
		}
	}
	if !typical {
		log.Warn().Str("market", targetMarket).Str("craft", string(profile.Specialization)).
			Msg("market not typical for craft")
	}

	strat, ok := marketStrategies[targetMarket]
	if !ok {
		strat = marketStrategies["home decor"]
	}

	craftTitle := titleCase(string(profile.Specialization))
	tags := UnionHashtags(
		knowledge.Hashtags(profile.Specialization, knowledge.SkillIntermediate),
		strat.hashtags,
	)

	return []types.ContentRecommendation{{
		ContentType:     types.ContentFinishedProduct,
		TitleSuggestion: fmt.Sprintf("%s for %s Enthusiasts", craftTitle, titleCase(targetMarket)),
		Description:     fmt.Sprintf("Showcase how your %s fits perfectly in %s", profile.Specialization, targetMarket),
		BestTimeToPost:  knowledge.OptimalPostingTime(profile.Specialization),
		Hashtags:        tags,
		TargetPlatforms: strat.platforms,
		PriorityScore:   0.9,
		Reasoning:       fmt.Sprintf("Market-specific content resonates with %s audience", targetMarket),
	}}
}

// craftFallbacks returns the deterministic craft-tuned pair used when
// generation or parsing fails.
func (e *SpecializedEngine) craftFallbacks(profile *types.ArtisanProfile, level knowledge.SkillLevel) []types.ContentRecommendation {
	craft := profile.Specialization
	craftTitle := titleCase(string(craft))
	tags := UnionHashtags(nil, knowledge.Hashtags(craft, level))
	postAt := knowledge.OptimalPostingTime(craft)

	return []types.ContentRecommendation{
		{
			ContentType:     types.ContentProcessVideo,
			TitleSuggestion: fmt.Sprintf("Master %s Techniques - %s Level", craftTitle, titleCase(string(level))),
			Description:     fmt.Sprintf("Show your %s creation process step by step", craft),
			BestTimeToPost:  postAt,
			Hashtags:        tags,
			TargetPlatforms: []string{"instagram", "youtube"},
			PriorityScore:   0.9,
			Reasoning:       fmt.Sprintf("Process videos are highly engaging for %s content", craft),
		},
		{
			ContentType:     types.ContentTutorial,
			TitleSuggestion: fmt.Sprintf("%s Tutorial for Beginners", craftTitle),
			Description:     fmt.Sprintf("Share your knowledge and teach %s techniques", craft),
			BestTimeToPost:  postAt,
			Hashtags:        tags,
			TargetPlatforms: []string{"youtube", "instagram"},
			PriorityScore:   0.85,
			Reasoning:       fmt.Sprintf("Educational content builds authority in %s", craft),
		},
	}
}
