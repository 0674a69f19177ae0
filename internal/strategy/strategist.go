package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/parsing"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/prompts"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/schemas"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// ContentStrategist generates personalized content recommendations through
// the generative port, recovering to the knowledge-base fallback on any
// service or parse failure.
type ContentStrategist struct {
	client llm.Client
}

// NewContentStrategist creates a strategist around a generative client.
func NewContentStrategist(client llm.Client) *ContentStrategist {
	return &ContentStrategist{client: client}
}

// GenerateContentStrategy produces enriched recommendations for an artisan.
// The result is never empty and never an error: service and parse failures
// degrade to FallbackRecommendations.
func (s *ContentStrategist) GenerateContentStrategy(ctx context.Context, profile *types.ArtisanProfile, analysis *types.CraftAnalysis) []types.ContentRecommendation {
	prompt := prompts.ContentStrategy(profile, analysis)

	raws, err := s.generateRecommendations(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("craft", string(profile.Specialization)).
			Msg("content strategy generation failed, using fallback")
		return FallbackRecommendations(profile)
	}

	level := knowledge.SkillLevelFor(profile.ExperienceYears)
	enriched := EnrichRecommendations(raws, profile.Specialization, level)
	if len(enriched) == 0 {
		return FallbackRecommendations(profile)
	}

	log.Info().Int("count", len(enriched)).Str("craft", string(profile.Specialization)).
		Msg("generated content recommendations")
	return enriched
}

// SeasonalRecommendations returns the curated seasonal recommendation for a
// craft. Pass an empty season to infer it from the current month.
func (s *ContentStrategist) SeasonalRecommendations(profile *types.ArtisanProfile, season string) []types.ContentRecommendation {
	if season == "" {
		season = knowledge.CurrentSeason(time.Now().Month())
	}

	content := knowledge.SeasonalContent(profile.Specialization, season)
	if content == "" {
		content = "Seasonal craft content"
	}

	tags := UnionHashtags(knowledge.Hashtags(profile.Specialization, knowledge.SkillIntermediate), []string{"#" + season})

	return []types.ContentRecommendation{{
		ContentType:     types.ContentSeasonal,
		TitleSuggestion: fmt.Sprintf("Perfect %s %s", titleCase(season), titleCase(string(profile.Specialization))),
		Description:     content,
		BestTimeToPost:  knowledge.OptimalPostingTime(profile.Specialization),
		Hashtags:        tags,
		TargetPlatforms: []string{"instagram", "facebook"},
		PriorityScore:   0.95,
		Reasoning:       fmt.Sprintf("Seasonal relevance increases engagement during %s", season),
	}}
}

// generateRecommendations runs the generate-extract-validate-decode sequence
// shared by the general and specialized engines.
func (s *ContentStrategist) generateRecommendations(ctx context.Context, prompt string) ([]types.RawRecommendation, error) {
	text, err := s.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, &parsing.ServiceError{Message: "recommendation generation", Cause: err}
	}

	payload, err := parsing.ExtractRaw(text)
	if err != nil {
		return nil, err
	}
	if err := schemas.Validate(schemas.RecommendationList, payload); err != nil {
		return nil, &parsing.ParseError{Message: "recommendation payload rejected", Cause: err}
	}

	var raws []types.RawRecommendation
	if err := json.Unmarshal(payload, &raws); err != nil {
		return nil, &parsing.ParseError{Message: "failed to decode recommendations", Cause: err}
	}
	return raws, nil
}
