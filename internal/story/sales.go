package story

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/parsing"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/prompts"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/schemas"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// salesRewrite is the loose shape decoded from a sales optimization response.
type salesRewrite struct {
	OptimizedTitle     string   `json:"optimized_title"`
	OptimizedNarrative string   `json:"optimized_narrative"`
	OptimizedCTA       string   `json:"optimized_cta"`
	SalesHooks         []string `json:"sales_hooks"`
	ValuePropositions  []string `json:"value_propositions"`
	UrgencyElements    []string `json:"urgency_elements"`
}

// SalesOptimizer rewrites existing stories toward a sales objective. It is
// strictly best effort: on any failure the story comes back unmodified.
type SalesOptimizer struct {
	client llm.Client
	now    func() time.Time
}

// NewSalesOptimizer creates an optimizer around a generative client.
func NewSalesOptimizer(client llm.Client) *SalesOptimizer {
	return &SalesOptimizer{client: client, now: time.Now}
}

// Optimize applies a sales-focused rewrite to the story. Rewritten fields only
// replace the originals when the response supplies them, and the sales
// metadata is stamped with the optimization time.
func (o *SalesOptimizer) Optimize(ctx context.Context, story *types.StoryContent, objective types.SalesObjective) *types.StoryContent {
	prompt := prompts.SalesOptimization(story, objective)

	rewrite, err := o.generateRewrite(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("story_id", story.StoryID).
			Msg("sales optimization failed, story unchanged")
		return story
	}

	if rewrite.OptimizedTitle != "" {
		story.Title = rewrite.OptimizedTitle
	}
	if rewrite.OptimizedNarrative != "" {
		story.Narrative = rewrite.OptimizedNarrative
	}
	if rewrite.OptimizedCTA != "" {
		story.CallToAction = rewrite.OptimizedCTA
	}
	story.SalesMetadata = &types.SalesMetadata{
		SalesHooks:        rewrite.SalesHooks,
		ValuePropositions: rewrite.ValuePropositions,
		UrgencyElements:   rewrite.UrgencyElements,
		OptimizedForSales: true,
		OptimizationDate:  o.now().Truncate(time.Second),
	}

	log.Info().Str("story_id", story.StoryID).Msg("optimized story for sales")
	return story
}

func (o *SalesOptimizer) generateRewrite(ctx context.Context, prompt string) (*salesRewrite, error) {
	text, err := o.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, &parsing.ServiceError{Message: "sales optimization", Cause: err}
	}

	payload, err := parsing.ExtractRaw(text)
	if err != nil {
		return nil, err
	}
	if err := schemas.Validate(schemas.SalesOptimization, payload); err != nil {
		return nil, &parsing.ParseError{Message: "sales optimization payload rejected", Cause: err}
	}

	var rewrite salesRewrite
	if err := json.Unmarshal(payload, &rewrite); err != nil {
		return nil, &parsing.ParseError{Message: "failed to decode sales optimization", Cause: err}
	}
	return &rewrite, nil
}
