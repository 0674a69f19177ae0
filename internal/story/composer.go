package story

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/parsing"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/prompts"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/schemas"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// ComposeInput carries everything needed to compose one story.
type ComposeInput struct {
	Profile   *types.ArtisanProfile
	ProfileID string
	Analysis  *types.CraftAnalysis
	StoryType types.StoryType
	Platforms []string

	// Chain context. Zero values mean standalone composition.
	MarketingContext string
	SequencePosition int
	TotalStories     int
}

// Composer turns artisan context into platform-adapted stories.
type Composer struct {
	client llm.Client
	now    func() time.Time
}

// NewComposer creates a composer around a generative client.
func NewComposer(client llm.Client) *Composer {
	return &Composer{client: client, now: time.Now}
}

// Compose generates one story. It never returns an error for generation or
// parsing problems: those degrade to the framework fallback. The returned
// story always has a platform adaptation for every requested platform.
func (c *Composer) Compose(ctx context.Context, in ComposeInput) *types.StoryContent {
	fw := FrameworkFor(in.StoryType)

	prompt := prompts.Story(prompts.StoryInput{
		Profile:          in.Profile,
		Analysis:         in.Analysis,
		StoryType:        in.StoryType,
		Structure:        fw.Structure,
		EmotionalArc:     fw.EmotionalArc,
		KeyElements:      fw.KeyElements,
		Platforms:        in.Platforms,
		MarketingContext: in.MarketingContext,
		SequencePosition: in.SequencePosition,
		TotalStories:     in.TotalStories,
	})

	raw, err := c.generateStory(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("story_type", string(in.StoryType)).
			Msg("story generation failed, using framework fallback")
		raw = fallbackStory(in.StoryType, in.Platforms)
	}

	now := c.now()
	story := &types.StoryContent{
		StoryID:             storyID(now, in.StoryType),
		StoryType:           in.StoryType,
		Title:               raw.Title,
		Narrative:           raw.Narrative,
		Hook:                raw.Hook,
		CallToAction:        raw.CallToAction,
		EmotionalTone:       raw.EmotionalTone,
		TargetAudience:      raw.TargetAudience,
		KeyMessages:         raw.KeyMessages,
		SupportingAssets:    raw.SupportingAssets,
		PlatformAdaptations: raw.PlatformAdaptations,
		ArtisanProfileID:    in.ProfileID,
		CreatedAt:           now.Truncate(time.Second),
	}
	c.applyDefaults(story, in, fw)

	log.Info().Str("story_id", story.StoryID).Str("story_type", string(in.StoryType)).
		Msg("composed story")
	return story
}

// generateStory runs the generate-extract-validate-decode sequence for one
// story prompt.
func (c *Composer) generateStory(ctx context.Context, prompt string) (*types.RawStory, error) {
	text, err := c.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, &parsing.ServiceError{Message: "story generation", Cause: err}
	}

	payload, err := parsing.ExtractRaw(text)
	if err != nil {
		return nil, err
	}
	if err := schemas.Validate(schemas.Story, payload); err != nil {
		return nil, &parsing.ParseError{Message: "story payload rejected", Cause: err}
	}

	var raw types.RawStory
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &parsing.ParseError{Message: "failed to decode story", Cause: err}
	}
	return &raw, nil
}

// applyDefaults fills every hole the generative service left, then completes
// the platform adaptation map for the requested platforms.
func (c *Composer) applyDefaults(story *types.StoryContent, in ComposeInput, fw Framework) {
	if story.Title == "" {
		story.Title = fmt.Sprintf("%s - %s", in.Profile.Name, in.StoryType.Humanize())
	}
	if story.EmotionalTone == "" {
		story.EmotionalTone = fw.EmotionalArc
	}
	if story.EmotionalTone == "" {
		story.EmotionalTone = "inspiring"
	}
	if story.TargetAudience == "" {
		story.TargetAudience = in.Profile.TargetAudience
	}
	if story.ArtisanProfileID == "" {
		story.ArtisanProfileID = strings.ToLower(strings.ReplaceAll(in.Profile.Name, " ", "_"))
	}
	if story.PlatformAdaptations == nil {
		story.PlatformAdaptations = make(map[string]string, len(in.Platforms))
	}
	for _, platform := range in.Platforms {
		if _, ok := story.PlatformAdaptations[platform]; !ok {
			story.PlatformAdaptations[platform] = "Platform-optimized content coming soon"
		}
	}
}

// storyID builds the second-precision identifier. Two stories of the same
// type composed within one second collide; callers compose sequentially.
func storyID(now time.Time, storyType types.StoryType) string {
	return fmt.Sprintf("story_%s_%s", now.Format("20060102_150405"), storyType)
}
