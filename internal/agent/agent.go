// Package agent wires the recommendation, storytelling, and persistence
// layers into the workflows the CLI exposes. A missing profile id is the only
// hard domain error; generation problems degrade inside the lower layers.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/integration"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/store"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/story"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/strategy"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// Agent is the integrated system facade.
type Agent struct {
	store       *store.Store
	strategist  *strategy.ContentStrategist
	specialized *strategy.SpecializedEngine
	composer    *story.Composer
	optimizer   *story.SalesOptimizer
	now         func() time.Time
}

// New assembles an agent over a store and a generative client.
func New(st *store.Store, client llm.Client) *Agent {
	return &Agent{
		store:       st,
		strategist:  strategy.NewContentStrategist(client),
		specialized: strategy.NewSpecializedEngine(client),
		composer:    story.NewComposer(client),
		optimizer:   story.NewSalesOptimizer(client),
		now:         time.Now,
	}
}

// Store exposes the underlying store for read-side CLI commands.
func (a *Agent) Store() *store.Store {
	return a.store
}

// OnboardInput bundles everything the onboarding workflow consumes. Social
// profiles and story generation are optional.
type OnboardInput struct {
	Profile        types.ProfileConfig
	Analysis       *types.CraftAnalysis
	SocialSetup    []types.SocialProfileConfig
	StoryTypes     []string
	StoryPlatforms []string
}

// OnboardResult reports what the workflow created.
type OnboardResult struct {
	ProfileID       string                `json:"profile_id"`
	Recommendations RecommendationSet     `json:"content_recommendations"`
	SocialProfiles  []string              `json:"social_media_profiles"`
	StoryIDs        []string              `json:"story_content"`
	Strategy        *integration.Strategy `json:"integrated_strategy"`
}

// RecommendationSet pairs the general and specialized recommendation lists.
type RecommendationSet struct {
	General     []types.ContentRecommendation `json:"general"`
	Specialized []types.ContentRecommendation `json:"specialized"`
}

// Onboard runs the complete onboarding workflow: profile creation, both
// recommendation passes, social profile setup, optional story generation,
// and the integrated strategy document.
func (a *Agent) Onboard(ctx context.Context, in OnboardInput) (*OnboardResult, error) {
	profile, err := types.NewArtisanProfile(in.Profile)
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	profileID, err := a.store.CreateProfile(profile)
	if err != nil {
		return nil, err
	}

	result := &OnboardResult{ProfileID: profileID}
	result.Recommendations = RecommendationSet{
		General:     a.strategist.GenerateContentStrategy(ctx, profile, in.Analysis),
		Specialized: a.specialized.SpecializedRecommendations(ctx, profile, in.Analysis),
	}

	for _, cfg := range in.SocialSetup {
		socialID, err := a.store.CreateSocialProfile(profileID, cfg)
		if err != nil {
			return nil, err
		}
		result.SocialProfiles = append(result.SocialProfiles, socialID)
	}

	platforms := in.StoryPlatforms
	if len(platforms) == 0 {
		platforms = []string{"instagram", "facebook"}
	}
	for _, raw := range in.StoryTypes {
		st := a.composer.Compose(ctx, story.ComposeInput{
			Profile:   profile,
			ProfileID: profileID,
			Analysis:  in.Analysis,
			StoryType: types.ParseStoryType(raw),
			Platforms: platforms,
		})
		if err := a.store.PutStory(st); err != nil {
			return nil, err
		}
		result.StoryIDs = append(result.StoryIDs, st.StoryID)
	}

	allRecs := append(append([]types.ContentRecommendation{}, result.Recommendations.General...),
		result.Recommendations.Specialized...)
	result.Strategy = integration.Compose(integration.StrategyInput{
		Profile:         profile,
		Recommendations: allRecs,
		Stories:         a.store.StoriesFor(profileID),
		SocialProfiles:  a.store.SocialProfiles(profileID),
	})

	log.Info().Str("profile_id", profileID).
		Int("stories", len(result.StoryIDs)).
		Int("social_profiles", len(result.SocialProfiles)).
		Msg("completed onboarding workflow")
	return result, nil
}

// Recommend produces both recommendation passes for a stored profile.
func (a *Agent) Recommend(ctx context.Context, profileID string, analysis *types.CraftAnalysis) (*RecommendationSet, error) {
	profile, err := a.store.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	return &RecommendationSet{
		General:     a.strategist.GenerateContentStrategy(ctx, profile, analysis),
		Specialized: a.specialized.SpecializedRecommendations(ctx, profile, analysis),
	}, nil
}

// GenerateStory composes one story for a stored profile and persists it.
func (a *Agent) GenerateStory(ctx context.Context, profileID string, storyType types.StoryType, platforms []string, analysis *types.CraftAnalysis) (*types.StoryContent, error) {
	profile, err := a.store.GetProfile(profileID)
	if err != nil {
		return nil, err
	}
	if len(platforms) == 0 {
		platforms = []string{"instagram", "facebook"}
	}

	st := a.composer.Compose(ctx, story.ComposeInput{
		Profile:   profile,
		ProfileID: profileID,
		Analysis:  analysis,
		StoryType: storyType,
		Platforms: platforms,
	})
	if err := a.store.PutStory(st); err != nil {
		return nil, err
	}
	return st, nil
}

// GenerateStoryChain composes the five-story marketing chain, optionally
// rewrites each story toward the sales objective, and persists everything.
// It returns the stored story ids in chain order.
func (a *Agent) GenerateStoryChain(ctx context.Context, profileID string, analysis *types.CraftAnalysis, objective *types.SalesObjective) ([]string, error) {
	profile, err := a.store.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	recs := a.strategist.GenerateContentStrategy(ctx, profile, analysis)
	chain := a.composer.ComposeChain(ctx, profile, profileID, analysis, recs)

	ids := make([]string, 0, len(chain.Stories))
	for i := range chain.Stories {
		st := &chain.Stories[i]
		if objective != nil {
			st = a.optimizer.Optimize(ctx, st, *objective)
		}
		if err := a.store.PutStory(st); err != nil {
			return nil, err
		}
		ids = append(ids, st.StoryID)
	}

	log.Info().Str("profile_id", profileID).Int("stories", len(ids)).
		Msg("generated marketing story chain")
	return ids, nil
}

// ContentCalendar assembles the integrated calendar for a stored profile,
// laying fresh recommendations and the profile's stored stories over the
// next days starting today.
func (a *Agent) ContentCalendar(ctx context.Context, profileID string, days int, includeStories bool) (map[string]types.CalendarDay, error) {
	profile, err := a.store.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	recs := a.strategist.GenerateContentStrategy(ctx, profile, nil)
	var stories []*types.StoryContent
	if includeStories {
		stories = a.store.StoriesFor(profileID)
	}

	return strategy.BuildCalendar(a.now(), days, recs, stories), nil
}

// IntegratedStrategy builds the strategy document from a stored profile's
// recommendations, stories, and social accounts.
func (a *Agent) IntegratedStrategy(profileID string, recs []types.ContentRecommendation) (*integration.Strategy, error) {
	profile, err := a.store.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	return integration.Compose(integration.StrategyInput{
		Profile:         profile,
		Recommendations: recs,
		Stories:         a.store.StoriesFor(profileID),
		SocialProfiles:  a.store.SocialProfiles(profileID),
	}), nil
}

// OptimizeStory rewrites a stored story toward a sales objective and persists
// the result.
func (a *Agent) OptimizeStory(ctx context.Context, storyID string, objective types.SalesObjective) (*types.StoryContent, error) {
	st, err := a.store.GetStory(storyID)
	if err != nil {
		return nil, err
	}

	st = a.optimizer.Optimize(ctx, st, objective)
	if err := a.store.PutStory(st); err != nil {
		return nil, err
	}
	return st, nil
}
