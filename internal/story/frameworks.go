// Package story composes narrative content for artisans: single stories,
// five-stage marketing chains, and sales-optimized rewrites. Like the
// recommendation side, generation failures degrade to deterministic fallbacks
// instead of surfacing errors.
package story

import "github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"

// Framework is the narrative scaffold for one story archetype. Frameworks are
// static and shared by prompting and fallback construction.
type Framework struct {
	Structure    []string
	EmotionalArc string
	KeyElements  []string
	CallToAction string
}

var frameworks = map[types.StoryType]Framework{
	types.StoryOrigin: {
		Structure:    []string{"heritage", "inspiration", "first_creation", "evolution", "legacy"},
		EmotionalArc: "humble_beginnings_to_mastery",
		KeyElements:  []string{"family_tradition", "cultural_significance", "personal_journey"},
		CallToAction: "discover_heritage",
	},
	types.StoryCraftJourney: {
		Structure:    []string{"learning", "challenges", "breakthrough", "mastery", "innovation"},
		EmotionalArc: "struggle_to_triumph",
		KeyElements:  []string{"skill_development", "dedication", "artistic_growth"},
		CallToAction: "appreciate_craftsmanship",
	},
	types.StoryCulturalHeritage: {
		Structure:    []string{"ancient_roots", "traditional_methods", "cultural_meaning", "preservation", "modern_relevance"},
		EmotionalArc: "pride_and_preservation",
		KeyElements:  []string{"historical_context", "cultural_symbols", "traditional_techniques"},
		CallToAction: "preserve_tradition",
	},
	types.StoryCustomer: {
		Structure:    []string{"customer_need", "craft_solution", "creation_process", "delivery", "satisfaction"},
		EmotionalArc: "problem_to_joy",
		KeyElements:  []string{"personal_connection", "custom_creation", "emotional_value"},
		CallToAction: "create_your_story",
	},
	types.StoryBehindScenes: {
		Structure:    []string{"workspace", "tools", "process", "challenges", "satisfaction"},
		EmotionalArc: "curiosity_to_appreciation",
		KeyElements:  []string{"intimate_details", "crafting_secrets", "personal_touch"},
		CallToAction: "experience_craftsmanship",
	},
	types.StorySeasonal: {
		Structure:    []string{"season_significance", "traditional_connection", "craft_adaptation", "celebration", "community"},
		EmotionalArc: "anticipation_to_celebration",
		KeyElements:  []string{"seasonal_relevance", "festival_connection", "cultural_celebration"},
		CallToAction: "celebrate_with_us",
	},
	types.StoryProcess: {
		Structure:    []string{"raw_materials", "preparation", "creation_steps", "refinement", "final_product"},
		EmotionalArc: "transformation_journey",
		KeyElements:  []string{"technical_skill", "artistic_vision", "patience_and_precision"},
		CallToAction: "appreciate_process",
	},
	types.StoryInspiration: {
		Structure:    []string{"inspiration_source", "creative_vision", "design_process", "execution", "impact"},
		EmotionalArc: "inspiration_to_creation",
		KeyElements:  []string{"creative_spark", "artistic_interpretation", "unique_perspective"},
		CallToAction: "find_inspiration",
	},
}

// FrameworkFor returns the framework for a story type. Unknown types borrow
// the behind-the-scenes framework so callers never see a zero value.
func FrameworkFor(storyType types.StoryType) Framework {
	if fw, ok := frameworks[storyType]; ok {
		return fw
	}
	return frameworks[types.StoryBehindScenes]
}
