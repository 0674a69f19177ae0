package types

import "time"

// SalesMetadata is attached to a story only after sales optimization.
type SalesMetadata struct {
	SalesHooks        []string  `json:"sales_hooks"`
	ValuePropositions []string  `json:"value_propositions"`
	UrgencyElements   []string  `json:"urgency_elements"`
	OptimizedForSales bool      `json:"optimized_for_sales"`
	OptimizationDate  time.Time `json:"optimization_date"`
}

// StoryContent is a narrative content unit with per-platform adaptations.
// It is created once and mutated only through the sales optimizer's merge.
type StoryContent struct {
	StoryID             string            `json:"story_id"`
	StoryType           StoryType         `json:"story_type"`
	Title               string            `json:"title"`
	Narrative           string            `json:"narrative"`
	Hook                string            `json:"hook"`
	CallToAction        string            `json:"call_to_action"`
	EmotionalTone       string            `json:"emotional_tone"`
	TargetAudience      string            `json:"target_audience"`
	KeyMessages         []string          `json:"key_messages"`
	SupportingAssets    []string          `json:"supporting_assets"`
	PlatformAdaptations map[string]string `json:"platform_adaptations"`
	ArtisanProfileID    string            `json:"artisan_profile_id"`
	CraftAnalysisID     string            `json:"craft_analysis_id,omitempty"`
	SalesMetadata       *SalesMetadata    `json:"sales_metadata,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
}

// RawStory is the loose shape decoded from the generative service before
// composition. Every field is optional; the composer resolves defaults.
type RawStory struct {
	Title               string            `json:"title"`
	Hook                string            `json:"hook"`
	Narrative           string            `json:"narrative"`
	KeyMessages         []string          `json:"key_messages"`
	EmotionalTone       string            `json:"emotional_tone"`
	TargetAudience      string            `json:"target_audience"`
	CallToAction        string            `json:"call_to_action"`
	PlatformAdaptations map[string]string `json:"platform_adaptations"`
	SupportingAssets    []string          `json:"supporting_assets"`
	Hashtags            []string          `json:"hashtags"`
}

// ChainLength is the fixed number of stories in a marketing story chain.
const ChainLength = 5

// MarketingStoryChain is an ordered sequence of exactly ChainLength stories
// forming a funnel from awareness to conversion.
type MarketingStoryChain struct {
	Stories []StoryContent `json:"stories"`
}
