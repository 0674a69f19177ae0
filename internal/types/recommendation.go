package types

// MaxHashtags bounds the hashtag set on every recommendation.
const MaxHashtags = 15

// ContentRecommendation is a single suggested post idea with scheduling and
// tagging metadata. It is a value object: created fresh on every generation
// call and never updated in place.
type ContentRecommendation struct {
	ContentType     ContentType `json:"content_type"`
	TitleSuggestion string      `json:"title_suggestion"`
	Description     string      `json:"description"`
	BestTimeToPost  string      `json:"best_time_to_post"`
	Hashtags        []string    `json:"hashtags"`
	TargetPlatforms []string    `json:"target_platforms"`
	PriorityScore   float64     `json:"priority_score"`
	Reasoning       string      `json:"reasoning"`
}

// RawRecommendation is the loose shape decoded from the generative service
// before enrichment. Every field is optional; the enricher resolves defaults.
type RawRecommendation struct {
	ContentType     string   `json:"content_type"`
	TitleSuggestion string   `json:"title_suggestion"`
	Description     string   `json:"description"`
	BestTimeToPost  string   `json:"best_time_to_post"`
	SkillFocus      string   `json:"skill_focus"`
	Hashtags        []string `json:"hashtags"`
	TargetPlatforms []string `json:"target_platforms"`
	PriorityScore   any      `json:"priority_score"`
	Reasoning       string   `json:"reasoning"`
}

// PostSuggestion is the projection of a recommendation or story into a daily
// calendar entry.
type PostSuggestion struct {
	Kind        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Platforms   []string `json:"platforms"`
}

// CalendarDay is one day of the content calendar. It is ephemeral: recomputed
// on every calendar request and never persisted independently.
type CalendarDay struct {
	Date            string                  `json:"date"`
	Recommendations []ContentRecommendation `json:"content_recommendations"`
	Story           *StoryRef               `json:"story_content,omitempty"`
	SuggestedPosts  []PostSuggestion        `json:"suggested_posts"`
}

// StoryRef is the calendar's lightweight reference to a stored story.
type StoryRef struct {
	StoryID   string    `json:"story_id"`
	StoryType StoryType `json:"story_type"`
	Title     string    `json:"title"`
	Platforms []string  `json:"platforms"`
}

// SalesObjective describes the marketing objective fed to the sales
// optimizer. All fields are free text except KeyProducts.
type SalesObjective struct {
	PrimaryGoal   string   `json:"primary_goal"`
	TargetRevenue string   `json:"target_revenue,omitempty"`
	KeyProducts   []string `json:"key_products"`
	UrgencyLevel  string   `json:"urgency_level"`
}
