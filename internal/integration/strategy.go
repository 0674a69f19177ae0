// Package integration assembles the cross-cutting strategy view: content
// pillars, posting cadence, performance targets, and per-platform tactics
// derived from recommendations, stories, and connected accounts. Everything
// here is deterministic table lookup over already-generated material.
package integration

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// maxContentPillars caps the overview's pillar list.
const maxContentPillars = 5

// PlatformStrategy is the per-platform slice of the integrated strategy.
type PlatformStrategy struct {
	ContentFocus       string   `json:"content_focus"`
	PostingFrequency   string   `json:"posting_frequency"`
	OptimalTimes       []string `json:"optimal_times"`
	EngagementStrategy string   `json:"engagement_strategy"`
	GrowthTactics      []string `json:"growth_tactics"`
}

// ScheduleEntry is one platform's posting cadence.
type ScheduleEntry struct {
	Frequency    string   `json:"frequency"`
	OptimalTimes []string `json:"optimal_times"`
	WeeklyPosts  float64  `json:"weekly_posts"`
}

// Overview summarizes who the strategy is for and what it leans on.
type Overview struct {
	ArtisanName        string   `json:"artisan_name"`
	Specialization     string   `json:"specialization"`
	ExperienceLevel    string   `json:"experience_level"`
	TargetAudience     string   `json:"target_audience"`
	ContentPillars     []string `json:"content_pillars"`
	StorytellingThemes []string `json:"storytelling_themes"`
}

// Strategy is the full integrated strategy document.
type Strategy struct {
	Overview              Overview                    `json:"overview"`
	PlatformStrategy      map[string]PlatformStrategy `json:"platform_strategy"`
	ContentMix            map[string]int              `json:"content_mix"`
	PostingSchedule       map[string]ScheduleEntry    `json:"posting_schedule"`
	PerformanceTargets    map[string]string           `json:"performance_targets"`
	GrowthRecommendations []string                    `json:"growth_recommendations"`
}

// StrategyInput bundles everything the composer consumes.
type StrategyInput struct {
	Profile         *types.ArtisanProfile
	Recommendations []types.ContentRecommendation
	Stories         []*types.StoryContent
	SocialProfiles  map[string]*types.SocialMediaProfile
}

// Compose builds the integrated strategy document.
func Compose(in StrategyInput) *Strategy {
	strategy := &Strategy{
		Overview: Overview{
			ArtisanName:        in.Profile.Name,
			Specialization:     string(in.Profile.Specialization),
			ExperienceLevel:    knowledge.ExperienceLabel(in.Profile.ExperienceYears),
			TargetAudience:     in.Profile.TargetAudience,
			ContentPillars:     contentPillars(in.Recommendations),
			StorytellingThemes: storytellingThemes(in.Stories),
		},
		PlatformStrategy:      make(map[string]PlatformStrategy, len(in.SocialProfiles)),
		ContentMix:            contentMix(in.Recommendations, in.Stories),
		PostingSchedule:       postingSchedule(in.SocialProfiles),
		PerformanceTargets:    performanceTargets(in.Profile),
		GrowthRecommendations: growthRecommendations(in.SocialProfiles),
	}

	for platform, profile := range in.SocialProfiles {
		strategy.PlatformStrategy[platform] = PlatformStrategy{
			ContentFocus:       platformContentFocus(platform),
			PostingFrequency:   profile.PostingFrequency,
			OptimalTimes:       profile.BestPostingTimes,
			EngagementStrategy: engagementStrategy(platform),
			GrowthTactics:      growthTactics(platform),
		}
	}

	log.Info().Str("artisan", in.Profile.Name).
		Int("platforms", len(strategy.PlatformStrategy)).
		Msg("composed integrated strategy")
	return strategy
}

// contentPillars extracts up to maxContentPillars humanized content types,
// deduplicated in first-seen order.
func contentPillars(recs []types.ContentRecommendation) []string {
	seen := make(map[string]struct{}, len(recs))
	pillars := make([]string, 0, maxContentPillars)
	for _, rec := range recs {
		pillar := rec.ContentType.Humanize()
		if _, ok := seen[pillar]; ok {
			continue
		}
		seen[pillar] = struct{}{}
		pillars = append(pillars, pillar)
		if len(pillars) == maxContentPillars {
			break
		}
	}
	return pillars
}

// storytellingThemes lists the humanized story types in story order,
// duplicates included so the theme count mirrors the story count.
func storytellingThemes(stories []*types.StoryContent) []string {
	themes := make([]string, 0, len(stories))
	for _, story := range stories {
		themes = append(themes, story.StoryType.Humanize())
	}
	return themes
}

// contentMix counts recommendations per content type, with all stories
// aggregated under a single storytelling bucket.
func contentMix(recs []types.ContentRecommendation, stories []*types.StoryContent) map[string]int {
	mix := make(map[string]int)
	for _, rec := range recs {
		key := string(rec.ContentType)
		if key == "" {
			key = "unknown"
		}
		mix[key]++
	}
	if len(stories) > 0 {
		mix["storytelling"] = len(stories)
	}
	return mix
}

func postingSchedule(profiles map[string]*types.SocialMediaProfile) map[string]ScheduleEntry {
	schedule := make(map[string]ScheduleEntry, len(profiles))
	for platform, profile := range profiles {
		schedule[platform] = ScheduleEntry{
			Frequency:    profile.PostingFrequency,
			OptimalTimes: profile.BestPostingTimes,
			WeeklyPosts:  WeeklyPosts(profile.PostingFrequency),
		}
	}
	return schedule
}

// weeklyPostsByFrequency maps normalized posting frequencies to posts per
// week. Bi-weekly means every two weeks, hence the fractional value.
var weeklyPostsByFrequency = map[string]float64{
	"daily":           7,
	"every_other_day": 3,
	"twice_weekly":    2,
	"weekly":          1,
	"bi_weekly":       0.5,
}

// WeeklyPosts converts a posting frequency label to posts per week. Unknown
// labels default to 3.
func WeeklyPosts(frequency string) float64 {
	key := strings.ReplaceAll(strings.ToLower(frequency), " ", "_")
	if posts, ok := weeklyPostsByFrequency[key]; ok {
		return posts
	}
	return 3
}

func performanceTargets(profile *types.ArtisanProfile) map[string]string {
	targets := map[string]string{
		"follower_growth":  "5-10% monthly",
		"engagement_rate":  "3-5% minimum",
		"content_reach":    "Increase by 20% monthly",
		"story_engagement": "Higher than average posts",
		"sales_inquiries":  "2-5 per month through social media",
	}
	if profile.ExperienceYears > 10 {
		targets["brand_recognition"] = "Establish as expert in " + string(profile.Specialization)
	}
	return targets
}

func growthRecommendations(profiles map[string]*types.SocialMediaProfile) []string {
	recs := []string{
		"Maintain consistent posting schedule across all platforms",
		"Engage with followers through comments and direct messages",
		"Use storytelling to build emotional connections with audience",
		"Collaborate with other local artisans for cross-promotion",
		"Share behind-the-scenes content to build authenticity",
	}
	if _, ok := profiles["instagram"]; ok {
		recs = append(recs, "Use Instagram Reels for process videos")
	}
	if _, ok := profiles["youtube"]; ok {
		recs = append(recs, "Create detailed tutorial videos for YouTube")
	}
	return recs
}

var platformContentFocuses = map[string]string{
	"instagram": "Visual storytelling and behind-the-scenes content",
	"facebook":  "Community building and detailed craft stories",
	"youtube":   "Educational content and detailed tutorials",
	"pinterest": "Inspirational craft ideas and process images",
}

func platformContentFocus(platform string) string {
	if focus, ok := platformContentFocuses[platform]; ok {
		return focus
	}
	return "Craft showcase and storytelling"
}

var engagementStrategies = map[string]string{
	"instagram": "Stories, polls, Q&A sessions, and user-generated content",
	"facebook":  "Community posts, event announcements, and live videos",
	"youtube":   "Comment responses, community posts, and collaborations",
	"pinterest": "Rich pins, seasonal boards, and DIY content",
}

func engagementStrategy(platform string) string {
	if strategy, ok := engagementStrategies[platform]; ok {
		return strategy
	}
	return "Regular interaction and community building"
}

var platformGrowthTactics = map[string][]string{
	"instagram": {"Use trending hashtags", "Post at optimal times", "Create Reels", "Engage with craft community"},
	"facebook":  {"Join craft groups", "Share in local communities", "Use Facebook Shops", "Host live sessions"},
	"youtube":   {"Optimize video titles", "Create playlists", "Use custom thumbnails", "Collaborate with creators"},
	"pinterest": {"Create seasonal boards", "Use rich pins", "Pin consistently", "Join group boards"},
}

func growthTactics(platform string) []string {
	if tactics, ok := platformGrowthTactics[platform]; ok {
		return tactics
	}
	return []string{"Consistent posting", "Community engagement"}
}
