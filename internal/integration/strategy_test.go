package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

func strategyProfile(years int) *types.ArtisanProfile {
	return &types.ArtisanProfile{
		Name:            "Ramesh Kumar",
		Location:        "Jaipur, Rajasthan",
		Specialization:  types.CraftPottery,
		ExperienceYears: years,
		TargetAudience:  "Craft enthusiasts",
		Platforms:       []string{"instagram"},
	}
}

func TestWeeklyPosts(t *testing.T) {
	tests := []struct {
		frequency string
		expected  float64
	}{
		{"daily", 7},
		{"Daily", 7},
		{"every other day", 3},
		{"twice_weekly", 2},
		{"weekly", 1},
		{"Bi Weekly", 0.5},
		{"whenever inspiration strikes", 3},
		{"", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, WeeklyPosts(tt.frequency), "frequency=%q", tt.frequency)
	}
}

func TestContentPillars_DedupedAndCapped(t *testing.T) {
	recs := []types.ContentRecommendation{
		{ContentType: types.ContentProcessVideo},
		{ContentType: types.ContentTutorial},
		{ContentType: types.ContentProcessVideo},
		{ContentType: types.ContentFinishedProduct},
		{ContentType: types.ContentBehindScenes},
		{ContentType: types.ContentSeasonal},
		{ContentType: types.ContentCulturalContext},
	}

	pillars := contentPillars(recs)
	require.Len(t, pillars, 5)
	assert.Equal(t, "Process Video", pillars[0])
	assert.Equal(t, "Tutorial", pillars[1])
	assert.NotContains(t, pillars, "Cultural Context", "sixth distinct type is dropped")
}

func TestContentMix(t *testing.T) {
	recs := []types.ContentRecommendation{
		{ContentType: types.ContentProcessVideo},
		{ContentType: types.ContentProcessVideo},
		{ContentType: types.ContentTutorial},
		{},
	}
	stories := []*types.StoryContent{
		{StoryType: types.StoryOrigin},
		{StoryType: types.StoryProcess},
	}

	mix := contentMix(recs, stories)
	assert.Equal(t, 2, mix["process_video"])
	assert.Equal(t, 1, mix["tutorial"])
	assert.Equal(t, 1, mix["unknown"])
	assert.Equal(t, 2, mix["storytelling"])

	assert.NotContains(t, contentMix(recs, nil), "storytelling")
}

func TestPerformanceTargets_BrandRecognitionThreshold(t *testing.T) {
	junior := performanceTargets(strategyProfile(10))
	assert.Len(t, junior, 5)
	assert.NotContains(t, junior, "brand_recognition")

	senior := performanceTargets(strategyProfile(11))
	assert.Len(t, senior, 6)
	assert.Equal(t, "Establish as expert in pottery", senior["brand_recognition"])
}

func TestCompose_FullDocument(t *testing.T) {
	social := map[string]*types.SocialMediaProfile{
		"instagram": {
			Platform:         types.PlatformInstagram,
			PostingFrequency: "Daily",
			BestPostingTimes: []string{"6-9 AM"},
		},
		"youtube": {
			Platform:         types.PlatformYouTube,
			PostingFrequency: "Weekly",
			BestPostingTimes: []string{"2-4 PM"},
		},
	}
	recs := []types.ContentRecommendation{
		{ContentType: types.ContentProcessVideo},
		{ContentType: types.ContentTutorial},
	}
	stories := []*types.StoryContent{{StoryType: types.StoryBehindScenes}}

	strategy := Compose(StrategyInput{
		Profile:         strategyProfile(15),
		Recommendations: recs,
		Stories:         stories,
		SocialProfiles:  social,
	})

	assert.Equal(t, "Ramesh Kumar", strategy.Overview.ArtisanName)
	assert.Equal(t, "pottery", strategy.Overview.Specialization)
	assert.Equal(t, []string{"Process Video", "Tutorial"}, strategy.Overview.ContentPillars)
	assert.Equal(t, []string{"Behind Scenes"}, strategy.Overview.StorytellingThemes)

	require.Contains(t, strategy.PlatformStrategy, "instagram")
	ig := strategy.PlatformStrategy["instagram"]
	assert.Equal(t, "Visual storytelling and behind-the-scenes content", ig.ContentFocus)
	assert.Equal(t, "Daily", ig.PostingFrequency)
	assert.Contains(t, ig.GrowthTactics, "Create Reels")

	require.Contains(t, strategy.PostingSchedule, "youtube")
	assert.Equal(t, 1.0, strategy.PostingSchedule["youtube"].WeeklyPosts)
	assert.Equal(t, 7.0, strategy.PostingSchedule["instagram"].WeeklyPosts)

	assert.Contains(t, strategy.GrowthRecommendations, "Use Instagram Reels for process videos")
	assert.Contains(t, strategy.GrowthRecommendations, "Create detailed tutorial videos for YouTube")
	assert.Contains(t, strategy.PerformanceTargets, "brand_recognition")
}

func TestCompose_UnknownPlatformGetsGenericTactics(t *testing.T) {
	social := map[string]*types.SocialMediaProfile{
		"tiktok": {PostingFrequency: "Daily"},
	}

	strategy := Compose(StrategyInput{
		Profile:        strategyProfile(5),
		SocialProfiles: social,
	})

	tk := strategy.PlatformStrategy["tiktok"]
	assert.Equal(t, "Craft showcase and storytelling", tk.ContentFocus)
	assert.Equal(t, "Regular interaction and community building", tk.EngagementStrategy)
	assert.Equal(t, []string{"Consistent posting", "Community engagement"}, tk.GrowthTactics)
	assert.NotContains(t, strategy.GrowthRecommendations, "Use Instagram Reels for process videos")
}
