package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

func TestEnrichRecommendations_AllFieldsMissing(t *testing.T) {
	enriched := EnrichRecommendations([]types.RawRecommendation{{}}, types.CraftPottery, knowledge.SkillIntermediate)
	require.Len(t, enriched, 1)

	rec := enriched[0]
	assert.Equal(t, types.ContentProcessVideo, rec.ContentType)
	assert.Equal(t, "Share Your Craft Story", rec.TitleSuggestion)
	assert.Equal(t, "Showcase your beautiful handmade craft", rec.Description)
	assert.Equal(t, "6-8 PM", rec.BestTimeToPost)
	assert.Equal(t, []string{"instagram"}, rec.TargetPlatforms)
	assert.Equal(t, 0.7, rec.PriorityScore)
	assert.NotEmpty(t, rec.Hashtags)
}

func TestEnrichRecommendations_SuppliedFieldsKept(t *testing.T) {
	raw := types.RawRecommendation{
		ContentType:     "tutorial",
		TitleSuggestion: "Glazing Masterclass",
		BestTimeToPost:  "9 AM",
		TargetPlatforms: []string{"youtube"},
		PriorityScore:   0.95,
		Hashtags:        []string{"#glaze"},
	}

	enriched := EnrichRecommendations([]types.RawRecommendation{raw}, types.CraftPottery, knowledge.SkillExpert)
	require.Len(t, enriched, 1)

	rec := enriched[0]
	assert.Equal(t, types.ContentTutorial, rec.ContentType)
	assert.Equal(t, "Glazing Masterclass", rec.TitleSuggestion)
	assert.Equal(t, "9 AM", rec.BestTimeToPost)
	assert.Equal(t, []string{"youtube"}, rec.TargetPlatforms)
	assert.Equal(t, 0.95, rec.PriorityScore)
	assert.Equal(t, "#glaze", rec.Hashtags[0], "supplied tags come first")
}

func TestEnrichRecommendations_HashtagBound(t *testing.T) {
	supplied := make([]string, 0, 20)
	for _, s := range []string{"#a", "#b", "#c", "#d", "#e", "#f", "#g", "#h", "#i", "#j", "#k", "#l", "#m", "#n", "#o", "#p"} {
		supplied = append(supplied, s)
	}

	enriched := EnrichRecommendations(
		[]types.RawRecommendation{{Hashtags: supplied}}, types.CraftTextiles, knowledge.SkillBeginner)
	require.Len(t, enriched, 1)

	tags := enriched[0].Hashtags
	assert.Len(t, tags, types.MaxHashtags)

	seen := make(map[string]bool)
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate hashtag %s", tag)
		seen[tag] = true
	}
}

func TestUnionHashtags_Dedupes(t *testing.T) {
	merged := UnionHashtags([]string{"#pottery", " #clay "}, []string{"#pottery", "#kiln"})
	assert.Equal(t, []string{"#pottery", "#clay", "#kiln"}, merged)
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"float in range", 0.85, 0.85},
		{"int clamped", 3, 1.0},
		{"negative clamped", -0.5, 0.0},
		{"string number", "0.6", 0.6},
		{"string padded", " 0.4 ", 0.4},
		{"string garbage", "very high", defaultPriority},
		{"nil", nil, defaultPriority},
		{"bool", true, defaultPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parsePriority(tt.input))
		})
	}
}
