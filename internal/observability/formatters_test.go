package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/store"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := []types.ContentRecommendation{
		{
			ContentType:     types.ContentProcessVideo,
			TitleSuggestion: "Throwing Tall Forms",
			PriorityScore:   0.9,
			BestTimeToPost:  "6-8 PM",
			TargetPlatforms: []string{"instagram", "youtube"},
		},
	}

	p.PrintRecommendations("Content Recommendations", recs)
	output := buf.String()

	assert.Contains(t, output, "Content Recommendations")
	assert.Contains(t, output, "Throwing Tall Forms")
	assert.Contains(t, output, "0.90")
	assert.Contains(t, output, "instagram, youtube")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations("Content Recommendations", nil)

	assert.Empty(t, buf.String())
}

func TestPrintRecommendations_Overflow(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := make([]types.ContentRecommendation, 7)
	for i := range recs {
		recs[i] = types.ContentRecommendation{TitleSuggestion: "Idea"}
	}

	p.PrintRecommendations("Content Recommendations", recs)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintStory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	story := &types.StoryContent{
		StoryID:       "story_20250412_150405_origin_story",
		StoryType:     types.StoryOrigin,
		Title:         "Where It Began",
		EmotionalTone: "reverent",
		Hook:          "What does a sari remember?",
		PlatformAdaptations: map[string]string{
			"youtube":  "long form",
			"facebook": "short form",
		},
		SalesMetadata: &types.SalesMetadata{OptimizedForSales: true},
	}

	p.PrintStory(story)
	output := buf.String()

	assert.Contains(t, output, "Origin Story")
	assert.Contains(t, output, "Where It Began")
	assert.Contains(t, output, "facebook, youtube")
	assert.Contains(t, output, "Sales-optimized: yes")
}

func TestPrintStory_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStory(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCalendar_SkipsEmptyDays(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	calendar := map[string]types.CalendarDay{
		"2025-04-12": {
			Date:            "2025-04-12",
			Recommendations: []types.ContentRecommendation{{TitleSuggestion: "Kiln Day"}},
			Story:           &types.StoryRef{Title: "Where It Began"},
		},
		"2025-04-13": {Date: "2025-04-13"},
	}

	p.PrintCalendar(calendar)
	output := buf.String()

	assert.Contains(t, output, "Content Calendar (2 days)")
	assert.Contains(t, output, "2025-04-12:")
	assert.Contains(t, output, "Kiln Day")
	assert.Contains(t, output, "Where It Began")
	assert.NotContains(t, output, "2025-04-13:")
}

func TestPrintProfiles(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfiles([]store.ProfileSummary{
		{
			ProfileID:       "ramesh_kumar_1",
			Name:            "Ramesh Kumar",
			Location:        "Jaipur, Rajasthan",
			Specialization:  "pottery",
			ExperienceYears: 12,
		},
	})

	output := buf.String()
	assert.Contains(t, output, "ramesh_kumar_1")
	assert.Contains(t, output, "12 years of pottery")
}

func TestPrintProfiles_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfiles(nil)

	assert.Contains(t, buf.String(), "No profiles stored yet")
}
