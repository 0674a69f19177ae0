package story

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// stubClient returns a canned response or error for every Generate call.
type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) Generate(_ context.Context, prompt string, _ *llm.ImageRef) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

var composedAt = time.Date(2025, 4, 12, 15, 4, 5, 0, time.UTC)

func testComposer(client llm.Client) *Composer {
	c := NewComposer(client)
	c.now = func() time.Time { return composedAt }
	return c
}

func weaverProfile() *types.ArtisanProfile {
	return &types.ArtisanProfile{
		Name:            "Meera Devi",
		Location:        "Varanasi, Uttar Pradesh",
		Specialization:  types.CraftTextiles,
		ExperienceYears: 20,
		TargetAudience:  "Textile lovers",
		Platforms:       []string{"instagram", "facebook"},
	}
}

func TestCompose_Success(t *testing.T) {
	client := &stubClient{response: `{
  "title": "Threads of Varanasi",
  "narrative": "Silk threads cross on an old pit loom.",
  "hook": "What does a sari remember?",
  "call_to_action": "Follow the loom",
  "emotional_tone": "reverent",
  "target_audience": "Sari collectors",
  "platform_adaptations": {"instagram": "Reel of the loom in motion"}
}`}

	c := testComposer(client)
	story := c.Compose(context.Background(), ComposeInput{
		Profile:   weaverProfile(),
		ProfileID: "meera_devi_1",
		StoryType: types.StoryProcess,
		Platforms: []string{"instagram", "facebook"},
	})

	assert.Equal(t, "story_20250412_150405_process_story", story.StoryID)
	assert.Equal(t, "Threads of Varanasi", story.Title)
	assert.Equal(t, "reverent", story.EmotionalTone)
	assert.Equal(t, "meera_devi_1", story.ArtisanProfileID)
	assert.Equal(t, composedAt, story.CreatedAt)
	assert.Equal(t, "Reel of the loom in motion", story.PlatformAdaptations["instagram"])
	assert.Equal(t, "Platform-optimized content coming soon", story.PlatformAdaptations["facebook"],
		"missing platform gets a placeholder adaptation")
}

func TestCompose_ServiceErrorUsesFallback(t *testing.T) {
	c := testComposer(&stubClient{err: errors.New("deadline exceeded")})

	story := c.Compose(context.Background(), ComposeInput{
		Profile:   weaverProfile(),
		ProfileID: "meera_devi_1",
		StoryType: types.StoryOrigin,
		Platforms: []string{"youtube", "facebook"},
	})

	assert.Equal(t, "The Art of Origin Story", story.Title)
	assert.Contains(t, story.Narrative, "origin story")
	assert.Equal(t, "In the heart of India, tradition meets artistry...", story.Hook)
	assert.Equal(t, "discover_heritage", story.CallToAction)
	assert.Equal(t, "humble_beginnings_to_mastery", story.EmotionalTone)
	assert.Equal(t, []string{"Authentic craftsmanship", "Cultural heritage", "Artistic excellence"}, story.KeyMessages)
	require.Len(t, story.PlatformAdaptations, 2)
	assert.Contains(t, story.PlatformAdaptations, "youtube")
	assert.Contains(t, story.PlatformAdaptations, "facebook")
}

func TestCompose_ProseResponseUsesFallback(t *testing.T) {
	c := testComposer(&stubClient{response: "Here is a lovely story about weaving, told in plain prose."})

	story := c.Compose(context.Background(), ComposeInput{
		Profile:   weaverProfile(),
		ProfileID: "meera_devi_1",
		StoryType: types.StoryBehindScenes,
		Platforms: []string{"instagram"},
	})

	assert.Equal(t, "The Art of Behind Scenes", story.Title)
	assert.Equal(t, "curiosity_to_appreciation", story.EmotionalTone)
}

func TestCompose_DefaultsFillMissingFields(t *testing.T) {
	c := testComposer(&stubClient{response: `{"narrative": "Just a narrative."}`})

	story := c.Compose(context.Background(), ComposeInput{
		Profile:   weaverProfile(),
		StoryType: types.StoryCustomer,
		Platforms: []string{"instagram"},
	})

	assert.Equal(t, "Meera Devi - Customer Story", story.Title)
	assert.Equal(t, "problem_to_joy", story.EmotionalTone)
	assert.Equal(t, "Textile lovers", story.TargetAudience)
	assert.Equal(t, "meera_devi", story.ArtisanProfileID, "profile id falls back to name slug")
}

func TestFrameworkFor_UnknownBorrowsBehindScenes(t *testing.T) {
	fw := FrameworkFor(types.StoryType("campfire_tale"))
	assert.Equal(t, frameworks[types.StoryBehindScenes], fw)
}

func TestFrameworks_CoverEveryArchetype(t *testing.T) {
	for _, st := range []types.StoryType{
		types.StoryOrigin, types.StoryCraftJourney, types.StoryCulturalHeritage,
		types.StoryCustomer, types.StoryBehindScenes, types.StorySeasonal,
		types.StoryProcess, types.StoryInspiration,
	} {
		fw, ok := frameworks[st]
		require.True(t, ok, "missing framework for %s", st)
		assert.NotEmpty(t, fw.Structure, "%s structure", st)
		assert.NotEmpty(t, fw.EmotionalArc, "%s arc", st)
		assert.NotEmpty(t, fw.CallToAction, "%s cta", st)
	}
}
