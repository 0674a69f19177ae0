package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/store"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// stubClient returns a canned response or error for every Generate call.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) Generate(_ context.Context, _ string, _ *llm.ImageRef) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

func testAgent(t *testing.T, client llm.Client) *Agent {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return New(st, client)
}

func onboardInput() OnboardInput {
	return OnboardInput{
		Profile: types.ProfileConfig{
			Name:            "Ramesh Kumar",
			Location:        "Jaipur, Rajasthan",
			Specialization:  "pottery",
			ExperienceYears: 12,
			Platforms:       []string{"instagram", "facebook"},
		},
		SocialSetup: []types.SocialProfileConfig{
			{Platform: "instagram", Username: "ramesh_pots"},
		},
		StoryTypes: []string{"origin_story"},
	}
}

func TestOnboard_FullWorkflowWithDegradedGeneration(t *testing.T) {
	a := testAgent(t, &stubClient{err: errors.New("service down")})

	result, err := a.Onboard(context.Background(), onboardInput())
	require.NoError(t, err)

	assert.Equal(t, "ramesh_kumar_1", result.ProfileID)
	assert.NotEmpty(t, result.Recommendations.General, "fallback recommendations on failure")
	assert.NotEmpty(t, result.Recommendations.Specialized)
	assert.Equal(t, []string{"ramesh_kumar_1_instagram"}, result.SocialProfiles)
	require.Len(t, result.StoryIDs, 1)

	stored, err := a.Store().GetStory(result.StoryIDs[0])
	require.NoError(t, err)
	assert.Equal(t, types.StoryOrigin, stored.StoryType)
	assert.Contains(t, stored.PlatformAdaptations, "instagram")
	assert.Contains(t, stored.PlatformAdaptations, "facebook")

	require.NotNil(t, result.Strategy)
	assert.Equal(t, "Ramesh Kumar", result.Strategy.Overview.ArtisanName)
	assert.Contains(t, result.Strategy.PlatformStrategy, "instagram")
	assert.Equal(t, []string{"Origin Story"}, result.Strategy.Overview.StorytellingThemes)
}

func TestOnboard_InvalidProfile(t *testing.T) {
	a := testAgent(t, &stubClient{})

	in := onboardInput()
	in.Profile.Platforms = nil
	_, err := a.Onboard(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestRecommend_UnknownProfile(t *testing.T) {
	a := testAgent(t, &stubClient{})

	_, err := a.Recommend(context.Background(), "ghost_1", nil)
	assert.True(t, errors.Is(err, store.ErrProfileNotFound))
}

func TestGenerateStoryChain_PersistsFiveStories(t *testing.T) {
	a := testAgent(t, &stubClient{err: errors.New("service down")})

	result, err := a.Onboard(context.Background(), OnboardInput{Profile: onboardInput().Profile})
	require.NoError(t, err)

	ids, err := a.GenerateStoryChain(context.Background(), result.ProfileID, nil, nil)
	require.NoError(t, err)
	require.Len(t, ids, types.ChainLength)

	for _, id := range ids {
		st, err := a.Store().GetStory(id)
		require.NoError(t, err)
		assert.Nil(t, st.SalesMetadata, "no objective means no sales rewrite")
	}
}

func TestGenerateStoryChain_WithObjectiveStampsMetadata(t *testing.T) {
	a := testAgent(t, &stubClient{err: errors.New("service down")})

	result, err := a.Onboard(context.Background(), OnboardInput{Profile: onboardInput().Profile})
	require.NoError(t, err)

	objective := &types.SalesObjective{PrimaryGoal: "festival sales", UrgencyLevel: "high"}
	ids, err := a.GenerateStoryChain(context.Background(), result.ProfileID, nil, objective)
	require.NoError(t, err)
	require.Len(t, ids, types.ChainLength)

	st, err := a.Store().GetStory(ids[0])
	require.NoError(t, err)
	assert.Nil(t, st.SalesMetadata, "failed optimization leaves stories unchanged")
}

func TestContentCalendar(t *testing.T) {
	a := testAgent(t, &stubClient{err: errors.New("service down")})

	result, err := a.Onboard(context.Background(), OnboardInput{
		Profile:    onboardInput().Profile,
		StoryTypes: []string{"behind_scenes"},
	})
	require.NoError(t, err)

	calendar, err := a.ContentCalendar(context.Background(), result.ProfileID, 7, true)
	require.NoError(t, err)
	assert.Len(t, calendar, 7)

	withStories := 0
	for _, day := range calendar {
		if day.Story != nil {
			withStories++
		}
	}
	assert.Equal(t, 1, withStories, "single stored story lands on one day")

	noStories, err := a.ContentCalendar(context.Background(), result.ProfileID, 7, false)
	require.NoError(t, err)
	for _, day := range noStories {
		assert.Nil(t, day.Story)
	}
}

func TestOptimizeStory_PersistsRewrite(t *testing.T) {
	client := &stubClient{err: errors.New("service down")}
	a := testAgent(t, client)

	result, err := a.Onboard(context.Background(), OnboardInput{
		Profile:    onboardInput().Profile,
		StoryTypes: []string{"origin_story"},
	})
	require.NoError(t, err)

	client.err = nil
	client.response = `{"optimized_title": "Own a Piece of Jaipur", "sales_hooks": ["limited batch"]}`

	st, err := a.OptimizeStory(context.Background(), result.StoryIDs[0],
		types.SalesObjective{PrimaryGoal: "festival sales"})
	require.NoError(t, err)
	assert.Equal(t, "Own a Piece of Jaipur", st.Title)
	require.NotNil(t, st.SalesMetadata)
	assert.True(t, st.SalesMetadata.OptimizedForSales)

	stored, err := a.Store().GetStory(result.StoryIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "Own a Piece of Jaipur", stored.Title)
}
