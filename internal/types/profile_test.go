package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileConfig() ProfileConfig {
	return ProfileConfig{
		Name:            "Ramesh Kumar",
		Location:        "Jaipur, Rajasthan",
		Specialization:  "pottery",
		ExperienceYears: 12,
		Platforms:       []string{"instagram", "facebook"},
	}
}

func TestNewArtisanProfile_Defaults(t *testing.T) {
	profile, err := NewArtisanProfile(validProfileConfig())
	require.NoError(t, err)

	assert.Equal(t, CraftPottery, profile.Specialization)
	assert.Equal(t, "Traditional craft showcase", profile.SignatureStyle)
	assert.Equal(t, "Craft enthusiasts and cultural appreciators", profile.TargetAudience)
	assert.Equal(t, profile.CreatedAt, profile.CreatedAt.Truncate(time.Second))
}

func TestNewArtisanProfile_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProfileConfig)
	}{
		{"missing name", func(c *ProfileConfig) { c.Name = "" }},
		{"missing location", func(c *ProfileConfig) { c.Location = "" }},
		{"missing specialization", func(c *ProfileConfig) { c.Specialization = "" }},
		{"negative experience", func(c *ProfileConfig) { c.ExperienceYears = -1 }},
		{"experience too high", func(c *ProfileConfig) { c.ExperienceYears = 81 }},
		{"no platforms", func(c *ProfileConfig) { c.Platforms = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validProfileConfig()
			tt.mutate(&cfg)
			_, err := NewArtisanProfile(cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewArtisanProfile_UnknownCraft(t *testing.T) {
	cfg := validProfileConfig()
	cfg.Specialization = "chainsaw juggling"
	profile, err := NewArtisanProfile(cfg)
	require.NoError(t, err)
	assert.Equal(t, CraftUnknown, profile.Specialization)
}

func TestArtisanProfile_JSONRoundTrip(t *testing.T) {
	profile, err := NewArtisanProfile(validProfileConfig())
	require.NoError(t, err)

	jsonBytes, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"specialization":"pottery"`)
	assert.Contains(t, string(jsonBytes), `"social_media_platforms":`)

	var decoded ArtisanProfile
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, profile.Name, decoded.Name)
	assert.Equal(t, profile.Specialization, decoded.Specialization)
	assert.Equal(t, profile.Platforms, decoded.Platforms)
	assert.True(t, profile.CreatedAt.Equal(decoded.CreatedAt))
}

func TestNewCraftAnalysis_Defaults(t *testing.T) {
	analysis := NewCraftAnalysis(AnalysisConfig{CraftType: "textiles"})

	assert.Equal(t, CraftTextiles, analysis.CraftType)
	assert.Equal(t, "intermediate", analysis.ComplexityLevel)
	assert.Equal(t, "2-4 hours", analysis.EstimatedTime)
}

func TestNewCraftAnalysis_ClampsConfidence(t *testing.T) {
	assert.Equal(t, 0.0, NewCraftAnalysis(AnalysisConfig{ConfidenceScore: -2}).ConfidenceScore)
	assert.Equal(t, 1.0, NewCraftAnalysis(AnalysisConfig{ConfidenceScore: 7}).ConfidenceScore)
	assert.Equal(t, 0.8, NewCraftAnalysis(AnalysisConfig{ConfidenceScore: 0.8}).ConfidenceScore)
}
