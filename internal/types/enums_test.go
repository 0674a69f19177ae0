package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCraftType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CraftType
	}{
		{"exact match", "pottery", CraftPottery},
		{"uppercase", "POTTERY", CraftPottery},
		{"surrounding whitespace", "  textiles  ", CraftTextiles},
		{"jewelry", "jewelry", CraftJewelry},
		{"woodwork", "woodwork", CraftWoodwork},
		{"unrecognized", "glassblowing rocketry", CraftUnknown},
		{"empty", "", CraftUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCraftType(tt.input))
		})
	}
}

func TestParseContentType_DefaultsToProcessVideo(t *testing.T) {
	assert.Equal(t, ContentProcessVideo, ParseContentType("interpretive_dance"))
	assert.Equal(t, ContentTutorial, ParseContentType("tutorial"))
	assert.Equal(t, ContentSeasonal, ParseContentType("seasonal_content"))
}

func TestParseStoryType_DefaultsToBehindScenes(t *testing.T) {
	assert.Equal(t, StoryBehindScenes, ParseStoryType("unknown_story"))
	assert.Equal(t, StoryOrigin, ParseStoryType("origin_story"))
	assert.Equal(t, StoryCulturalHeritage, ParseStoryType("Cultural_Heritage"))
}

func TestParseSocialPlatform_DefaultsToInstagram(t *testing.T) {
	assert.Equal(t, PlatformInstagram, ParseSocialPlatform("myspace"))
	assert.Equal(t, PlatformPinterest, ParseSocialPlatform("pinterest"))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Behind Scenes", StoryBehindScenes.Humanize())
	assert.Equal(t, "Process Video", ContentProcessVideo.Humanize())
	assert.Equal(t, "Origin Story", StoryOrigin.Humanize())
}
