package knowledge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

func TestSkillLevelFor(t *testing.T) {
	tests := []struct {
		years    int
		expected SkillLevel
	}{
		{0, SkillBeginner},
		{2, SkillBeginner},
		{3, SkillIntermediate},
		{7, SkillIntermediate},
		{8, SkillAdvanced},
		{15, SkillAdvanced},
		{16, SkillExpert},
		{40, SkillExpert},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SkillLevelFor(tt.years), "years=%d", tt.years)
	}
}

func TestSkillNarrative(t *testing.T) {
	assert.Equal(t, "emerging_artisan_passionate_beginner", SkillNarrative(1))
	assert.Equal(t, "skilled_craftsperson_growing_expertise", SkillNarrative(5))
	assert.Equal(t, "experienced_master_refined_technique", SkillNarrative(10))
	assert.Equal(t, "legendary_artisan_heritage_keeper", SkillNarrative(20))
}

func TestExperienceLabel(t *testing.T) {
	assert.Equal(t, "Emerging Artisan", ExperienceLabel(2))
	assert.Equal(t, "Skilled Craftsperson", ExperienceLabel(7))
	assert.Equal(t, "Expert Artisan", ExperienceLabel(15))
	assert.Equal(t, "Master Craftsperson", ExperienceLabel(16))
}

func TestHashtags_ContainsBaseAndCraftTags(t *testing.T) {
	tags := Hashtags(types.CraftPottery, SkillBeginner)

	assert.Contains(t, tags, "#pottery")
	assert.Contains(t, tags, "#handmade")
	assert.Contains(t, tags, "#artisan")
	assert.Contains(t, tags, "#indiancrafts")
	assert.Contains(t, tags, "#ceramics")
	assert.Contains(t, tags, "#learning")
}

func TestHashtags_UnknownCraftStillHasBaseTags(t *testing.T) {
	tags := Hashtags(types.CraftUnknown, SkillExpert)

	assert.Contains(t, tags, "#unknown")
	assert.Contains(t, tags, "#handmade")
	assert.Contains(t, tags, "#master")
}

func TestOptimalPostingTime(t *testing.T) {
	assert.Equal(t, "6-8 PM", OptimalPostingTime(types.CraftPottery))
	assert.Equal(t, "11 AM-1 PM", OptimalPostingTime(types.CraftJewelry))
	assert.Equal(t, "6-8 PM", OptimalPostingTime(types.CraftUnknown))
}

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected string
	}{
		{time.January, "winter"},
		{time.March, "summer"},
		{time.May, "summer"},
		{time.June, "monsoon"},
		{time.September, "monsoon"},
		{time.October, "festival"},
		{time.November, "festival"},
		{time.December, "winter"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CurrentSeason(tt.month), "month=%s", tt.month)
	}
}

func TestSeasonalContent(t *testing.T) {
	assert.Contains(t, SeasonalContent(types.CraftPottery, "festival"), "Diyas")
	assert.Empty(t, SeasonalContent(types.CraftUnknown, "festival"))
	assert.Empty(t, SeasonalContent(types.CraftPottery, "rainy"))
}

func TestCultureFor_RegionalMatch(t *testing.T) {
	ctx := CultureFor("Jaipur, Rajasthan", types.CraftPottery)

	assert.Contains(t, ctx.RegionalElements, "royal_heritage")
	assert.Len(t, ctx.TraditionalValues, 3)
	assert.Contains(t, ctx.CraftTraditions, "earthy_traditions")
}

func TestCultureFor_UnknownRegion(t *testing.T) {
	ctx := CultureFor("Reykjavik", types.CraftTextiles)

	assert.Empty(t, ctx.RegionalElements)
	assert.Contains(t, ctx.CraftTraditions, "weaving_traditions")
}
