// Package knowledge holds the static craft knowledge tables that back the
// deterministic stages of the pipeline. Every lookup is pure: unknown craft
// types fall back to empty-structure defaults and no function here can fail.
package knowledge

import (
	"time"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// CraftProfile bundles the craft-specific knowledge used for prompting,
// enrichment, and fallback generation.
type CraftProfile struct {
	Techniques      []string
	Tools           []string
	Markets         []string
	ContentFocus    []string
	TrendingTags    []string
	PostingTimes    []string
	SeasonalContent map[string]string
	SkillFocus      map[SkillLevel][]string
}

var craftProfiles = map[types.CraftType]CraftProfile{
	types.CraftPottery: {
		Techniques:   []string{"wheel throwing", "hand building", "glazing", "firing", "slip casting"},
		Tools:        []string{"pottery wheel", "kiln", "glazes", "clay tools", "brushes"},
		Markets:      []string{"home decor", "functional pottery", "art collectors", "restaurants"},
		ContentFocus: []string{"process videos", "technique tutorials", "firing process", "glazing tips"},
		TrendingTags: []string{"#pottery", "#handmade", "#ceramics", "#indiancrafts", "#earthenware"},
		PostingTimes: []string{"6-8 PM", "10-12 PM"},
		SeasonalContent: map[string]string{
			"festival": "Diyas for Diwali, decorative items for celebrations",
			"monsoon":  "Indoor pottery activities, water storage vessels",
			"summer":   "Cooling vessels, kulhads for summer drinks",
			"winter":   "Warm earth tones, cozy home decorations",
		},
		SkillFocus: map[SkillLevel][]string{
			SkillBeginner:     {"basic pinch pots", "coil building", "simple glazing"},
			SkillIntermediate: {"wheel throwing", "trimming", "decorative techniques"},
			SkillAdvanced:     {"complex forms", "specialized glazes", "kiln management"},
			SkillExpert:       {"custom glazes", "artistic installations", "teaching others"},
		},
	},
	types.CraftTextiles: {
		Techniques:   []string{"weaving", "dyeing", "block printing", "embroidery", "spinning"},
		Tools:        []string{"loom", "natural dyes", "printing blocks", "needles", "spinning wheel"},
		Markets:      []string{"fashion", "home textiles", "cultural wear", "sustainable fashion"},
		ContentFocus: []string{"weaving process", "dyeing techniques", "pattern stories", "cultural significance"},
		TrendingTags: []string{"#handloom", "#textiles", "#indianfabric", "#weaving", "#sustainable"},
		PostingTimes: []string{"7-9 PM", "12-2 PM"},
		SeasonalContent: map[string]string{
			"festival": "Festival wear, ceremonial textiles, bright colors",
			"monsoon":  "Natural dyed fabrics, sustainable practices",
			"summer":   "Light cotton fabrics, breathable weaves",
			"winter":   "Warm woolen textiles, cozy patterns",
		},
		SkillFocus: map[SkillLevel][]string{
			SkillBeginner:     {"basic weaving", "simple patterns", "natural dyeing"},
			SkillIntermediate: {"complex patterns", "color combinations", "finishing techniques"},
			SkillAdvanced:     {"intricate designs", "traditional patterns", "fabric innovation"},
			SkillExpert:       {"master weaver", "pattern creation", "heritage preservation"},
		},
	},
	types.CraftJewelry: {
		Techniques:   []string{"wire wrapping", "soldering", "stone setting", "engraving", "polishing"},
		Tools:        []string{"pliers", "soldering torch", "files", "polishing compounds", "stamps"},
		Markets:      []string{"fashion jewelry", "bridal jewelry", "everyday wear", "collectors"},
		ContentFocus: []string{"making process", "design inspiration", "finishing techniques", "styling tips"},
		TrendingTags: []string{"#handmadejewelry", "#silverjewelry", "#traditionaljewelry", "#artisanjewelry"},
		PostingTimes: []string{"11 AM-1 PM", "6-8 PM"},
		SeasonalContent: map[string]string{
			"festival": "Traditional jewelry, statement pieces for celebrations",
			"monsoon":  "Care tips for jewelry, protection from humidity",
			"summer":   "Lightweight pieces, comfortable daily wear",
			"winter":   "Layered jewelry, warm metal tones",
		},
		SkillFocus: map[SkillLevel][]string{
			SkillBeginner:     {"basic wire work", "simple designs", "finishing"},
			SkillIntermediate: {"soldering", "stone setting", "complex designs"},
			SkillAdvanced:     {"intricate patterns", "custom settings", "repair work"},
			SkillExpert:       {"master craftsman", "teaching", "innovative designs"},
		},
	},
	types.CraftWoodwork: {
		Techniques:   []string{"carving", "joinery", "finishing", "turning", "inlay work"},
		Tools:        []string{"chisels", "saws", "planes", "sanders", "lathe"},
		Markets:      []string{"furniture", "decorative items", "toys", "architectural elements"},
		ContentFocus: []string{"carving process", "wood selection", "finishing techniques", "project tutorials"},
		TrendingTags: []string{"#woodworking", "#furniture", "#handcarved", "#sustainablewood"},
		PostingTimes: []string{"5-7 PM", "9-11 AM"},
		SeasonalContent: map[string]string{
			"festival": "Decorative items, rangoli patterns in wood",
			"monsoon":  "Wood care, protection from moisture",
			"summer":   "Outdoor furniture, garden decorations",
			"winter":   "Indoor furniture, warm wood finishes",
		},
		SkillFocus: map[SkillLevel][]string{
			SkillBeginner:     {"basic carving", "simple projects", "tool handling"},
			SkillIntermediate: {"joinery", "furniture making", "finishing techniques"},
			SkillAdvanced:     {"complex projects", "custom designs", "restoration"},
			SkillExpert:       {"master craftsman", "artistic pieces", "teaching"},
		},
	},
}

// skillTags is the experience-band hashtag supplement applied on top of the
// craft tags during enrichment.
var skillTags = map[SkillLevel][]string{
	SkillBeginner:     {"#learning", "#newartisan", "#practice"},
	SkillIntermediate: {"#skilled", "#crafting", "#technique"},
	SkillAdvanced:     {"#expert", "#masterpiece", "#advanced"},
	SkillExpert:       {"#master", "#heritage", "#teaching", "#traditional"},
}

// Profile returns the knowledge profile for a craft. Unknown crafts get an
// empty profile rather than an error.
func Profile(craft types.CraftType) CraftProfile {
	return craftProfiles[craft]
}

// Techniques returns the known techniques of a craft, or nil when the craft
// has no curated entry.
func Techniques(craft types.CraftType) []string {
	return craftProfiles[craft].Techniques
}

// Hashtags returns the combined base, craft, and skill-level hashtags for a
// craft. The result always includes the generic artisan tags so the fallback
// path is never empty.
func Hashtags(craft types.CraftType, level SkillLevel) []string {
	tags := []string{"#" + string(craft), "#handmade", "#artisan", "#indiancrafts"}
	tags = append(tags, craftProfiles[craft].TrendingTags...)
	tags = append(tags, skillTags[level]...)
	return tags
}

// OptimalPostingTime returns the craft's primary posting window, defaulting
// to the evening window shared by most crafts.
func OptimalPostingTime(craft types.CraftType) string {
	if times := craftProfiles[craft].PostingTimes; len(times) > 0 {
		return times[0]
	}
	return "6-8 PM"
}

// SeasonalContent returns the curated seasonal content description for a
// craft and season, or empty when nothing is curated.
func SeasonalContent(craft types.CraftType, season string) string {
	return craftProfiles[craft].SeasonalContent[season]
}

// CurrentSeason infers the content season from a month: festival season in
// October-November, monsoon June-September, summer March-May, winter
// otherwise.
func CurrentSeason(month time.Month) string {
	switch {
	case month == time.October || month == time.November:
		return "festival"
	case month >= time.June && month <= time.September:
		return "monsoon"
	case month >= time.March && month <= time.May:
		return "summer"
	default:
		return "winter"
	}
}
