package knowledge

import (
	"strings"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// CulturalContext is the location- and craft-derived storytelling context
// woven into story prompts.
type CulturalContext struct {
	RegionalElements  []string
	TraditionalValues []string
	CraftTraditions   []string
}

var traditionalValues = []string{
	"respect_for_elders", "devotion_to_craft", "patience", "dedication",
	"community_service", "cultural_preservation", "spiritual_growth",
}

var regionalElements = map[string][]string{
	"rajasthan":  {"desert_beauty", "royal_heritage", "vibrant_colors", "folk_traditions"},
	"kerala":     {"backwaters", "spices", "ayurveda", "classical_arts"},
	"punjab":     {"fertility", "harvest", "bhangra", "golden_fields"},
	"gujarat":    {"business_acumen", "textile_heritage", "garba", "entrepreneurship"},
	"tamil_nadu": {"temple_architecture", "classical_dance", "bronze_casting", "silk_weaving"},
}

var craftTraditions = map[types.CraftType][]string{
	types.CraftPottery:  {"earthy_traditions", "fire_element", "divine_creation"},
	types.CraftTextiles: {"weaving_traditions", "color_symbolism", "fabric_heritage"},
	types.CraftJewelry:  {"adornment_culture", "precious_traditions", "ceremonial_importance"},
	types.CraftWoodwork: {"tree_reverence", "carved_heritage", "furniture_traditions"},
}

// CultureFor resolves the cultural context for a location and craft. Regions
// match on substring so "Jaipur, Rajasthan" finds the rajasthan entry; no
// match leaves the regional list empty.
func CultureFor(location string, craft types.CraftType) CulturalContext {
	ctx := CulturalContext{
		TraditionalValues: traditionalValues[:3],
		CraftTraditions:   craftTraditions[craft],
	}

	locationLower := strings.ToLower(location)
	for region, elements := range regionalElements {
		if strings.Contains(locationLower, strings.ReplaceAll(region, "_", " ")) ||
			strings.Contains(locationLower, region) {
			ctx.RegionalElements = elements
			break
		}
	}

	return ctx
}
