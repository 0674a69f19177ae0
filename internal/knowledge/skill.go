package knowledge

// SkillLevel is the four-band classification derived from experience years.
type SkillLevel string

// Skill level bands.
const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// SkillLevelFor classifies experience years into a skill band using the
// fixed breakpoints 2, 7, and 15.
func SkillLevelFor(experienceYears int) SkillLevel {
	switch {
	case experienceYears <= 2:
		return SkillBeginner
	case experienceYears <= 7:
		return SkillIntermediate
	case experienceYears <= 15:
		return SkillAdvanced
	default:
		return SkillExpert
	}
}

// SkillNarrative maps experience years to the narrative descriptor used in
// story prompts. It shares the breakpoints of SkillLevelFor but carries
// different wording; callers depend on each phrasing, so both mappings are
// kept.
func SkillNarrative(experienceYears int) string {
	switch {
	case experienceYears <= 2:
		return "emerging_artisan_passionate_beginner"
	case experienceYears <= 7:
		return "skilled_craftsperson_growing_expertise"
	case experienceYears <= 15:
		return "experienced_master_refined_technique"
	default:
		return "legendary_artisan_heritage_keeper"
	}
}

// ExperienceLabel maps experience years to the display label used in the
// integrated strategy overview. Same breakpoints again, third wording.
func ExperienceLabel(experienceYears int) string {
	switch {
	case experienceYears <= 2:
		return "Emerging Artisan"
	case experienceYears <= 7:
		return "Skilled Craftsperson"
	case experienceYears <= 15:
		return "Expert Artisan"
	default:
		return "Master Craftsperson"
	}
}
