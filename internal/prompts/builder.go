package prompts

import (
	"fmt"
	"strings"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// promptFile is the template file backing every builder in this package.
const promptFile = "generation.json"

// StoryInput carries everything the story prompt needs. The framework fields
// are passed explicitly so the builder stays decoupled from the composer.
type StoryInput struct {
	Profile          *types.ArtisanProfile
	Analysis         *types.CraftAnalysis
	StoryType        types.StoryType
	Structure        []string
	EmotionalArc     string
	KeyElements      []string
	Platforms        []string
	MarketingContext string
	SequencePosition int
	TotalStories     int
}

// ContentStrategy renders the general recommendation prompt.
func ContentStrategy(profile *types.ArtisanProfile, analysis *types.CraftAnalysis) string {
	template := MustGet(promptFile, "content-strategy")
	return Format(template, map[string]string{
		"ProfileBlock":  profileBlock(profile),
		"AnalysisBlock": analysisBlock(analysis),
	})
}

// Specialized renders the craft-specialized recommendation prompt using the
// knowledge base's technique, tool, and market hints.
func Specialized(profile *types.ArtisanProfile, analysis *types.CraftAnalysis, level knowledge.SkillLevel) string {
	kp := knowledge.Profile(profile.Specialization)
	template := MustGet(promptFile, "specialized-recommendations")
	return Format(template, map[string]string{
		"Craft":         string(profile.Specialization),
		"ProfileBlock":  profileBlock(profile),
		"AnalysisBlock": analysisBlock(analysis),
		"Techniques":    strings.Join(kp.Techniques, ", "),
		"Tools":         strings.Join(kp.Tools, ", "),
		"Markets":       strings.Join(kp.Markets, ", "),
		"SkillFocus":    strings.Join(kp.SkillFocus[level], ", "),
		"SkillLevel":    string(level),
	})
}

// Story renders the story generation prompt from framework and context.
func Story(in StoryInput) string {
	template := MustGet(promptFile, "story")

	storyName := strings.ReplaceAll(string(in.StoryType), "_", " ")
	data := map[string]string{
		"StoryName":     storyName,
		"StoryTitle":    in.StoryType.Humanize(),
		"ProfileBlock":  profileBlock(in.Profile),
		"AnalysisBlock": analysisBlock(in.Analysis),
		"CulturalBlock": culturalBlock(in.Profile),
		"Structure":     strings.Join(in.Structure, " -> "),
		"EmotionalArc":  strings.ReplaceAll(in.EmotionalArc, "_", " "),
		"KeyElements":   strings.Join(in.KeyElements, ", "),
		"Platforms":     strings.Join(in.Platforms, ", "),
		"ContextBlock":  contextBlock(in),
	}
	return Format(template, data)
}

// SalesOptimization renders the sales rewrite prompt for an existing story.
func SalesOptimization(story *types.StoryContent, objective types.SalesObjective) string {
	template := MustGet(promptFile, "sales-optimization")

	goal := objective.PrimaryGoal
	if goal == "" {
		goal = "Increase brand awareness"
	}
	revenue := objective.TargetRevenue
	if revenue == "" {
		revenue = "Not specified"
	}
	urgency := objective.UrgencyLevel
	if urgency == "" {
		urgency = "Medium"
	}

	return Format(template, map[string]string{
		"Title":         story.Title,
		"Narrative":     story.Narrative,
		"CallToAction":  story.CallToAction,
		"PrimaryGoal":   goal,
		"TargetRevenue": revenue,
		"KeyProducts":   strings.Join(objective.KeyProducts, ", "),
		"UrgencyLevel":  urgency,
	})
}

// profileBlock renders the artisan summary shared by every prompt.
func profileBlock(profile *types.ArtisanProfile) string {
	var sb strings.Builder
	sb.WriteString("ARTISAN PROFILE:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("- Location: %s\n", profile.Location))
	sb.WriteString(fmt.Sprintf("- Craft: %s\n", profile.Specialization))
	sb.WriteString(fmt.Sprintf("- Experience: %d years (%s)\n",
		profile.ExperienceYears,
		strings.ReplaceAll(knowledge.SkillNarrative(profile.ExperienceYears), "_", " ")))
	sb.WriteString(fmt.Sprintf("- Style: %s\n", profile.SignatureStyle))
	sb.WriteString(fmt.Sprintf("- Target Audience: %s\n", profile.TargetAudience))
	if len(profile.Platforms) > 0 {
		sb.WriteString(fmt.Sprintf("- Platforms: %s\n", strings.Join(profile.Platforms, ", ")))
	}
	return sb.String()
}

// analysisBlock renders the optional craft analysis summary; absent analysis
// contributes nothing to the prompt.
func analysisBlock(analysis *types.CraftAnalysis) string {
	if analysis == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\nCURRENT CRAFT ANALYSIS:\n")
	sb.WriteString(fmt.Sprintf("- Colors: %s\n", strings.Join(analysis.Colors, ", ")))
	sb.WriteString(fmt.Sprintf("- Materials: %s\n", strings.Join(analysis.Materials, ", ")))
	sb.WriteString(fmt.Sprintf("- Patterns: %s\n", strings.Join(analysis.Patterns, ", ")))
	sb.WriteString(fmt.Sprintf("- Style: %s\n", analysis.Style))
	sb.WriteString(fmt.Sprintf("- Complexity: %s\n", analysis.ComplexityLevel))
	sb.WriteString(fmt.Sprintf("- Creation Time: %s\n", analysis.EstimatedTime))
	return sb.String()
}

// culturalBlock renders the cultural context lines for story prompts.
func culturalBlock(profile *types.ArtisanProfile) string {
	culture := knowledge.CultureFor(profile.Location, profile.Specialization)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("- Regional Elements: %s\n", strings.Join(culture.RegionalElements, ", ")))
	sb.WriteString(fmt.Sprintf("- Traditional Values: %s\n", strings.Join(culture.TraditionalValues, ", ")))
	sb.WriteString(fmt.Sprintf("- Craft Traditions: %s\n", strings.Join(culture.CraftTraditions, ", ")))
	return sb.String()
}

// contextBlock renders the optional marketing context and chain position.
func contextBlock(in StoryInput) string {
	if in.MarketingContext == "" && in.TotalStories == 0 {
		return "\n"
	}
	var sb strings.Builder
	sb.WriteString("\nADDITIONAL CONTEXT:\n")
	if in.MarketingContext != "" {
		sb.WriteString(in.MarketingContext)
	}
	if in.TotalStories > 0 {
		sb.WriteString(fmt.Sprintf("- Story %d of %d in the marketing sequence\n",
			in.SequencePosition, in.TotalStories))
	}
	sb.WriteString("\n")
	return sb.String()
}
